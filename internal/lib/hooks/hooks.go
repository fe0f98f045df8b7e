// package hooks

package hooks

import (
	"errors"
	"fmt"

	"github.com/osmike/purespeed/internal/lib/errs"
)

// ErrHook is the sentinel wrapped around any error or panic raised by a hook.
var ErrHook = errors.New("hook failed")

// HookFunc is called on call lifecycle events. It receives the forwarded
// argument and may return an error to signal that something went wrong.
type HookFunc func(arg any) error

// HookFuncError is called whenever another hook errors or panics, and
// whenever an instrumented callable returns an error.
// It must never panic itself.
type HookFuncError func(err error)

// Hooks holds the set of call lifecycle hooks and an error-logging hook.
//
// Hooks observe forwarded calls; they never alter the forwarded result.
type Hooks struct {
	OnCall   HookFunc      // called before the callable is invoked
	OnDone   HookFunc      // called after the callable returns
	LogError HookFuncError // called on any hook error or panic, and on callable errors
}

// Run executes the given hook fn with the provided arg.
// If fn returns an error *or* panics, Run will recover, wrap the failure
// with ErrHook, and forward it to Hooks.LogError (if non-nil); it will not
// panic itself and it will not disturb the call being observed.
func (h *Hooks) Run(fn HookFunc, arg any) {
	if fn == nil {
		return
	}

	// catch panics in the hook
	defer func() {
		if r := recover(); r != nil {
			h.safeLogError(errs.NewError(ErrHook, map[string]interface{}{
				"panic": toError(r),
			}))
		}
	}()

	// run the hook
	if err := fn(arg); err != nil {
		h.safeLogError(errs.NewError(ErrHook, map[string]interface{}{
			"error": err,
		}))
	}
}

// safeLogError calls the LogError hook if set, and recovers if it panics.
func (h *Hooks) safeLogError(err error) {
	if h.LogError == nil {
		return
	}
	defer func() {
		recover() // swallow any panic in LogError
	}()
	h.LogError(err)
}

// toError converts a recovered panic value into an error.
func toError(r any) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return fmt.Errorf("%s", v)
	default:
		return fmt.Errorf("%v", v)
	}
}
