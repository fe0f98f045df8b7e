package core

import (
	"github.com/osmike/purespeed/internal/lib/hooks"
)

// CallFunc is the shape of a callable that the adapters forward to.
//
// A is the input parameter type, V is the result type.
//
// The function must have the signature: func(arg A) (V, error)
type CallFunc[A any, V any] func(arg A) (V, error)

// Call invokes fn with arg and returns its result verbatim.
//
// The adapter performs no transformation, validation, copying, or
// interpretation of the callable, the argument, or the result. Errors
// returned by fn come back untouched, and a panic inside fn propagates to
// the caller unchanged — there is deliberately no recover here.
//
//   - fn: The callable to forward to. A nil fn panics exactly as the direct call would.
//   - arg: The single argument handed to fn.
//   - Returns: Whatever fn returns, value and error both verbatim.
func Call[A any, V any](fn CallFunc[A, V], arg A) (V, error) {
	return fn(arg)
}

// CallSlice invokes fn with the slice s and returns its result verbatim.
//
// It is Call specialized to a sequence-typed argument; the two exist as
// distinctly named functions because they forward the same way but declare
// different argument types. The pass-through guarantees are identical to
// Call: no copying of s, no inspection of the result, no recover.
func CallSlice[E any, V any](fn CallFunc[[]E, V], s []E) (V, error) {
	return fn(s)
}

// instrumented wraps a callable with lifecycle hooks.
type instrumented[A any, V any] struct {
	fn    CallFunc[A, V] // user-provided callable to forward to
	hooks *hooks.Hooks   // hooks for lifecycle events
}

// NewInstrumentedCall returns a CallFunc that forwards to fn and runs the
// given hooks around each invocation.
//
// The forwarded result is never altered by instrumentation: hook errors and
// hook panics are contained by the hooks layer, and an error returned by fn
// is reported through LogError but still returned verbatim. A panic inside
// fn propagates unchanged; OnDone does not run in that case.
//
//   - fn: The callable to instrument. Must be of type func(A) (V, error).
//   - h: Optional hooks for call events. Pass nil if not needed.
//
// Returns a function with the same signature as fn.
func NewInstrumentedCall[A any, V any](fn CallFunc[A, V], h *hooks.Hooks) CallFunc[A, V] {
	// Default hooks if nil
	if h == nil {
		h = &hooks.Hooks{}
	}
	c := &instrumented[A, V]{
		fn:    fn,
		hooks: h,
	}
	return c.call
}

// call forwards one invocation, surrounded by the OnCall and OnDone hooks.
func (c *instrumented[A, V]) call(arg A) (V, error) {
	// Run the OnCall hook if defined.
	if c.hooks.OnCall != nil {
		c.hooks.Run(c.hooks.OnCall, arg)
	}
	// Forward to the underlying function. No recover: a panic in fn must
	// surface to the caller exactly as it would on a direct call.
	val, err := c.fn(arg)
	// Run the OnDone hook if defined.
	if c.hooks.OnDone != nil {
		c.hooks.Run(c.hooks.OnDone, arg)
	}
	if err != nil && c.hooks.LogError != nil {
		c.hooks.LogError(err)
	}
	return val, err
}
