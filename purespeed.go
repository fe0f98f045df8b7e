// Package purespeed provides a fixed numeric benchmark kernel and thin call-forwarding adapters.
//
// # Overview
//
// purespeed exists to measure the cost of reaching a function, not the function itself.
// It exposes a hard-coded single-precision kernel whose result is discarded (Speedy) and
// generic adapters (Call, CallSlice) that invoke a caller-supplied function with one
// argument and return its result verbatim. Timing a forwarded call against a direct call
// isolates the overhead of the call boundary.
//
// ## Features
//
//   - Benchmark Kernel: 400-point float32 transform with fixed coefficients; computed and dropped on every Speedy call, never optimized away or cached.
//   - Verbatim Forwarding: Call and CallSlice hand back the callable's value and error untouched; panics in the callable propagate unchanged.
//   - Instrumentation: Optional hooks around forwarded calls (NewInstrumentedCall) for logging or metrics, contained so they never alter the result.
//   - Concurrency Safety: Every invocation is stateless and touches no shared data, so concurrent use needs no coordination.
//
// ## Usage Example
//
//	// Forward a call and get its result back unchanged
//	sum := func(vs []int) (int, error) {
//		total := 0
//		for _, v := range vs {
//			total += v
//		}
//		return total, nil
//	}
//	res, err := purespeed.CallSlice(sum, []int{1, 2, 3}) // res == 6
//
// ## Naming
//
// The adapters descend from a binding layer that exposed both under one name,
// overloaded on the argument type (sequence vs. arbitrary object). Go has no
// same-name overloading, so the sequence form is CallSlice and the general
// form is Call.
//
// See package documentation and tests for more details.
package purespeed

import (
	"github.com/osmike/purespeed/internal/core"
	"github.com/osmike/purespeed/internal/lib/hooks"
)

// CallFunc is the generic shape of a callable the adapters forward to.
// A is the input parameter type, V is the result type.
type CallFunc[A any, V any] = core.CallFunc[A, V]

// Hooks provides optional hooks for call events (e.g. before invocation, after return).
type Hooks = hooks.Hooks

// Speedy runs the benchmark kernel once and discards the result.
//
// It takes no input, returns nothing, and cannot fail. Each call computes the
// full 400-point transform on stack-local buffers and drops it; repeated calls
// accumulate no state. The routine is a probe for call overhead, so the dead
// computation is intentional and must keep its shape.
func Speedy() {
	core.Speedy()
}

// Transform runs the same kernel as Speedy and returns the computed values
// as a freshly allocated slice.
//
// The first few entries are NaN: the kernel raises a negative base to a
// fractional exponent there. That is inherited behavior, kept as is.
func Transform() []float32 {
	return core.Transform()
}

// Call invokes fn with arg and returns exactly what fn returns.
//
//   - fn: The callable to forward to. Must be of type func(A) (V, error).
//   - arg: The single argument handed to fn.
//
// The value and error come back verbatim; a panic inside fn propagates to
// the caller unchanged.
//
// Example:
//
//	double := func(v int) (int, error) { return v * 2, nil }
//	res, _ := purespeed.Call(double, 21) // res == 42
func Call[A any, V any](fn CallFunc[A, V], arg A) (V, error) {
	return core.Call(fn, arg)
}

// CallSlice invokes fn with the slice s and returns exactly what fn returns.
//
// It is the sequence-argument counterpart of Call; the forwarding guarantees
// are identical.
func CallSlice[E any, V any](fn CallFunc[[]E, V], s []E) (V, error) {
	return core.CallSlice(fn, s)
}

// NewInstrumentedCall wraps fn so that the given hooks run around each
// invocation.
//
//   - fn: The callable to instrument. Must be of type func(A) (V, error).
//   - h: Optional hooks for call events. Pass nil if not needed.
//
// Returns a function with the same signature as fn. The forwarded result is
// never altered: hook errors and panics are contained, and errors returned
// by fn are reported through LogError but returned untouched.
func NewInstrumentedCall[A any, V any](fn CallFunc[A, V], h *hooks.Hooks) CallFunc[A, V] {
	return core.NewInstrumentedCall(fn, h)
}
