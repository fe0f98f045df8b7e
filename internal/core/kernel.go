// Package core implements the core logic for the purespeed call-overhead probe:
// the fixed single-precision benchmark kernel and the generic call-forwarding adapters.
//
// This package provides the internal implementation for the purespeed package.
//
// # Features
//
//   - Benchmark Kernel: A hard-coded 400-point single-precision transform whose result is discarded (Speedy) or returned (Transform).
//   - Call Forwarding: Generic adapters that invoke a caller-supplied function with one argument and hand back its result verbatim.
//   - Instrumentation: Optional lifecycle hooks around forwarded calls, contained so they never alter the forwarded result.
//
// # Usage
//
// This package is not intended for direct use. Use the purespeed package for a public API.
package core

import "math"

// Kernel dimensions and coefficients. The kernel evaluates
//
//	y[i] = pow((a + x[i]) * (50*x[i] - b), 2.11) * exp(c)
//
// over x[i] = 0.05*i for i in [0, 400). The coefficients are fixed; changing
// them changes what the probe measures.
const (
	kernelLen  = 400
	kernelStep = 0.05

	coeffA float32 = 3.1
	coeffB float32 = 8.19973123410
	coeffC float32 = 2.1

	kernelExp = 2.11
)

// Speedy runs the benchmark kernel once and discards the result.
//
// It allocates two stack-local 400-element float32 buffers, fills the
// abscissa, applies the kernel, and returns. There is no output, no error
// path, and no shared state: every call is independent, so concurrent calls
// are safe. The dead computation is the point — the routine exists to measure
// the cost of reaching it from a caller, so the loop shape and coefficients
// must stay as they are.
func Speedy() {
	var x, y [kernelLen]float32
	fillAbscissa(x[:])
	applyKernel(y[:], x[:])
}

// Transform runs the same kernel as Speedy and returns the computed values.
//
// The returned slice is freshly allocated on every call. For indices where
// the base (a+x[i])*(50*x[i]-b) is negative, raising it to the fractional
// exponent yields NaN; this is inherited behavior and is preserved as is.
func Transform() []float32 {
	x := make([]float32, kernelLen)
	y := make([]float32, kernelLen)
	fillAbscissa(x)
	applyKernel(y, x)
	return y
}

// fillAbscissa populates x[i] = 0.05*i. The product is formed in float64 and
// truncated to float32 on store.
func fillAbscissa(x []float32) {
	for i := range x {
		x[i] = float32(kernelStep * float64(i))
	}
}

// applyKernel evaluates the transform for each abscissa value.
//
// The base is combined in float32, then pow and exp run in float64 and the
// product truncates back to float32.
func applyKernel(y, x []float32) {
	// exp(c) stays inside the loop: the probe measures the per-iteration
	// work of the formula as written, not a hand-optimized variant of it.
	for i := range y {
		base := (coeffA + x[i]) * (50*x[i] - coeffB)
		y[i] = float32(math.Pow(float64(base), kernelExp) * math.Exp(float64(coeffC)))
	}
}
