package purespeed_test

import (
	"errors"
	"math"
	"runtime"
	"sync"
	"testing"

	"github.com/osmike/purespeed"
)

func TestSpeedyIsSilent(t *testing.T) {
	// Speedy returns nothing and touches nothing; repeated calls must behave
	// identically from the caller's point of view.
	for i := 0; i < 100; i++ {
		purespeed.Speedy()
	}
}

func TestSpeedyConcurrent(t *testing.T) {
	// Each invocation works on private stack buffers, so hammering it from
	// many goroutines must be race-free (verified under -race).
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				purespeed.Speedy()
			}
		}()
	}
	wg.Wait()
}

func TestCallIdentity(t *testing.T) {
	double := func(v int) (int, error) { return v * 2, nil }

	got, err := purespeed.Call(double, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := double(21)
	if got != want {
		t.Fatalf("Call(double, 21) = %d; want %d", got, want)
	}
}

func TestCallSliceIdentity(t *testing.T) {
	sum := func(vs []int) (int, error) {
		total := 0
		for _, v := range vs {
			total += v
		}
		return total, nil
	}

	got, err := purespeed.CallSlice(sum, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Fatalf("CallSlice(sum, [1 2 3]) = %d; want 6", got)
	}
}

func TestCallSliceEmptySequence(t *testing.T) {
	length := func(vs []string) (int, error) { return len(vs), nil }

	got, err := purespeed.CallSlice(length, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("CallSlice(len, []) = %d; want 0", got)
	}

	got, err = purespeed.CallSlice(length, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("CallSlice(len, nil) = %d; want 0", got)
	}
}

func TestCallErrorPropagatesVerbatim(t *testing.T) {
	sentinel := errors.New("callee refused")
	fail := func(v int) (int, error) { return 0, sentinel }

	_, err := purespeed.Call(fail, 0)
	if err != sentinel {
		t.Fatalf("Call returned %v; want the exact sentinel error", err)
	}
}

func TestCallPanicPropagates(t *testing.T) {
	divide := func(d int) (int, error) { return 1 / d, nil }

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("divide-by-zero panic did not propagate out of Call")
		}
		if _, ok := r.(runtime.Error); !ok {
			t.Fatalf("panic value altered in transit: %v (%T)", r, r)
		}
	}()
	_, _ = purespeed.Call(divide, 0)
}

func TestCallSlicePanicPropagates(t *testing.T) {
	head := func(vs []int) (int, error) { return vs[0], nil }

	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range panic did not propagate out of CallSlice")
		}
	}()
	_, _ = purespeed.CallSlice(head, nil)
}

func TestTransformNaNBehavior(t *testing.T) {
	y := purespeed.Transform()
	if len(y) != 400 {
		t.Fatalf("Transform returned %d values; want 400", len(y))
	}
	// The base goes negative for the first four points; a negative base
	// raised to a fractional power is NaN and stays that way.
	if !math.IsNaN(float64(y[0])) {
		t.Errorf("y[0] = %v; want NaN", y[0])
	}
	if math.IsNaN(float64(y[4])) {
		t.Errorf("y[4] = %v; want a finite value", y[4])
	}
}
