package main

import (
	"fmt"
	"time"

	"github.com/osmike/purespeed"
)

const kernelRuns = 10000

func main() {
	fmt.Printf("[%v] Running the benchmark kernel %d times...\n", time.Now().Truncate(time.Second), kernelRuns)
	start := time.Now()
	for i := 0; i < kernelRuns; i++ {
		purespeed.Speedy()
	}
	elapsed := time.Since(start)
	fmt.Printf("[%v] Kernel done: %v total, %v per call.\n", time.Now().Truncate(time.Second), elapsed, elapsed/kernelRuns)

	sum, err := purespeed.CallSlice(sumValues, []int{1, 2, 3})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Forwarded CallSlice(sum, [1 2 3]) = %d\n", sum)

	doubled, err := purespeed.Call(double, 21)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Forwarded Call(double, 21) = %d\n", doubled)

	// Same call with instrumentation attached: the result is identical, the
	// hooks just observe it.
	instrumented := purespeed.NewInstrumentedCall(double, &purespeed.Hooks{
		OnCall: func(arg any) error {
			fmt.Printf("about to invoke with %v\n", arg)
			return nil
		},
		LogError: func(err error) {
			fmt.Println("hook error:", err)
		},
	})
	doubled, _ = instrumented(21)
	fmt.Printf("Instrumented Call(double, 21) = %d\n", doubled)
}

func sumValues(vs []int) (int, error) {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total, nil
}

func double(v int) (int, error) {
	return v * 2, nil
}
