package benchmark

// sumInts is the probe callable: cheap enough that the forwarding overhead
// dominates the measurement.
func sumInts(vs []int) (int, error) {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total, nil
}

// input is reused across iterations so allocation noise stays out of the
// call-overhead numbers.
var input = []int{1, 2, 3, 4, 5, 6, 7, 8}
