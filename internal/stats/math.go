package stats

import "slices"

// CalculateMeanDiscrete returns the arithmetic mean of a slice of integers.
// The sum is accumulated in float64 to avoid integer truncation.
func CalculateMeanDiscrete(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// CalculateMeanContinuous returns the arithmetic mean of a slice of floats.
func CalculateMeanContinuous(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CalculateMedianDiscrete finds the median value in a slice of integers.
func CalculateMedianDiscrete(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	// Work on a copy to avoid mutating the original
	temp := make([]int, len(values))
	copy(temp, values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return float64(temp[n/2])
	}
	return float64(temp[n/2-1]+temp[n/2]) / 2.0
}

// CalculateMedianContinuous finds the median value in a slice of floats.
func CalculateMedianContinuous(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return temp[n/2]
	}
	return (temp[n/2-1] + temp[n/2]) / 2.0
}

// CalculateModesDiscrete returns every value that occurs with the maximum
// frequency, sorted ascending. When all values are distinct every value ties
// at frequency 1, so every value is a mode.
func CalculateModesDiscrete(values []int) []int {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	modes := make([]int, 0, len(counts))
	for v, c := range counts {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	slices.Sort(modes)
	return modes
}

// CalculateModesContinuous is the float variant of CalculateModesDiscrete.
// Values tie only when they compare equal as float64.
func CalculateModesContinuous(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	modes := make([]float64, 0, len(counts))
	for v, c := range counts {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	slices.Sort(modes)
	return modes
}
