package stats

import "errors"

// ErrEmptyInput is returned when a describe call receives no values.
var ErrEmptyInput = errors.New("describe requires a non-empty sequence of values")

// Summary bundles the descriptive statistics for a single dataset. Modes
// holds every value that ties for the maximum frequency, sorted ascending;
// it is never empty for non-empty input.
type Summary struct {
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	Modes  []float64 `json:"modes"`
}

// DiscreteSummary is the integer-input variant of Summary. Mean and median
// are still floats (an even-length median falls between two values), but the
// modes come back as the integers the caller put in.
type DiscreteSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Modes  []int   `json:"modes"`
}

// Describe computes the mean, median and mode(s) of values in a single call.
// The input slice is never mutated and the call keeps no state, so concurrent
// callers need no coordination.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	return Summary{
		Mean:   CalculateMeanContinuous(values),
		Median: CalculateMedianContinuous(values),
		Modes:  CalculateModesContinuous(values),
	}, nil
}

// DescribeDiscrete is the integer entry point for Describe.
func DescribeDiscrete(values []int) (DiscreteSummary, error) {
	if len(values) == 0 {
		return DiscreteSummary{}, ErrEmptyInput
	}

	return DiscreteSummary{
		Mean:   CalculateMeanDiscrete(values),
		Median: CalculateMedianDiscrete(values),
		Modes:  CalculateModesDiscrete(values),
	}, nil
}
