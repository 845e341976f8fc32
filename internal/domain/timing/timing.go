// Package timing reduces a group's action durations to log-scaled statistics.
package timing

import (
	"fmt"
	"math"
)

// Stats holds the three log-scaled timing statistics of one entity group.
// Each value is log(stat + 1); the +1 offset keeps the logarithm defined
// when the underlying statistic is 0, so all fields are finite for any
// well-formed group.
type Stats struct {
	MaxLog  float64
	MeanLog float64
	StdLog  float64
}

// Summarize computes the log-scaled max, mean and sample standard deviation
// of a group's action_time values. The standard deviation of a single-element
// group is defined as 0. Negative or non-numeric (NaN) values are a data
// integrity violation and fail with ErrInvalidActionTime.
func Summarize(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptyGroup
	}

	maxVal := values[0]
	sum := 0.0
	for _, v := range values {
		if math.IsNaN(v) {
			return Stats{}, fmt.Errorf("%w: missing or non-numeric value", ErrInvalidActionTime)
		}
		if v < 0 {
			return Stats{}, fmt.Errorf("%w: negative value %v", ErrInvalidActionTime, v)
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	// Sample (n-1) standard deviation; zero spread for a single point.
	std := 0.0
	if n := len(values); n > 1 {
		var ss float64
		for _, v := range values {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(n-1))
	}

	return Stats{
		MaxLog:  math.Log(maxVal + 1),
		MeanLog: math.Log(mean + 1),
		StdLog:  math.Log(std + 1),
	}, nil
}
