package sampler

import "gonum.org/v1/gonum/stat"

// MeanStdDev returns the mean and Bessel-corrected sample standard deviation
// of values. The deviation is NaN below two values.
func MeanStdDev(values []float64) (mean, stddev float64) {
	return stat.MeanStdDev(values, nil)
}
