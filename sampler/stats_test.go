package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanStdDev(t *testing.T) {
	t.Run("matching the textbook formulas", func(t *testing.T) {
		mean, stddev := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})

		require.InDelta(t, 5.0, mean, 1e-12)
		// sum of squared deviations is 32, divided by n-1
		require.InDelta(t, math.Sqrt(32.0/7.0), stddev, 1e-12)
	})

	t.Run("two values", func(t *testing.T) {
		r1, r2 := 0.25, 0.75

		mean, stddev := MeanStdDev([]float64{r1, r2})

		require.InDelta(t, (r1+r2)/2, mean, 1e-12)
		require.InDelta(t, math.Abs(r1-r2)/math.Sqrt2, stddev, 1e-12)
	})

	t.Run("identical values", func(t *testing.T) {
		mean, stddev := MeanStdDev([]float64{0.5, 0.5, 0.5})
		require.Equal(t, 0.5, mean)
		require.Equal(t, 0.0, stddev)
	})

	t.Run("undefined deviation for a single value", func(t *testing.T) {
		mean, stddev := MeanStdDev([]float64{3})
		require.Equal(t, 3.0, mean)
		require.True(t, math.IsNaN(stddev))
	})

	t.Run("keeping precision with a large offset", func(t *testing.T) {
		_, stddev := MeanStdDev([]float64{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16})
		require.InDelta(t, math.Sqrt(30.0), stddev, 1e-6)
	})
}
