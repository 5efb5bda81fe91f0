package rfm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileEdges(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "ten distinct ranks",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:   []float64{1, 2.8, 4.6, 6.4, 8.2, 10},
		},
		{
			name:   "unsorted input",
			values: []float64{6, 1, 11, 16, 21, 26},
			want:   []float64{1, 6, 11, 16, 21, 26},
		},
		{
			name:   "duplicate edges collapse",
			values: []float64{1, 1, 1, 1, 1, 1, 1, 1, 2, 5},
			want:   []float64{1, 1.2, 5},
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   []float64{42},
		},
		{
			name:   "non-finite values ignored",
			values: []float64{math.NaN(), 0, 5, math.Inf(1)},
			want:   []float64{0, 1, 2, 3, 4, 5},
		},
		{
			name:   "empty",
			values: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuantileEdges(tt.values, 5)
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestQuantileBins(t *testing.T) {
	t.Run("five full bins", func(t *testing.T) {
		bins, n := QuantileBins([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 5)
		assert.Equal(t, 5, n)
		assert.Equal(t, []int{4, 4, 3, 3, 2, 2, 1, 1, 0, 0}, bins)
	})

	t.Run("lowest edge belongs to first bin", func(t *testing.T) {
		bins, _ := QuantileBins([]float64{0, 10}, 5)
		assert.Equal(t, []int{0, 4}, bins)
	})

	t.Run("collapsed edges leave fewer bins", func(t *testing.T) {
		bins, n := QuantileBins([]float64{1, 1, 1, 1, 1, 1, 1, 1, 2, 5}, 5)
		assert.Equal(t, 2, n)
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}, bins)
	})

	t.Run("constant values cannot be binned", func(t *testing.T) {
		bins, n := QuantileBins([]float64{3, 3, 3}, 5)
		assert.Equal(t, 0, n)
		assert.Equal(t, []int{-1, -1, -1}, bins)
	})

	t.Run("NaN is not binned", func(t *testing.T) {
		bins, _ := QuantileBins([]float64{1, math.NaN(), 2, 3}, 5)
		assert.Equal(t, -1, bins[1])
	})
}
