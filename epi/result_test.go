package epi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult_ZeroFilledWithFixedLength(t *testing.T) {
	r := NewResult("Number diagnosed", 5)
	assert.Equal(t, 5, r.Npts())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, r.Values)
}

func TestResult_AddAccumulatesPerDay(t *testing.T) {
	// GIVEN a 4-day series
	r := NewResult("Number tested", 4)

	// WHEN the same day is written twice
	r.Add(1, 1)
	r.Add(1, 2)
	r.Add(3, 5)

	// THEN the writes accumulate in place
	assert.Equal(t, 3.0, r.At(1))
	assert.Equal(t, 5.0, r.At(3))
	assert.Equal(t, 8.0, r.Total())
}

func TestResult_CumSum(t *testing.T) {
	// GIVEN a per-day count series
	counts := NewResult("Number diagnosed", 5)
	for day, v := range []float64{1, 0, 2, 0, 3} {
		counts.Add(day, v)
	}
	cum := NewResult("Cumulative number diagnosed", 5)

	// WHEN the cumulative series is derived
	counts.CumSum(cum)

	// THEN cum[t] == sum(counts[0..t]) for every t
	assert.Equal(t, []float64{1, 1, 3, 3, 6}, cum.Values)
	// AND the source series is untouched
	assert.Equal(t, []float64{1, 0, 2, 0, 3}, counts.Values)
}
