package epi

// Result is a fixed-length per-day time series. One slot per simulation
// day; the length never changes after construction. Writes index by day
// and must satisfy 0 <= t < Npts().
type Result struct {
	Name   string    // Human-readable series name, used in summaries
	Values []float64 // One value per simulation day
}

// NewResult creates a zero-filled Result with npts slots.
func NewResult(name string, npts int) *Result {
	return &Result{
		Name:   name,
		Values: make([]float64, npts),
	}
}

// Npts returns the number of days the series covers.
func (r *Result) Npts() int {
	return len(r.Values)
}

// Add increments the value recorded for day t.
func (r *Result) Add(t int, v float64) {
	r.Values[t] += v
}

// At returns the value recorded for day t.
func (r *Result) At(t int) float64 {
	return r.Values[t]
}

// Total returns the sum of the series.
func (r *Result) Total() float64 {
	total := 0.0
	for _, v := range r.Values {
		total += v
	}
	return total
}

// CumSum fills dst's values with the running cumulative sum of r, so
// dst[t] == sum(r[0..t]). dst must have the same length as r.
func (r *Result) CumSum(dst *Result) {
	running := 0.0
	for t, v := range r.Values {
		running += v
		dst.Values[t] = running
	}
}
