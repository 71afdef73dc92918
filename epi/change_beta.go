package epi

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ChangeBeta is the most basic intervention: rescale the transmission
// rate on scheduled days.
//
// Each schedule entry pairs a day with a multiplicative factor
// (1 = no change, 0 = no transmission). On a scheduled day the new beta
// is re-derived from the baseline captured at first Apply, multiplying
// in every factor whose day matches. Re-deriving from the baseline keeps
// overlapping entries commutative and makes the current value
// reproducible from (origBeta, days, changes, t) alone.
type ChangeBeta struct {
	Days    []int     // schedule days
	Changes []float64 // parallel multiplicative factors

	origBeta    float64
	origBetaSet bool
}

var _ Intervention = (*ChangeBeta)(nil)

// NewChangeBeta creates a ChangeBeta intervention. The days and changes
// schedules must have equal length.
func NewChangeBeta(days []int, changes []float64) (*ChangeBeta, error) {
	if len(days) != len(changes) {
		return nil, fmt.Errorf("number of days supplied (%d) does not match number of changes in beta (%d)", len(days), len(changes))
	}
	return &ChangeBeta{
		Days:    append([]int(nil), days...),
		Changes: append([]float64(nil), changes...),
	}, nil
}

// Apply rescales sim.Beta when day t appears in the schedule. Days not
// in the schedule leave beta at its last-assigned value.
func (cb *ChangeBeta) Apply(sim *Simulator, t int) {
	// Capture the baseline before any mutation; all later assignments
	// multiply against this value, never the already-shifted one.
	if !cb.origBetaSet {
		cb.origBeta = sim.Beta
		cb.origBetaSet = true
	}

	matched := false
	newBeta := cb.origBeta
	for i, day := range cb.Days {
		if day == t {
			matched = true
			newBeta *= cb.Changes[i]
		}
	}
	if matched {
		logrus.Debugf("[day %03d] ChangeBeta: beta %f -> %f", t, sim.Beta, newBeta)
		sim.Beta = newBeta
	}
}

// Finalize is a no-op; ChangeBeta records no result series.
func (cb *ChangeBeta) Finalize(sim *Simulator) {}

// Snapshot returns the serializable record of this intervention.
func (cb *ChangeBeta) Snapshot() InterventionSnapshot {
	state := &ChangeBetaState{
		Days:    append([]int(nil), cb.Days...),
		Changes: append([]float64(nil), cb.Changes...),
	}
	if cb.origBetaSet {
		orig := cb.origBeta
		state.OrigBeta = &orig
	}
	return InterventionSnapshot{Type: TypeChangeBeta, ChangeBeta: state}
}
