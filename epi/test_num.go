package epi

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Defaults for TestNum eligibility multipliers and test sensitivity.
const (
	DefaultSymptTest   = 100.0
	DefaultTraceTest   = 1.0
	DefaultSensitivity = 1.0
)

// TestNum tests a fixed number of people per day. The day's budget is
// allocated across the population by weighted sampling without
// replacement, biased toward symptomatic and contact-traced people.
// Carries no state across days beyond its result series.
type TestNum struct {
	baseIntervention

	DailyTests  []float64 // test budget per day, indexed by day
	SymptTest   float64   // weight multiplier for symptomatic people
	TraceTest   float64   // weight multiplier for known contacts
	Sensitivity float64   // probability a test detects a true infection
}

var _ Intervention = (*TestNum)(nil)

// NewTestNum creates a TestNum intervention tracking diagnoses over npts days.
func NewTestNum(npts int, dailyTests []float64, symptTest, traceTest, sensitivity float64) *TestNum {
	tn := &TestNum{
		baseIntervention: newBaseIntervention(),
		DailyTests:       append([]float64(nil), dailyTests...),
		SymptTest:        symptTest,
		TraceTest:        traceTest,
		Sensitivity:      sensitivity,
	}
	tn.results["n_diagnoses"] = NewResult("Number diagnosed", npts)
	tn.results["cum_diagnoses"] = NewResult("Cumulative number diagnosed", npts)
	return tn
}

// Apply spends day t's test budget. A day past the schedule, a
// non-positive budget, or a non-finite budget is a normal no-test day,
// not an error.
func (tn *TestNum) Apply(sim *Simulator, t int) {
	if t >= len(tn.DailyTests) {
		return
	}
	nTests := tn.DailyTests[t]
	if nTests <= 0 || math.IsInf(nTests, 0) || math.IsNaN(nTests) {
		return
	}

	// NB, the symptomatic and traced multipliers are independent: a
	// person can be both, and gets both factors.
	weights := make([]float64, sim.N())
	total := 0.0
	for i, person := range sim.People {
		w := 1.0
		if person.Symptomatic {
			w *= tn.SymptTest
		}
		if person.KnownContact {
			w *= tn.TraceTest
		}
		if person.Diagnosed {
			w = 0.0 // never re-select a diagnosed person
		}
		weights[i] = w
		total += w
	}

	// Degenerate case: nobody is selectable. Skip the day rather than
	// normalize a zero-mass distribution.
	if total == 0 {
		logrus.Warnf("[day %03d] TestNum: all testing weights zero, skipping %v tests", t, nTests)
		return
	}

	rng := sim.RNG.ForSubsystem(SubsystemIntervention(TypeTestNum))
	testInds := ChooseWeighted(weights, int(nTests), rng)

	for _, ind := range testInds {
		person := sim.GetPerson(ind)
		if person.Test(t, tn.Sensitivity, rng) {
			tn.results["n_diagnoses"].Add(t, 1)
			sim.FlagContacts(person)
		}
	}
	logrus.Debugf("[day %03d] TestNum: tested %d people", t, len(testInds))
}

// Finalize derives the cumulative diagnosis series and merges both
// series into the simulation's results.
func (tn *TestNum) Finalize(sim *Simulator) {
	tn.results["n_diagnoses"].CumSum(tn.results["cum_diagnoses"])
	tn.mergeResults(sim)
}

// Snapshot returns the serializable record of this intervention.
func (tn *TestNum) Snapshot() InterventionSnapshot {
	return InterventionSnapshot{
		Type: TypeTestNum,
		TestNum: &TestNumState{
			DailyTests:  append([]float64(nil), tn.DailyTests...),
			SymptTest:   tn.SymptTest,
			TraceTest:   tn.TraceTest,
			Sensitivity: tn.Sensitivity,
		},
	}
}
