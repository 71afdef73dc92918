package epi

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Defaults for TestProp daily testing probabilities.
const (
	DefaultSymptomaticTestProb = 0.9
	DefaultAsymptomaticProb    = 0.01
	DefaultTraceProb           = 1.0
	DefaultTestSensitivity     = 1.0
)

// TestProp tests each person independently every day, with a probability
// conditioned on symptom status. Contacts of newly diagnosed people are
// scheduled for a mandatory test on the following day; the scheduled set
// is rebuilt every day, so the lookahead is exactly one step.
type TestProp struct {
	baseIntervention

	SymptomaticProb  float64 // daily test probability while symptomatic
	AsymptomaticProb float64 // daily test probability otherwise
	TraceProb        float64 // probability a traced contact is scheduled
	TestSensitivity  float64 // probability a test detects a true infection

	scheduledTests map[int]bool // person indices guaranteed a test next Apply
}

var _ Intervention = (*TestProp)(nil)

// NewTestProp creates a TestProp intervention tracking tests and
// diagnoses over npts days.
func NewTestProp(npts int, symptomaticProb, asymptomaticProb, traceProb, testSensitivity float64) *TestProp {
	tp := &TestProp{
		baseIntervention: newBaseIntervention(),
		SymptomaticProb:  symptomaticProb,
		AsymptomaticProb: asymptomaticProb,
		TraceProb:        traceProb,
		TestSensitivity:  testSensitivity,
		scheduledTests:   make(map[int]bool),
	}
	tp.results["n_tested"] = NewResult("Number tested", npts)
	tp.results["n_diagnoses"] = NewResult("Number diagnosed", npts)
	tp.results["cum_tested"] = NewResult("Cumulative number tested", npts)
	tp.results["cum_diagnoses"] = NewResult("Cumulative number diagnosed", npts)
	return tp
}

// Apply performs day t's testing sweep. A person is tested when scheduled
// from yesterday's tracing, or on a Bernoulli draw keyed to symptom
// status. Diagnoses trigger tracing draws that fill the next day's
// scheduled set; the set is replaced wholesale, never merged.
func (tp *TestProp) Apply(sim *Simulator, t int) {
	rng := sim.RNG.ForSubsystem(SubsystemIntervention(TypeTestProp))
	newScheduledTests := make(map[int]bool)

	for i, person := range sim.People {
		scheduled := tp.scheduledTests[i]
		if !scheduled {
			if person.Symptomatic {
				scheduled = Bernoulli(rng, tp.SymptomaticProb)
			} else {
				scheduled = Bernoulli(rng, tp.AsymptomaticProb)
			}
		}
		if !scheduled {
			continue
		}

		tp.results["n_tested"].Add(t, 1)
		if person.Test(t, tp.TestSensitivity, rng) {
			sim.FlagContacts(person)
		}
		if person.Diagnosed {
			tp.results["n_diagnoses"].Add(t, 1)
			for _, idx := range person.ContactInds {
				if Bernoulli(rng, tp.TraceProb) {
					newScheduledTests[idx] = true
				}
			}
		}
	}

	// Strict one-day lookahead: entries not re-triggered today are gone.
	tp.scheduledTests = newScheduledTests
	logrus.Debugf("[day %03d] TestProp: tested %.0f people, %d scheduled for tomorrow", t, tp.results["n_tested"].At(t), len(newScheduledTests))
}

// Finalize derives both cumulative series and merges all four series
// into the simulation's results.
func (tp *TestProp) Finalize(sim *Simulator) {
	tp.results["n_tested"].CumSum(tp.results["cum_tested"])
	tp.results["n_diagnoses"].CumSum(tp.results["cum_diagnoses"])
	tp.mergeResults(sim)
}

// ScheduledTests returns the person indices guaranteed a test on the
// next Apply, in ascending order.
func (tp *TestProp) ScheduledTests() []int {
	inds := make([]int, 0, len(tp.scheduledTests))
	for idx := range tp.scheduledTests {
		inds = append(inds, idx)
	}
	sort.Ints(inds)
	return inds
}

// Snapshot returns the serializable record of this intervention. The
// live scheduled set is exported as a sorted index slice.
func (tp *TestProp) Snapshot() InterventionSnapshot {
	return InterventionSnapshot{
		Type: TypeTestProp,
		TestProp: &TestPropState{
			SymptomaticProb:  tp.SymptomaticProb,
			AsymptomaticProb: tp.AsymptomaticProb,
			TraceProb:        tp.TraceProb,
			TestSensitivity:  tp.TestSensitivity,
			ScheduledTests:   tp.ScheduledTests(),
		},
	}
}
