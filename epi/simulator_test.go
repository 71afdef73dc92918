package epi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingIntervention is a stub policy used to observe dispatch order
// and simulation state mid-run.
type recordingIntervention struct {
	label     string
	calls     *[]string
	betasSeen []float64
	finalized int
}

var _ Intervention = (*recordingIntervention)(nil)

func (r *recordingIntervention) Apply(sim *Simulator, t int) {
	*r.calls = append(*r.calls, r.label)
	r.betasSeen = append(r.betasSeen, sim.Beta)
}

func (r *recordingIntervention) Finalize(sim *Simulator) {
	r.finalized++
}

func (r *recordingIntervention) Snapshot() InterventionSnapshot {
	return InterventionSnapshot{Type: r.label}
}

func TestSimulator_InterventionsApplyInRegistrationOrder(t *testing.T) {
	// GIVEN two interventions registered in a fixed order
	sim := newTestSim([]*Person{NewPerson(0)}, 3, 0, 1)
	var calls []string
	first := &recordingIntervention{label: "first", calls: &calls}
	second := &recordingIntervention{label: "second", calls: &calls}
	sim.Register(first)
	sim.Register(second)

	// WHEN the simulation runs
	sim.Run()

	// THEN each day dispatches first then second
	assert.Equal(t, []string{"first", "second", "first", "second", "first", "second"}, calls)
	// AND each intervention finalizes exactly once
	assert.Equal(t, 1, first.finalized)
	assert.Equal(t, 1, second.finalized)
}

func TestSimulator_LaterInterventionsSeeEarlierMutations(t *testing.T) {
	// GIVEN ChangeBeta registered before a probe intervention
	sim := newTestSim([]*Person{NewPerson(0)}, 5, 0.5, 1)
	cb, err := NewChangeBeta([]int{2}, []float64{0.0})
	assert.NoError(t, err)
	var calls []string
	probe := &recordingIntervention{label: "probe", calls: &calls}
	sim.Register(cb)
	sim.Register(probe)

	// WHEN the simulation runs
	sim.Run()

	// THEN the probe observes the shifted beta the same day it changes
	assert.Equal(t, []float64{0.5, 0.5, 0.0, 0.0, 0.0}, probe.betasSeen)
}

func TestSimulator_ZeroBetaStopsTransmission(t *testing.T) {
	// GIVEN an infectious person wired to a susceptible contact, beta=0
	p := infectiousPerson(0, 1)
	q := NewPerson(1)
	q.ContactInds = []int{0}
	sim := newTestSim([]*Person{p, q}, 10, 0, 1)

	sim.Run()

	assert.Equal(t, StateSusceptible, q.State)
}

func TestSimulator_FullBetaInfectsAllContacts(t *testing.T) {
	// GIVEN beta=1 and a hub with three susceptible contacts
	hub := infectiousPerson(0, 1, 2, 3)
	people := []*Person{hub, NewPerson(1), NewPerson(2), NewPerson(3)}
	for i := 1; i < 4; i++ {
		people[i].ContactInds = []int{0}
	}
	sim := newTestSim(people, 2, 1.0, 1)

	sim.Run()

	for i := 1; i < 4; i++ {
		assert.True(t, people[i].Infected(), "contact %d not infected", i)
	}
}

func TestSimulator_EngineSeriesRecordedPerDay(t *testing.T) {
	p := infectiousPerson(0)
	sim := newTestSim([]*Person{p}, 3, 0, 1)

	sim.Run()

	assert.Equal(t, []float64{1, 1, 1}, sim.Results["n_infectious"].Values)
}

func TestSimulator_DeterministicGivenSeed(t *testing.T) {
	// GIVEN two identically-configured simulations with the same seed
	run := func() *Simulator {
		cfg := NewSimConfig(30, 500, 0.05, 10, 5)
		s := NewSimulator(cfg, 1234)
		cb, _ := NewChangeBeta([]int{10}, []float64{0.5})
		s.Register(cb)
		s.Register(NewTestNum(30, uniformBudget(30, 20), DefaultSymptTest, DefaultTraceTest, DefaultSensitivity))
		s.Register(NewTestProp(30, DefaultSymptomaticTestProb, DefaultAsymptomaticProb, DefaultTraceProb, DefaultTestSensitivity))
		s.Run()
		return s
	}

	a := run()
	b := run()

	// THEN every result series is bit-for-bit identical
	assert.Equal(t, len(a.Results), len(b.Results))
	for name, series := range a.Results {
		assert.Equal(t, series.Values, b.Results[name].Values, "series %q", name)
	}
	assert.Equal(t, a.Metrics.TotalInfected, b.Metrics.TotalInfected)
	assert.Equal(t, a.Metrics.TotalDiagnosed, b.Metrics.TotalDiagnosed)
}

func TestSimulator_MetricsCollectedAfterRun(t *testing.T) {
	p := infectiousPerson(0)
	sim := newTestSim([]*Person{p, NewPerson(1)}, 5, 0, 1)
	sim.Register(NewTestProp(5, 1.0, 0.0, 1.0, 1.0))

	sim.Run()

	assert.Equal(t, 1, sim.Metrics.TotalInfected)
	assert.Equal(t, 1, sim.Metrics.TotalDiagnosed)
	assert.Equal(t, 1, sim.Metrics.PeakInfectious)
	assert.GreaterOrEqual(t, sim.Metrics.TotalTests, 1)
}

// uniformBudget builds a constant daily test budget.
func uniformBudget(npts int, perDay float64) []float64 {
	budget := make([]float64, npts)
	for i := range budget {
		budget[i] = perDay
	}
	return budget
}
