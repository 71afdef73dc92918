// epi/simulator.go
package epi

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the
// population, the parameter table, and the day loop.
type Simulator struct {
	Config SimConfig
	Clock  int // current day index

	// Beta is the per-contact daily transmission probability. It is the
	// parameter table entry interventions mutate; later interventions and
	// the transmission step observe mutations made earlier the same day.
	Beta float64

	People []*Person

	// Interventions are applied once per day in registration order.
	Interventions []Intervention

	// Results maps series name to time series. The engine writes its own
	// series during the run; intervention series appear only at Finalize.
	Results map[string]*Result

	Metrics *Metrics

	// RNG provides the per-subsystem random streams. All randomness in a
	// run flows through it, so a run is reproducible from the seed.
	RNG *PartitionedRNG
}

// NewSimulator builds a simulator with a freshly generated population
// and seeded infections. The configuration should be validated first.
func NewSimulator(cfg SimConfig, seed int64) *Simulator {
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	popRNG := rng.ForSubsystem(SubsystemPopulation)
	people := NewPopulation(cfg.PopulationSize, cfg.ContactsMean, popRNG)
	SeedInfections(people, cfg.SeedInfections, cfg.InfectiousDays, cfg.SymptomaticProb, popRNG)

	s := &Simulator{
		Config:        cfg,
		Clock:         0,
		Beta:          cfg.Beta,
		People:        people,
		Interventions: make([]Intervention, 0),
		Results:       make(map[string]*Result),
		Metrics:       NewMetrics(),
		RNG:           rng,
	}
	s.Results["n_infectious"] = NewResult("Number infectious", cfg.Days)
	s.Results["n_diagnosed"] = NewResult("Number diagnosed (total)", cfg.Days)
	return s
}

// N returns the population size.
func (sim *Simulator) N() int {
	return len(sim.People)
}

// GetPerson returns the person at the given population index.
func (sim *Simulator) GetPerson(index int) *Person {
	return sim.People[index]
}

// Register appends an intervention to the dispatch list. Interventions
// run in registration order every day. Register before Run; instances
// carry state across days and must not be reused across runs.
func (sim *Simulator) Register(iv Intervention) {
	sim.Interventions = append(sim.Interventions, iv)
}

// FlagContacts marks every contact of a diagnosed person as a known
// contact, feeding the trace-weighted testing policies.
func (sim *Simulator) FlagContacts(p *Person) {
	for _, idx := range p.ContactInds {
		sim.People[idx].KnownContact = true
	}
}

// Run executes the full simulation: Config.Days timesteps followed by
// one finalization pass over the interventions.
func (sim *Simulator) Run() {
	logrus.Infof("Starting simulation: %d people, %d days, beta=%f, %d interventions",
		sim.N(), sim.Config.Days, sim.Beta, len(sim.Interventions))

	for t := 0; t < sim.Config.Days; t++ {
		sim.Clock = t
		sim.step(t)
	}

	for _, iv := range sim.Interventions {
		iv.Finalize(sim)
	}
	sim.Metrics.Collect(sim)
	logrus.Infof("[day %03d] Simulation ended", sim.Clock)
}

// step processes one day: disease progression first (so symptom onset is
// visible to today's testing), then interventions in registration order,
// then transmission with whatever beta the interventions left in place.
func (sim *Simulator) step(t int) {
	for _, person := range sim.People {
		person.Progress(t)
	}

	for _, iv := range sim.Interventions {
		iv.Apply(sim, t)
	}

	sim.transmit(t)

	nInfectious, nDiagnosed := 0, 0
	for _, person := range sim.People {
		if person.State == StateInfectious {
			nInfectious++
		}
		if person.Diagnosed {
			nDiagnosed++
		}
	}
	sim.Results["n_infectious"].Add(t, float64(nInfectious))
	sim.Results["n_diagnosed"].Add(t, float64(nDiagnosed))
	logrus.Debugf("[day %03d] infectious=%d diagnosed=%d beta=%f", t, nInfectious, nDiagnosed, sim.Beta)
}

// transmit runs the contact-transmission step: each infectious person
// infects each susceptible contact with probability Beta.
func (sim *Simulator) transmit(t int) {
	rng := sim.RNG.ForSubsystem(SubsystemTransmission)
	progRNG := sim.RNG.ForSubsystem(SubsystemProgression)
	cfg := sim.Config

	for _, person := range sim.People {
		if person.State != StateInfectious {
			continue
		}
		for _, idx := range person.ContactInds {
			contact := sim.People[idx]
			if contact.State != StateSusceptible {
				continue
			}
			if Bernoulli(rng, sim.Beta) {
				contact.Expose(t, cfg.IncubationDays, cfg.InfectiousDays, cfg.SymptomaticProb, progRNG)
			}
		}
	}
}

// Snapshots returns the serializable records of all registered
// interventions, in registration order.
func (sim *Simulator) Snapshots() []InterventionSnapshot {
	snaps := make([]InterventionSnapshot, 0, len(sim.Interventions))
	for _, iv := range sim.Interventions {
		snaps = append(snaps, iv.Snapshot())
	}
	return snaps
}
