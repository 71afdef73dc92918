// Defines the Person struct that models an individual in the simulation.
// Tracks disease state, symptom status, diagnosis, and contact links.

package epi

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DiseaseState represents the disease lifecycle state of a person.
type DiseaseState string

const (
	StateSusceptible DiseaseState = "susceptible"
	StateExposed     DiseaseState = "exposed"
	StateInfectious  DiseaseState = "infectious"
	StateRecovered   DiseaseState = "recovered"
)

// Person models a single individual's disease lifecycle in the simulation.
// Each person has:
// - a disease state advanced once per day
// - symptom and diagnosis flags read by the testing interventions
// - a fixed contact list (indices into the simulator's population)
type Person struct {
	Index int // Position in the simulator's population

	State        DiseaseState // susceptible, exposed, infectious, recovered
	Symptomatic  bool         // True while infectious with observable symptoms
	KnownContact bool         // Flagged as a contact of a diagnosed case
	Diagnosed    bool         // True once a test has come back positive

	ContactInds []int // Indices of this person's contacts, fixed at population build

	// Progression schedule, set when the person is exposed.
	InfectiousDay int // Day the person turns infectious
	RecoveryDay   int // Day the person recovers
	DiagnosedDay  int // Day of diagnosis, -1 until diagnosed

	// Whether symptoms appear at the infectious transition. Drawn once at
	// exposure so re-running progression is deterministic.
	willBeSymptomatic bool
}

// NewPerson creates a susceptible person with no contacts.
func NewPerson(index int) *Person {
	return &Person{
		Index:        index,
		State:        StateSusceptible,
		DiagnosedDay: -1,
	}
}

// Infected reports whether the person currently carries the disease.
func (p *Person) Infected() bool {
	return p.State == StateExposed || p.State == StateInfectious
}

// Expose transitions a susceptible person to exposed on day t and fixes
// the progression schedule. No-op for anyone already exposed or beyond.
func (p *Person) Expose(t int, incubationDays, infectiousDays int, symptomaticProb float64, rng *rand.Rand) {
	if p.State != StateSusceptible {
		return
	}
	p.State = StateExposed
	p.InfectiousDay = t + incubationDays
	p.RecoveryDay = t + incubationDays + infectiousDays
	p.willBeSymptomatic = Bernoulli(rng, symptomaticProb)
}

// Progress advances the person's disease state to day t. Called once per
// day before interventions run, so symptom onset on day t is visible to
// testing the same day.
func (p *Person) Progress(t int) {
	switch p.State {
	case StateExposed:
		if t >= p.InfectiousDay {
			p.State = StateInfectious
			p.Symptomatic = p.willBeSymptomatic
		}
	case StateInfectious:
		if t >= p.RecoveryDay {
			p.State = StateRecovered
			p.Symptomatic = false
		}
	}
}

// Test administers a diagnostic test on day t. A truly infected person is
// diagnosed with probability sensitivity; uninfected people always test
// negative. Returns true only when the test flips Diagnosed to true.
func (p *Person) Test(t int, sensitivity float64, rng *rand.Rand) bool {
	if p.Diagnosed {
		return false
	}
	if p.Infected() && Bernoulli(rng, sensitivity) {
		p.Diagnosed = true
		p.DiagnosedDay = t
		return true
	}
	return false
}

// This method returns a human-readable string representation of a Person.
func (p Person) String() string {
	return fmt.Sprintf("Person: (Index: %d, State: %s, Symptomatic: %t, Diagnosed: %t)", p.Index, p.State, p.Symptomatic, p.Diagnosed)
}
