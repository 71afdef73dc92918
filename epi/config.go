package epi

import "fmt"

// SimConfig groups the simulation parameters for NewSimulator.
type SimConfig struct {
	Days            int     // number of simulated days (must be > 0)
	PopulationSize  int     // number of people (must be > 0)
	Beta            float64 // per-contact daily transmission probability
	ContactsMean    float64 // mean contacts per person (Poisson)
	SeedInfections  int     // initially infectious people
	IncubationDays  int     // days from exposure to infectiousness
	InfectiousDays  int     // days spent infectious before recovery
	SymptomaticProb float64 // probability an infection shows symptoms
}

// Disease timing defaults, loosely calibrated to early-pandemic estimates.
const (
	DefaultIncubationDays  = 4
	DefaultInfectiousDays  = 8
	DefaultSymptomaticProb = 0.67
)

// NewSimConfig creates a SimConfig with disease-timing defaults filled in.
func NewSimConfig(days, populationSize int, beta, contactsMean float64, seedInfections int) SimConfig {
	return SimConfig{
		Days:            days,
		PopulationSize:  populationSize,
		Beta:            beta,
		ContactsMean:    contactsMean,
		SeedInfections:  seedInfections,
		IncubationDays:  DefaultIncubationDays,
		InfectiousDays:  DefaultInfectiousDays,
		SymptomaticProb: DefaultSymptomaticProb,
	}
}

// Validate checks that the configuration can produce a runnable simulation.
func (c SimConfig) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("population size must be positive, got %d", c.PopulationSize)
	}
	if c.Beta < 0 || c.Beta > 1 {
		return fmt.Errorf("beta must be in [0, 1], got %f", c.Beta)
	}
	if c.SeedInfections < 0 {
		return fmt.Errorf("seed infections must be non-negative, got %d", c.SeedInfections)
	}
	if c.IncubationDays < 0 || c.InfectiousDays <= 0 {
		return fmt.Errorf("disease durations must be positive, got incubation=%d infectious=%d", c.IncubationDays, c.InfectiousDays)
	}
	if c.SymptomaticProb < 0 || c.SymptomaticProb > 1 {
		return fmt.Errorf("symptomatic probability must be in [0, 1], got %f", c.SymptomaticProb)
	}
	return nil
}
