package epi

// Shared helpers for constructing small hand-built simulations in tests.

// newTestSim builds a simulator around a hand-assembled population,
// bypassing random population generation so tests control every person.
func newTestSim(people []*Person, days int, beta float64, seed int64) *Simulator {
	for i, p := range people {
		p.Index = i
	}
	s := &Simulator{
		Config: SimConfig{
			Days:            days,
			PopulationSize:  len(people),
			Beta:            beta,
			IncubationDays:  DefaultIncubationDays,
			InfectiousDays:  DefaultInfectiousDays,
			SymptomaticProb: DefaultSymptomaticProb,
		},
		Beta:    beta,
		People:  people,
		Results: make(map[string]*Result),
		Metrics: NewMetrics(),
		RNG:     NewPartitionedRNG(NewSimulationKey(seed)),
	}
	s.Results["n_infectious"] = NewResult("Number infectious", days)
	s.Results["n_diagnosed"] = NewResult("Number diagnosed (total)", days)
	return s
}

// infectiousPerson builds a symptomatic infectious person that stays
// infectious for the whole test horizon.
func infectiousPerson(index int, contacts ...int) *Person {
	p := NewPerson(index)
	p.State = StateInfectious
	p.Symptomatic = true
	p.RecoveryDay = 1 << 30
	p.ContactInds = contacts
	return p
}
