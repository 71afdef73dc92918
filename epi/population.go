package epi

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewPopulation builds size susceptible people wired into a random
// undirected contact network. Each person's contact count is drawn from
// Poisson(contactsMean); partners are chosen uniformly and the link is
// recorded on both ends, so the network is symmetric.
func NewPopulation(size int, contactsMean float64, rng *rand.Rand) []*Person {
	people := make([]*Person, size)
	for i := range people {
		people[i] = NewPerson(i)
	}

	if size < 2 || contactsMean <= 0 {
		return people
	}

	poisson := distuv.Poisson{Lambda: contactsMean, Src: rng}
	linked := make([]map[int]bool, size)
	for i := range linked {
		linked[i] = make(map[int]bool)
	}

	for i := range people {
		nContacts := int(poisson.Rand())
		for c := 0; c < nContacts; c++ {
			j := rng.Intn(size)
			if j == i || linked[i][j] {
				continue
			}
			linked[i][j] = true
			linked[j][i] = true
			people[i].ContactInds = append(people[i].ContactInds, j)
			people[j].ContactInds = append(people[j].ContactInds, i)
		}
	}

	return people
}

// SeedInfections exposes the first nSeed people on day 0. Seeds skip the
// incubation period so the outbreak is already infectious when the loop
// starts, matching how index cases enter surveillance.
func SeedInfections(people []*Person, nSeed int, infectiousDays int, symptomaticProb float64, rng *rand.Rand) {
	if nSeed > len(people) {
		nSeed = len(people)
	}
	for i := 0; i < nSeed; i++ {
		p := people[i]
		p.State = StateInfectious
		p.InfectiousDay = 0
		p.RecoveryDay = infectiousDays
		p.willBeSymptomatic = Bernoulli(rng, symptomaticProb)
		p.Symptomatic = p.willBeSymptomatic
	}
}
