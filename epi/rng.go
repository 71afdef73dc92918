package epi

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemPopulation is the RNG subsystem for population and
	// contact-network generation.
	SubsystemPopulation = "population"

	// SubsystemProgression is the RNG subsystem for per-person disease
	// progression draws (symptom onset).
	SubsystemProgression = "progression"

	// SubsystemTransmission is the RNG subsystem for per-contact
	// infection draws.
	SubsystemTransmission = "transmission"
)

// SubsystemIntervention returns the subsystem name for the named
// intervention, so each policy draws from its own isolated stream.
func SubsystemIntervention(label string) string {
	return fmt.Sprintf("intervention_%s", label)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName). Isolating
// subsystems keeps intervention draws from perturbing the transmission
// stream, so adding a policy does not reshuffle the epidemic itself.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := uint64(int64(p.key) ^ fnv1a64(name))
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Draw helpers ===

// Bernoulli performs a single Bernoulli trial with success probability p.
// p <= 0 never succeeds and consumes no randomness, so zero-probability
// branches cannot shift the stream.
func Bernoulli(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

// ChooseWeighted draws up to n distinct indices with probability
// proportional to weights, without replacement. Fewer than n indices are
// returned when the weight mass runs out (all remaining weights zero).
// The draw depends only on the weight vector and the source state, not on
// the order the caller assembled the weights in.
func ChooseWeighted(weights []float64, n int, src rand.Source) []int {
	w := sampleuv.NewWeighted(weights, src)
	inds := make([]int, 0, n)
	for len(inds) < n {
		idx, ok := w.Take()
		if !ok {
			break
		}
		inds = append(inds, idx)
	}
	return inds
}
