// Package epi provides the core agent-based epidemic simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - person.go: Person disease lifecycle (susceptible → exposed → infectious → recovered) and testing
//   - simulator.go: The day loop, transmission step, and intervention dispatch
//   - intervention.go: The Intervention extension contract and result plumbing
//
// # Architecture
//
// The simulator advances in whole-day timesteps. Each day it progresses
// every person's disease state, applies the registered interventions in
// registration order, then runs the contact-transmission step with the
// current beta. Interventions own their result series and merge them into
// the simulator's result set only at finalization.
//
// # Key Interfaces
//
// The extension point is the Intervention interface (Apply, Finalize,
// Snapshot). Concrete policies:
//   - ChangeBeta: rescales the transmission rate on scheduled days
//   - TestNum: spends a fixed daily test budget via weighted sampling
//   - TestProp: per-person Bernoulli testing with contact-tracing follow-up
//
// All randomness is drawn from PartitionedRNG subsystem streams so a run
// is reproducible from its seed alone.
package epi
