package epi

// Intervention is the extension contract for time-varying policy actions.
// The simulator holds a slice of this interface and never inspects the
// concrete type; policies mutate simulation state through Apply and hand
// their accumulated series back through Finalize.
type Intervention interface {
	// Apply is invoked once per simulated day, in registration order,
	// with the current day index.
	Apply(sim *Simulator, t int)

	// Finalize is invoked exactly once after the final day. Policies
	// compute derived series (cumulative sums) here and merge their
	// results into sim.Results. Calling it twice is undefined.
	Finalize(sim *Simulator)

	// Snapshot returns a serializable record of the policy's
	// configuration and state, tagged with a type discriminator.
	Snapshot() InterventionSnapshot
}

// Intervention type discriminators. Shared by Snapshot output and the
// YAML bundle loader.
const (
	TypeChangeBeta = "change-beta"
	TypeTestNum    = "test-num"
	TypeTestProp   = "test-prop"
)

// InterventionSnapshot is the JSON-exportable record of one intervention.
// Exactly one of the per-policy state fields is set, matching Type. An
// explicit tagged union keeps the export exhaustive and statically
// checkable instead of relying on reflective attribute dumps.
type InterventionSnapshot struct {
	Type       string          `json:"type"`
	ChangeBeta *ChangeBetaState `json:"change_beta,omitempty"`
	TestNum    *TestNumState    `json:"test_num,omitempty"`
	TestProp   *TestPropState   `json:"test_prop,omitempty"`
}

// ChangeBetaState is the serializable state of a ChangeBeta intervention.
type ChangeBetaState struct {
	Days     []int     `json:"days"`
	Changes  []float64 `json:"changes"`
	OrigBeta *float64  `json:"orig_beta,omitempty"` // nil until first Apply
}

// TestNumState is the serializable state of a TestNum intervention.
type TestNumState struct {
	DailyTests  []float64 `json:"daily_tests"`
	SymptTest   float64   `json:"sympt_test"`
	TraceTest   float64   `json:"trace_test"`
	Sensitivity float64   `json:"sensitivity"`
}

// TestPropState is the serializable state of a TestProp intervention.
type TestPropState struct {
	SymptomaticProb  float64 `json:"symptomatic_prob"`
	AsymptomaticProb float64 `json:"asymptomatic_prob"`
	TraceProb        float64 `json:"trace_prob"`
	TestSensitivity  float64 `json:"test_sensitivity"`
	ScheduledTests   []int   `json:"scheduled_tests"` // sorted person indices
}

// baseIntervention carries the result series every policy owns. Results
// stay private to the policy until Finalize merges them, so partial
// series are never visible to the simulation mid-run.
type baseIntervention struct {
	results map[string]*Result
}

func newBaseIntervention() baseIntervention {
	return baseIntervention{results: make(map[string]*Result)}
}

// mergeResults copies the policy's series into the simulator's result
// set. Series names collide last-writer-wins, matching registration
// order since Finalize runs in registration order.
func (b *baseIntervention) mergeResults(sim *Simulator) {
	for name, res := range b.results {
		sim.Results[name] = res
	}
}
