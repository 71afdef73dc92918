package epi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InterventionBundle holds the declarative intervention configuration,
// loadable from a YAML file. Nil pointer fields mean "not set in YAML"
// and fall back to the policy's documented default.
type InterventionBundle struct {
	Interventions []InterventionConfig `yaml:"interventions"`
}

// InterventionConfig configures a single intervention. Type selects the
// policy; the remaining fields apply only to the matching policy.
type InterventionConfig struct {
	Type string `yaml:"type"`

	// change-beta
	Days    []int     `yaml:"days,omitempty"`
	Changes []float64 `yaml:"changes,omitempty"`

	// test-num
	DailyTests  []float64 `yaml:"daily_tests,omitempty"`
	SymptTest   *float64  `yaml:"sympt_test,omitempty"`
	TraceTest   *float64  `yaml:"trace_test,omitempty"`
	Sensitivity *float64  `yaml:"sensitivity,omitempty"`

	// test-prop
	SymptomaticProb  *float64 `yaml:"symptomatic_prob,omitempty"`
	AsymptomaticProb *float64 `yaml:"asymptomatic_prob,omitempty"`
	TraceProb        *float64 `yaml:"trace_prob,omitempty"`
	TestSensitivity  *float64 `yaml:"test_sensitivity,omitempty"`
}

// LoadInterventionBundle reads and parses a YAML intervention file.
func LoadInterventionBundle(path string) (*InterventionBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading intervention config: %w", err)
	}
	var bundle InterventionBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing intervention config: %w", err)
	}
	return &bundle, nil
}

// ValidInterventionTypes is the set of recognized intervention type names.
// Shared by Validate() and Build() to avoid duplication.
var ValidInterventionTypes = map[string]bool{
	TypeChangeBeta: true,
	TypeTestNum:    true,
	TypeTestProp:   true,
}

// Validate checks that every entry names a known type and that its
// parameter ranges are valid. Schedule-length mismatches surface here,
// before the simulation loop starts.
func (b *InterventionBundle) Validate() error {
	for i, cfg := range b.Interventions {
		if !ValidInterventionTypes[cfg.Type] {
			return fmt.Errorf("intervention %d: unknown type %q", i, cfg.Type)
		}
		if cfg.Type == TypeChangeBeta && len(cfg.Days) != len(cfg.Changes) {
			return fmt.Errorf("intervention %d: number of days supplied (%d) does not match number of changes in beta (%d)", i, len(cfg.Days), len(cfg.Changes))
		}
		for _, p := range []*float64{cfg.Sensitivity, cfg.SymptomaticProb, cfg.AsymptomaticProb, cfg.TraceProb, cfg.TestSensitivity} {
			if p != nil && (*p < 0 || *p > 1) {
				return fmt.Errorf("intervention %d: probabilities must be in [0, 1], got %f", i, *p)
			}
		}
		if cfg.SymptTest != nil && *cfg.SymptTest < 0 {
			return fmt.Errorf("intervention %d: sympt_test must be non-negative, got %f", i, *cfg.SymptTest)
		}
		if cfg.TraceTest != nil && *cfg.TraceTest < 0 {
			return fmt.Errorf("intervention %d: trace_test must be non-negative, got %f", i, *cfg.TraceTest)
		}
	}
	return nil
}

// Build constructs the configured interventions in declaration order.
// npts is the number of simulated days the result series must cover.
func (b *InterventionBundle) Build(npts int) ([]Intervention, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	interventions := make([]Intervention, 0, len(b.Interventions))
	for _, cfg := range b.Interventions {
		switch cfg.Type {
		case TypeChangeBeta:
			cb, err := NewChangeBeta(cfg.Days, cfg.Changes)
			if err != nil {
				return nil, err
			}
			interventions = append(interventions, cb)
		case TypeTestNum:
			interventions = append(interventions, NewTestNum(
				npts,
				cfg.DailyTests,
				floatOr(cfg.SymptTest, DefaultSymptTest),
				floatOr(cfg.TraceTest, DefaultTraceTest),
				floatOr(cfg.Sensitivity, DefaultSensitivity),
			))
		case TypeTestProp:
			interventions = append(interventions, NewTestProp(
				npts,
				floatOr(cfg.SymptomaticProb, DefaultSymptomaticTestProb),
				floatOr(cfg.AsymptomaticProb, DefaultAsymptomaticProb),
				floatOr(cfg.TraceProb, DefaultTraceProb),
				floatOr(cfg.TestSensitivity, DefaultTestSensitivity),
			))
		}
	}
	return interventions, nil
}

// floatOr returns *p, or def when p is unset.
func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}
