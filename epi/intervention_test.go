package epi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshots_DiscriminatorsDistinguishPolicyTypes(t *testing.T) {
	// GIVEN one instance of each concrete policy
	cb, err := NewChangeBeta([]int{1}, []float64{0.5})
	assert.NoError(t, err)
	tn := NewTestNum(5, []float64{1}, DefaultSymptTest, DefaultTraceTest, DefaultSensitivity)
	tp := NewTestProp(5, DefaultSymptomaticTestProb, DefaultAsymptomaticProb, DefaultTraceProb, DefaultTestSensitivity)

	// WHEN snapshots are taken
	snaps := []InterventionSnapshot{cb.Snapshot(), tn.Snapshot(), tp.Snapshot()}

	// THEN each carries a distinct discriminator and only its own state
	types := make(map[string]bool)
	for _, s := range snaps {
		types[s.Type] = true
	}
	assert.Len(t, types, 3)

	assert.NotNil(t, snaps[0].ChangeBeta)
	assert.Nil(t, snaps[0].TestNum)
	assert.Nil(t, snaps[0].TestProp)
	assert.NotNil(t, snaps[1].TestNum)
	assert.NotNil(t, snaps[2].TestProp)
}

func TestSnapshot_JSONCarriesAllConstructorFields(t *testing.T) {
	// GIVEN a configured TestProp snapshot
	tp := NewTestProp(5, 0.9, 0.01, 1.0, 0.8)

	data, err := json.Marshal(tp.Snapshot())
	assert.NoError(t, err)

	// WHEN the JSON is decoded back
	var decoded InterventionSnapshot
	assert.NoError(t, json.Unmarshal(data, &decoded))

	// THEN the discriminator and every constructor field survive
	assert.Equal(t, TypeTestProp, decoded.Type)
	assert.Equal(t, 0.9, decoded.TestProp.SymptomaticProb)
	assert.Equal(t, 0.01, decoded.TestProp.AsymptomaticProb)
	assert.Equal(t, 1.0, decoded.TestProp.TraceProb)
	assert.Equal(t, 0.8, decoded.TestProp.TestSensitivity)
}

func TestSimulator_SnapshotsPreserveRegistrationOrder(t *testing.T) {
	sim := newTestSim(nil, 5, 0.5, 1)
	tn := NewTestNum(5, []float64{1}, DefaultSymptTest, DefaultTraceTest, DefaultSensitivity)
	cb, err := NewChangeBeta([]int{1}, []float64{0.5})
	assert.NoError(t, err)
	sim.Register(tn)
	sim.Register(cb)

	snaps := sim.Snapshots()

	assert.Equal(t, []string{TypeTestNum, TypeChangeBeta}, []string{snaps[0].Type, snaps[1].Type})
}
