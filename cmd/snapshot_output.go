package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	epi "github.com/outbreak-sim/outbreak-sim/epi"
)

// WriteSnapshots serializes intervention snapshots to a JSON file for
// reproducibility audits.
func WriteSnapshots(path string, snapshots []epi.InterventionSnapshot) error {
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling intervention snapshots: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing intervention snapshots: %w", err)
	}
	return nil
}
