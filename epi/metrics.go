// Tracks simulation-wide outcome metrics for final reporting.

package epi

import "fmt"

// Metrics aggregates outbreak statistics for final reporting. Useful for
// comparing intervention scenarios and debugging behavior over time.
type Metrics struct {
	TotalInfected  int // Number of people ever infected
	TotalDiagnosed int // Number of people diagnosed by run end
	PeakInfectious int // Max number of simultaneously infectious people
	PeakDay        int // Day the infectious peak occurred
	TotalTests     int // Number of tests administered (testing policies only)
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Collect derives metrics from the finished simulation's population and
// result series. Call after interventions have finalized so the merged
// testing series are visible.
func (m *Metrics) Collect(sim *Simulator) {
	for _, person := range sim.People {
		if person.State != StateSusceptible {
			m.TotalInfected++
		}
		if person.Diagnosed {
			m.TotalDiagnosed++
		}
	}
	if series, ok := sim.Results["n_infectious"]; ok {
		for t, v := range series.Values {
			if int(v) > m.PeakInfectious {
				m.PeakInfectious = int(v)
				m.PeakDay = t
			}
		}
	}
	if series, ok := sim.Results["n_tested"]; ok {
		m.TotalTests = int(series.Total())
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(populationSize int) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Total Infected       : %d\n", m.TotalInfected)
	if populationSize > 0 {
		fmt.Printf("Attack Rate          : %.2f%%\n", 100*float64(m.TotalInfected)/float64(populationSize))
	}
	fmt.Printf("Total Diagnosed      : %d\n", m.TotalDiagnosed)
	fmt.Printf("Peak Infectious      : %d (day %d)\n", m.PeakInfectious, m.PeakDay)
	if m.TotalTests > 0 {
		fmt.Printf("Tests Administered   : %d\n", m.TotalTests)
	}
}
