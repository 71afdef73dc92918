package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	epi "github.com/outbreak-sim/outbreak-sim/epi"
)

var (
	// CLI flags for simulation configs
	seed             int64   // Seed for all random draws
	days             int     // Number of simulated days
	populationSize   int     // Number of people in the population
	beta             float64 // Per-contact daily transmission probability
	contactsMean     float64 // Mean contacts per person
	seedInfections   int     // Initially infectious people
	incubationDays   int     // Days from exposure to infectiousness
	infectiousDays   int     // Days spent infectious before recovery
	symptomaticProb  float64 // Probability an infection shows symptoms
	logLevel         string  // Log verbosity level
	interventionsIn  string  // Path to YAML intervention bundle
	interventionsOut string  // Path to write intervention snapshots JSON
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "outbreak-sim",
	Short: "Agent-based epidemic simulator with pluggable interventions",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the epidemic simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := epi.NewSimConfig(days, populationSize, beta, contactsMean, seedInfections)
		cfg.IncubationDays = incubationDays
		cfg.InfectiousDays = infectiousDays
		cfg.SymptomaticProb = symptomaticProb
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid simulation config: %v", err)
		}

		// Build interventions from the YAML bundle, failing before the
		// simulation loop starts on any configuration error.
		var interventions []epi.Intervention
		if interventionsIn != "" {
			bundle, err := epi.LoadInterventionBundle(interventionsIn)
			if err != nil {
				logrus.Fatalf("Unable to read intervention config: %v", err)
			}
			interventions, err = bundle.Build(days)
			if err != nil {
				logrus.Fatalf("Invalid intervention config: %v", err)
			}
		}

		logrus.Infof("Starting simulation with %d people, %d days, beta=%f, seed=%d",
			populationSize, days, beta, seed)

		// Initialize and run the simulator
		s := epi.NewSimulator(cfg, seed)
		for _, iv := range interventions {
			s.Register(iv)
		}
		s.Run()
		s.Metrics.Print(s.N())

		if interventionsOut != "" {
			if err := WriteSnapshots(interventionsOut, s.Snapshots()); err != nil {
				logrus.Fatalf("Unable to write intervention snapshots: %v", err)
			}
			logrus.Infof("Wrote intervention snapshots to %s", interventionsOut)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().IntVar(&days, "days", 90, "Number of simulated days")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Population and disease configs
	runCmd.Flags().IntVar(&populationSize, "pop-size", 20000, "Number of people in the population")
	runCmd.Flags().Float64Var(&beta, "beta", 0.016, "Per-contact daily transmission probability")
	runCmd.Flags().Float64Var(&contactsMean, "contacts", 20, "Mean number of contacts per person")
	runCmd.Flags().IntVar(&seedInfections, "seed-infections", 10, "Number of initially infectious people")
	runCmd.Flags().IntVar(&incubationDays, "incubation-days", epi.DefaultIncubationDays, "Days from exposure to infectiousness")
	runCmd.Flags().IntVar(&infectiousDays, "infectious-days", epi.DefaultInfectiousDays, "Days spent infectious before recovery")
	runCmd.Flags().Float64Var(&symptomaticProb, "symptomatic-prob", epi.DefaultSymptomaticProb, "Probability an infection shows symptoms")

	// Intervention configs
	runCmd.Flags().StringVar(&interventionsIn, "interventions", "", "Path to YAML intervention bundle")
	runCmd.Flags().StringVar(&interventionsOut, "interventions-out", "", "Path to write intervention snapshots JSON")

	rootCmd.AddCommand(runCmd)
}
