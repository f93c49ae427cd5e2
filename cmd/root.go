// Package cmd wires the mathquest CLI: session simulation, telemetry
// audit, mission preview, stats, and maintenance commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathquest",
	Short: "Adaptive mastery and telemetry validation engine",
	Long: "Mathquest tracks per-concept mastery and misconception hurdles for a\n" +
		"math learner, assembles balanced practice missions, and audits every\n" +
		"telemetry record the engine emits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("user", "local", "Learner ID the command acts on")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(missionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MATHQUEST_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func loadTunables(cmd *cobra.Command) (config.Tunables, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}
