// Package cli implements the command-line interface for go3to4.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayzchen/go3to4/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "go3to4",
	Short: "3x3x3x3 hyperpuzzle simulator",
	Long: `go3to4 - A terminal simulator for the physical 3x3x3x3 hyperpuzzle.

The puzzle lives in four dimensions: two 3x3x3 cubes, two flat slices and
an eight piece middle ring stand in for the eight cells of a 4D cube.
Turn cells, gyro the puzzle through the fourth dimension, scramble at
eight difficulty tiers, and log your sessions.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.go3to4/go3to4.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		schema, err := db.CurrentVersion()
		if err != nil {
			db.Close()
			return nil, err
		}
		fmt.Printf("Database: %s (schema v%d)\n", db.Path(), schema)
	}
	return db, nil
}
