package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayzchen/go3to4"
	"github.com/rayzchen/go3to4/internal/app/storage"
)

var (
	scrambleDifficulty int
	scrambleSeed       int64
	scrambleSave       bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Generate a random legal scramble and print it in move notation.

Difficulty 0 produces a full scramble of 40 to 60 moves over every move
family. Difficulties 1 through 8 restrict the move pool and scale the
length: low tiers only turn the cubes, higher tiers add slice turns,
reorientations and gyros.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleDifficulty, "difficulty", "n", 0, "Difficulty tier (0 = full scramble)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "RNG seed (0 = random)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Log the scramble as a session")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	puzzle := go3to4.NewPuzzle()
	scrambler := go3to4.NewScrambler(scrambleSeed)

	moves, err := scrambler.Scramble(puzzle, scrambleDifficulty)
	if err != nil {
		return err
	}

	text := go3to4.FormatMoves(moves)
	fmt.Println(text)
	if verbose {
		fmt.Printf("%d moves, difficulty %d\n", len(moves), scrambleDifficulty)
		fmt.Println()
		fmt.Println(RenderPuzzle(puzzle))
	}

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		repo := storage.NewSessionRepository(db)
		id, err := repo.Create(scrambleDifficulty, text)
		if err != nil {
			return err
		}
		fmt.Printf("Session %s saved\n", id)
	}

	return nil
}
