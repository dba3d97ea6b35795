package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rayzchen/go3to4/internal/app/storage"
)

var (
	sessionsLimit  int
	sessionsLast   bool
	sessionsDelete string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List logged play sessions",
	Long:  `List recent play sessions with their scramble, move count, duration and outcome.`,
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to show")
	sessionsCmd.Flags().BoolVar(&sessionsLast, "last", false, "Show only the most recent session")
	sessionsCmd.Flags().StringVar(&sessionsDelete, "delete", "", "Delete the session with the given ID")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)

	if sessionsDelete != "" {
		return deleteSession(repo, sessionsDelete)
	}

	if sessionsLast {
		s, err := repo.GetLast()
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		printSession(*s)
		return nil
	}

	sessions, err := repo.List(sessionsLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	for _, s := range sessions {
		printSession(s)
	}

	return nil
}

func deleteSession(repo *storage.SessionRepository, id string) error {
	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no session with ID %s", id)
	}
	if err := repo.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", id)
	return nil
}

func printSession(s storage.Session) {
	outcome := "unsolved"
	if s.Solved {
		outcome = "solved"
	}
	duration := "-"
	if s.DurationMs != nil {
		duration = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
	}

	id := s.SessionID[:8]
	if verbose {
		// Full ID so it can be passed back to --delete.
		id = s.SessionID
	}
	fmt.Printf("%s  %s  tier %d  %4d moves  %8s  %s\n",
		id,
		s.StartedAt.Local().Format("2006-01-02 15:04"),
		s.Difficulty, s.MoveCount, duration, outcome)

	if verbose && s.ScrambleText != nil {
		fmt.Printf("          scramble: %s\n", *s.ScrambleText)
	}
}
