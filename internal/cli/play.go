package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rayzchen/go3to4"
	"github.com/rayzchen/go3to4/internal/app/storage"
)

var (
	playSeed  int64
	playSpeed float64
	playSave  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive puzzle session",
	Long: `Start an interactive TUI session on the hyperpuzzle.

Keyboard shortcuts:
  s/f     - select the left/right cube
  e/c     - select the up/down cell
  r/w     - select the front/back cell
  d/v     - select the in/out cell
  i/k     - turn the selected cell about x / x'
  j/l     - turn the selected cell about y / y'
  o/u     - turn the selected cell about z / z'
  space   - gyro the selected cell (setup moves are queued automatically)
  g       - fly the outer slice to the other end
  , .     - slide the middle ring
  m       - flip the middle ring's opening
  x/X     - rotate the whole puzzle
  z/y     - undo / redo
  1-8, 0  - scramble (0 = full scramble)
  n       - reset to solved
  q/Esc   - quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Scramble RNG seed (0 = random)")
	playCmd.Flags().Float64Var(&playSpeed, "speed", 4.0, "Animation speed multiplier")
	playCmd.Flags().BoolVar(&playSave, "save", false, "Log the session to the database")
	rootCmd.AddCommand(playCmd)
}

// Messages
type tickMsg time.Time

const tickInterval = 50 * time.Millisecond

// Model
type playModel struct {
	controller *go3to4.Controller
	selected   go3to4.CellLocation

	// Database (nil when not saving)
	db        *storage.DB
	repo      *storage.SessionRepository
	sessionID string

	lastMsg  string
	err      error
	quitting bool
}

func newPlayModel(db *storage.DB) *playModel {
	m := &playModel{
		controller: go3to4.NewController(
			go3to4.WithScrambleSeed(playSeed),
			go3to4.WithAnimationSpeed(playSpeed),
		),
		selected: go3to4.CellLeft,
		db:       db,
	}
	if db != nil {
		m.repo = storage.NewSessionRepository(db)
	}
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.controller.Advance(tickInterval.Seconds())
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.finishSession()
		return m, tea.Quit

	// Cell selection
	case "s":
		m.selected = go3to4.CellLeft
	case "f":
		m.selected = go3to4.CellRight
	case "e":
		m.selected = go3to4.CellUp
	case "c":
		m.selected = go3to4.CellDown
	case "r":
		m.selected = go3to4.CellFront
	case "w":
		m.selected = go3to4.CellBack
	case "d":
		m.selected = go3to4.CellIn
	case "v":
		m.selected = go3to4.CellOut

	// Turns of the selected cell
	case "i":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirYZ))
	case "k":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirZY))
	case "j":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirXZ))
	case "l":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirZX))
	case "o":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirXY))
	case "u":
		m.report("turn", m.controller.RequestRotate(m.selected, go3to4.DirYX))

	// Gyros
	case " ":
		m.report("gyro", m.controller.RequestGyro(m.selected))
	case "g":
		m.report("outer gyro", m.controller.RequestGyroOuter())
	case ",":
		m.report("ring slide", m.controller.RequestGyroMiddle(-1))
	case ".":
		m.report("ring slide", m.controller.RequestGyroMiddle(1))
	case "m":
		m.report("ring flip", m.controller.RequestGyroMiddle(0))

	// Whole puzzle
	case "x":
		m.report("rotation", m.controller.RequestRotatePuzzle(go3to4.DirYZ))
	case "X":
		m.report("rotation", m.controller.RequestRotatePuzzle(go3to4.DirZY))

	// History
	case "z":
		m.report("undo", m.controller.UndoMove())
	case "y":
		m.report("redo", m.controller.RedoMove())

	case "n":
		m.controller.ResetPuzzle()
		m.lastMsg = "reset"

	case "0", "1", "2", "3", "4", "5", "6", "7", "8":
		difficulty := int(key[0] - '0')
		moves, err := m.controller.ScramblePuzzle(difficulty)
		if err != nil {
			m.err = err
			break
		}
		m.err = nil
		m.lastMsg = fmt.Sprintf("scrambled (%d moves)", len(moves))
		m.startSession(difficulty, go3to4.FormatMoves(moves))
	}
	return m, nil
}

func (m *playModel) report(what string, accepted bool) {
	if accepted {
		m.lastMsg = what
	} else {
		m.lastMsg = what + " rejected"
	}
}

func (m *playModel) startSession(difficulty int, scramble string) {
	if m.repo == nil {
		return
	}
	// Close out any session already running before starting the next.
	m.finishSession()
	id, err := m.repo.Create(difficulty, scramble)
	if err != nil {
		m.err = err
		return
	}
	m.sessionID = id
}

func (m *playModel) finishSession() {
	if m.repo == nil || m.sessionID == "" {
		return
	}
	err := m.repo.Finish(m.sessionID, m.controller.TurnCount(), m.controller.Puzzle().IsSolved())
	if err != nil {
		m.err = err
	}
	m.sessionID = ""
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var out string
	out += titleStyle.Render("go3to4") + "\n\n"
	out += RenderPuzzle(m.controller.Puzzle())
	out += "\n"
	out += statusStyle.Render(m.controller.Status()) + "\n"
	out += labelStyle.Render("selected: ") + selectedLabelStyle.Render(m.selected.String())
	if pending, progress, ok := m.controller.Pending(); ok {
		out += labelStyle.Render(fmt.Sprintf("   applying %s (%d%%)", pending, int(progress*100)))
	}
	if m.lastMsg != "" {
		out += labelStyle.Render("   " + m.lastMsg)
	}
	out += "\n"
	if m.err != nil {
		out += errorStyle.Render(m.err.Error()) + "\n"
	}
	out += helpStyle.Render("s/f/e/c/r/w/d/v select · i/k j/l o/u turn · space gyro · g outer · ,/./m ring · z/y undo/redo · 0-8 scramble · q quit")
	out += "\n"
	return out
}

func runPlay(cmd *cobra.Command, args []string) error {
	var db *storage.DB
	if playSave {
		var err error
		db, err = openDB()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
	}

	model := newPlayModel(db)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
