package go3to4

import "fmt"

// pendingMove is a queued move waiting out its presentation delay.
type pendingMove struct {
	move     Move
	duration float64
	elapsed  float64
}

// Controller owns a puzzle, its history and a FIFO queue of pending
// moves. Requests are validated against the current state and enqueued;
// Advance drains the queue in order, applying each move once its delay
// has elapsed. All request methods answer with a bool: false means the
// move is illegal right now or the queue is busy, never an error.
type Controller struct {
	puzzle    *Puzzle
	history   *History
	scrambler *Scrambler
	queue     []pendingMove
	speed     float64
}

// NewController creates a controller around a solved puzzle.
func NewController(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Controller{
		puzzle:    NewPuzzle(),
		history:   NewHistory(cfg.historyLimit),
		scrambler: NewScrambler(cfg.scrambleSeed),
		speed:     cfg.animationSpeed,
	}
}

// Puzzle returns the live puzzle state. Callers must not mutate it
// directly; use the request methods.
func (c *Controller) Puzzle() *Puzzle {
	return c.puzzle
}

// History returns the controller's move history.
func (c *Controller) History() *History {
	return c.history
}

// Busy reports whether moves are still queued.
func (c *Controller) Busy() bool {
	return len(c.queue) > 0
}

// Pending returns the move at the head of the queue and its completion
// fraction, for rendering. ok is false when the queue is empty.
func (c *Controller) Pending() (m Move, progress float64, ok bool) {
	if len(c.queue) == 0 {
		return Move{}, 0, false
	}
	head := c.queue[0]
	return head.move, head.elapsed / head.duration, true
}

// baseDuration is the presentation delay of a move family at speed 1.
func baseDuration(m Move) float64 {
	switch m.Kind {
	case MoveTurn:
		return 1.0
	case MoveRotate:
		return 1.5
	case MoveGyro, MoveGyroOuter:
		return 2.0
	default:
		return 0.5
	}
}

func (c *Controller) enqueue(m Move) {
	c.queue = append(c.queue, pendingMove{move: m, duration: baseDuration(m) / c.speed})
}

// Advance progresses the queue by dt seconds, applying every move whose
// delay completes. Leftover time carries into the next entry.
func (c *Controller) Advance(dt float64) {
	for len(c.queue) > 0 {
		head := &c.queue[0]
		head.elapsed += dt
		if head.elapsed < head.duration {
			return
		}
		dt = head.elapsed - head.duration
		// Plans are validated when queued; a stale step here is a bug.
		c.puzzle.Apply(head.move)
		c.history.Record(head.move)
		c.queue = c.queue[1:]
	}
}

// RequestRotate asks for a quarter turn of one cell.
func (c *Controller) RequestRotate(cell CellLocation, dir RotateDirection) bool {
	return c.request(Move{Kind: MoveTurn, Cell: cell, Direction: dir})
}

// RequestRotatePuzzle asks for a whole puzzle reorientation.
func (c *Controller) RequestRotatePuzzle(dir RotateDirection) bool {
	return c.request(Move{Kind: MoveRotate, Direction: dir})
}

// RequestGyroOuter asks for the outer slice flyover.
func (c *Controller) RequestGyroOuter() bool {
	return c.request(Move{Kind: MoveGyroOuter})
}

// RequestGyroMiddle asks for a middle ring slide (location ±1) or flip
// (location 0).
func (c *Controller) RequestGyroMiddle(location int) bool {
	return c.request(Move{Kind: MoveGyroMiddle, Location: location})
}

func (c *Controller) request(m Move) bool {
	if c.Busy() || !c.puzzle.CanApply(m) {
		return false
	}
	c.enqueue(m)
	return true
}

// RequestGyro asks for a cell gyro, queueing whatever setup moves the
// current configuration needs.
func (c *Controller) RequestGyro(cell CellLocation) bool {
	if c.Busy() {
		return false
	}
	plan, err := c.puzzle.PlanGyro(cell)
	if err != nil {
		return false
	}
	for _, m := range plan {
		c.enqueue(m)
	}
	return true
}

// ResetPuzzle discards the queue and history and restores the solved
// home configuration.
func (c *Controller) ResetPuzzle() {
	c.queue = nil
	c.history.Clear()
	c.puzzle.Reset()
}

// ScramblePuzzle scrambles at the given difficulty (0 = full). The
// scramble applies immediately, bypassing the queue, and is recorded as
// a single undoable unit.
func (c *Controller) ScramblePuzzle(difficulty int) ([]Move, error) {
	if c.Busy() {
		c.queue = nil
	}
	moves, err := c.scrambler.Scramble(c.puzzle, difficulty)
	if err != nil {
		return nil, err
	}
	c.history.RecordScramble(moves)
	return moves, nil
}

// UndoMove reverses the most recent undoable entry. A no-op returning
// false while moves are queued or when there is nothing to undo.
func (c *Controller) UndoMove() bool {
	if c.Busy() {
		return false
	}
	return c.history.Undo(c.puzzle)
}

// RedoMove reapplies the most recently undone entry.
func (c *Controller) RedoMove() bool {
	if c.Busy() {
		return false
	}
	return c.history.Redo(c.puzzle)
}

// TurnCount returns the number of player moves applied.
func (c *Controller) TurnCount() int {
	return c.history.TurnCount()
}

// Status summarizes the puzzle for display.
func (c *Controller) Status() string {
	state := "Unsolved"
	if c.puzzle.IsSolved() {
		state = "Solved"
	}
	side := "right"
	if c.puzzle.OuterSlicePos < 0 {
		side = "left"
	}
	opening := "up"
	if c.puzzle.MiddleSliceDir == CellFront {
		opening = "front"
	}
	return fmt.Sprintf("%s | %d turns | outer slice %s | middle %+d (%s)",
		state, c.TurnCount(), side, c.puzzle.MiddleSlicePos, opening)
}
