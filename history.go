package go3to4

// historyEntry is one undoable unit: a single move, or a whole scramble.
type historyEntry struct {
	moves    []Move
	scramble bool
}

// History tracks applied moves for undo and redo. Undo applies the
// inverses of an entry's moves in reverse order, so a scramble recorded
// as one entry is undone in one step. Undo and redo on an empty stack
// are no-ops.
type History struct {
	undo  []historyEntry
	redo  []historyEntry
	limit int
}

// NewHistory creates an empty history. A limit of 0 means unlimited.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Record logs a single applied move and clears the redo stack.
func (h *History) Record(m Move) {
	h.push(historyEntry{moves: []Move{m}})
}

// RecordScramble logs a whole scramble as one undoable unit.
func (h *History) RecordScramble(moves []Move) {
	if len(moves) == 0 {
		return
	}
	cp := make([]Move, len(moves))
	copy(cp, moves)
	h.push(historyEntry{moves: cp, scramble: true})
}

func (h *History) push(e historyEntry) {
	h.undo = append(h.undo, e)
	h.redo = nil
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// CanUndo reports whether there is anything to undo.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether there is anything to redo.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo reverses the most recent entry on the puzzle. Returns false if
// the history is empty.
func (h *History) Undo(p *Puzzle) bool {
	if len(h.undo) == 0 {
		return false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	for i := len(e.moves) - 1; i >= 0; i-- {
		p.Apply(e.moves[i].Inverse())
	}
	h.redo = append(h.redo, e)
	return true
}

// Redo reapplies the most recently undone entry. Returns false if
// nothing has been undone.
func (h *History) Redo(p *Puzzle) bool {
	if len(h.redo) == 0 {
		return false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	for _, m := range e.moves {
		p.Apply(m)
	}
	h.undo = append(h.undo, e)
	return true
}

// TurnCount returns the number of player moves currently applied.
// Scramble entries do not count as turns.
func (h *History) TurnCount() int {
	n := 0
	for _, e := range h.undo {
		if !e.scramble {
			n += len(e.moves)
		}
	}
	return n
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
