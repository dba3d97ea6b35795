package go3to4

import (
	"math/rand"
	"testing"
)

func TestHistoryEmptyUndoRedoAreNoOps(t *testing.T) {
	p := NewPuzzle()
	h := NewHistory(0)
	if h.Undo(p) {
		t.Error("Undo on empty history should return false")
	}
	if h.Redo(p) {
		t.Error("Redo on empty history should return false")
	}
	if !p.IsSolved() {
		t.Error("Empty undo/redo should not touch the puzzle")
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewPuzzle()
	h := NewHistory(0)

	moves := randomLegalSequence(t, p, rng, 30)
	for _, m := range moves {
		h.Record(m)
	}
	scrambled := *p

	for h.CanUndo() {
		h.Undo(p)
	}
	if !p.IsSolved() {
		t.Error("Undoing everything should restore solved")
	}
	if p.OuterSlicePos != 1 || p.MiddleSlicePos != 0 || p.MiddleSliceDir != CellUp {
		t.Error("Undoing everything should restore the home configuration")
	}

	for h.CanRedo() {
		h.Redo(p)
	}
	if *p != scrambled {
		t.Error("Redoing everything should restore the scrambled state")
	}
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	p := NewPuzzle()
	h := NewHistory(0)
	p.Apply(Lx)
	h.Record(Lx)
	h.Undo(p)
	if !h.CanRedo() {
		t.Fatal("Undo should leave something to redo")
	}
	p.Apply(Ry)
	h.Record(Ry)
	if h.CanRedo() {
		t.Error("Recording a new move should clear the redo stack")
	}
}

func TestHistoryScrambleIsOneUnit(t *testing.T) {
	p := NewPuzzle()
	h := NewHistory(0)
	s := NewScrambler(42)
	moves, err := s.Scramble(p, FullScramble)
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	h.RecordScramble(moves)

	p.Apply(Lx)
	h.Record(Lx)
	if h.TurnCount() != 1 {
		t.Errorf("Scramble should not count as turns, got %d", h.TurnCount())
	}

	h.Undo(p) // the player move
	if !h.Undo(p) {
		t.Fatal("Scramble should be undoable")
	}
	if !p.IsSolved() {
		t.Error("Undoing the scramble should restore the pre-scramble state in one step")
	}
	if h.CanUndo() {
		t.Error("Nothing should remain to undo")
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	p := NewPuzzle()
	h := NewHistory(5)
	for i := 0; i < 10; i++ {
		p.Apply(Lx)
		h.Record(Lx)
	}
	if h.TurnCount() != 5 {
		t.Errorf("History should retain 5 entries, got %d", h.TurnCount())
	}
	n := 0
	for h.Undo(p) {
		n++
	}
	if n != 5 {
		t.Errorf("Expected 5 undos, got %d", n)
	}
}
