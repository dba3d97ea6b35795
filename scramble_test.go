package go3to4

import "testing"

func TestScrambleReproducibleWithSeed(t *testing.T) {
	p1 := NewPuzzle()
	p2 := NewPuzzle()
	m1, err := NewScrambler(99).Scramble(p1, FullScramble)
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	m2, err := NewScrambler(99).Scramble(p2, FullScramble)
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	if FormatMoves(m1) != FormatMoves(m2) {
		t.Error("Same seed should produce the same scramble")
	}
	if *p1 != *p2 {
		t.Error("Same seed should produce the same state")
	}
}

func TestFullScrambleLength(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		p := NewPuzzle()
		moves, err := NewScrambler(seed).Scramble(p, FullScramble)
		if err != nil {
			t.Fatalf("Scramble failed: %v", err)
		}
		if len(moves) < 40 || len(moves) > 60 {
			t.Errorf("Full scramble should be 40 to 60 moves, got %d", len(moves))
		}
		if p.IsSolved() {
			t.Error("Puzzle should not be solved after a full scramble")
		}
	}
}

func TestScrambleDifficultyScalesLength(t *testing.T) {
	for n := 1; n <= 8; n++ {
		p := NewPuzzle()
		moves, err := NewScrambler(int64(n)).Scramble(p, n)
		if err != nil {
			t.Fatalf("Scramble(%d) failed: %v", n, err)
		}
		if len(moves) != 7*n {
			t.Errorf("Difficulty %d should give %d moves, got %d", n, 7*n, len(moves))
		}
	}
}

func TestLowDifficultyUsesOnlyCubeTurns(t *testing.T) {
	for _, n := range []int{1, 2} {
		p := NewPuzzle()
		moves, err := NewScrambler(17).Scramble(p, n)
		if err != nil {
			t.Fatalf("Scramble(%d) failed: %v", n, err)
		}
		for _, m := range moves {
			if m.Kind != MoveTurn || (m.Cell != CellLeft && m.Cell != CellRight) {
				t.Errorf("Difficulty %d should only turn the cubes, got %v", n, m)
			}
		}
	}
}

func TestScrambleRejectsWastedMoves(t *testing.T) {
	p := NewPuzzle()
	moves, err := NewScrambler(23).Scramble(p, FullScramble)
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	for i := 1; i < len(moves); i++ {
		if rejectAfter(moves[i-1], moves[i]) {
			t.Errorf("Moves %d,%d (%v %v) should have been filtered",
				i-1, i, moves[i-1], moves[i])
		}
	}
}

func TestScrambleBadDifficulty(t *testing.T) {
	p := NewPuzzle()
	if _, err := NewScrambler(1).Scramble(p, 9); err != ErrBadDifficulty {
		t.Errorf("Difficulty 9 should fail with ErrBadDifficulty, got %v", err)
	}
	if _, err := NewScrambler(1).Scramble(p, -1); err != ErrBadDifficulty {
		t.Errorf("Difficulty -1 should fail with ErrBadDifficulty, got %v", err)
	}
}

func TestScrambleMovesAreLegalInSequence(t *testing.T) {
	p := NewPuzzle()
	moves, err := NewScrambler(31).Scramble(p, FullScramble)
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	q := NewPuzzle()
	for i, m := range moves {
		if !q.CanApply(m) {
			t.Fatalf("Scramble move %d (%v) illegal when replayed", i, m)
		}
		q.Apply(m)
	}
	if *q != *p {
		t.Error("Replaying the scramble should reproduce the state")
	}
}
