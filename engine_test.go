package go3to4

import (
	"math/rand"
	"testing"
)

func TestTurnFourTimesReturnsToSolved(t *testing.T) {
	dirs := []RotateDirection{DirYZ, DirZY, DirXZ, DirZX, DirXY, DirYX}
	for _, cell := range []CellLocation{CellLeft, CellRight} {
		for _, dir := range dirs {
			p := NewPuzzle()
			for i := 0; i < 4; i++ {
				p.RotateCell(cell, dir)
			}
			if !p.IsSolved() {
				t.Errorf("%v %v x 4 should return to solved", cell, dir)
			}
		}
	}
}

func TestSliceTurnFourTimesReturnsToSolved(t *testing.T) {
	// The inner slice only turns once the ring is out of the way.
	p := NewPuzzle()
	p.GyroMiddleSlice(1)
	for i := 0; i < 4; i++ {
		p.RotateCell(CellIn, DirYZ)
	}
	if !p.IsSolved() {
		t.Error("Ix x 4 should return to solved")
	}

	for i := 0; i < 4; i++ {
		p.RotateCell(CellOut, DirZY)
	}
	if !p.IsSolved() {
		t.Error("Ox' x 4 should return to solved")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	p := NewPuzzle()
	p.RotateCell(CellLeft, DirXZ)
	if p.IsSolved() {
		t.Error("Puzzle should not be solved after one turn")
	}
}

func TestTurnMovesOnlyItsCell(t *testing.T) {
	p := NewPuzzle()
	p.RotateCell(CellLeft, DirYZ)
	q := NewPuzzle()
	if p.RightCell != q.RightCell {
		t.Error("Left turn should not touch the right cube")
	}
	if p.InnerSlice != q.InnerSlice || p.OuterSlice != q.OuterSlice {
		t.Error("Left turn should not touch the slices")
	}
	if p.TopCell != q.TopCell || p.FrontCell != q.FrontCell {
		t.Error("Left turn should not touch the middle ring")
	}
}

func TestSliceTurnLegality(t *testing.T) {
	p := NewPuzzle()
	// Ring centered: inner slice locked, outer free.
	if p.CanRotateCell(CellIn, DirYZ) {
		t.Error("Inner slice should be locked with the ring centered")
	}
	if !p.CanRotateCell(CellOut, DirYZ) {
		t.Error("Outer slice should be free with the ring centered")
	}

	p.MiddleSlicePos = 2
	if !p.CanRotateCell(CellIn, DirYZ) {
		t.Error("Inner slice should be free with the ring at +2")
	}
	if p.CanRotateCell(CellOut, DirYZ) {
		t.Error("Outer slice should be locked with the ring docked against it")
	}

	// Slices never turn off the long axis.
	p.MiddleSlicePos = 1
	if p.CanRotateCell(CellIn, DirXZ) || p.CanRotateCell(CellOut, DirXY) {
		t.Error("Slices should only turn about the long axis")
	}
}

func TestPerimeterCellsNeverTurn(t *testing.T) {
	p := NewPuzzle()
	for _, cell := range []CellLocation{CellUp, CellDown, CellFront, CellBack} {
		for d := RotateDirection(0); d < 6; d++ {
			if p.CanRotateCell(cell, d) {
				t.Errorf("%v should never turn directly", cell)
			}
		}
	}
}

func TestRotatePuzzleFourTimesReturnsToSolved(t *testing.T) {
	p := NewPuzzle()
	for i := 0; i < 4; i++ {
		p.RotatePuzzle(DirYZ)
	}
	if !p.IsSolved() {
		t.Error("x x x x should return to solved")
	}
	if p.MiddleSliceDir != CellUp {
		t.Error("Four puzzle rotations should restore the ring opening")
	}
}

func TestRotatePuzzleFlipsRingOpening(t *testing.T) {
	p := NewPuzzle()
	p.RotatePuzzle(DirYZ)
	if p.MiddleSliceDir != CellFront {
		t.Errorf("Puzzle rotation should flip the ring opening, got %v", p.MiddleSliceDir)
	}
	if p.MiddleSlicePos != 0 || p.OuterSlicePos != 1 {
		t.Error("Puzzle rotation should not move the slices")
	}
}

func TestRotatePuzzleOffAxisIllegal(t *testing.T) {
	p := NewPuzzle()
	for _, d := range []RotateDirection{DirXZ, DirZX, DirXY, DirYX} {
		if p.CanRotatePuzzle(d) {
			t.Errorf("Whole puzzle rotation %v should be illegal", d)
		}
	}
}

// randomLegalSequence applies n legal random moves and returns them.
func randomLegalSequence(t *testing.T, p *Puzzle, rng *rand.Rand, n int) []Move {
	t.Helper()
	pool := scramblePool(FullScramble)
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := pool[rng.Intn(len(pool))]
		if !p.CanApply(m) {
			continue
		}
		p.Apply(m)
		moves = append(moves, m)
	}
	return moves
}

func TestInverseLawAcrossRandomStates(t *testing.T) {
	// For every move family: walk to a random state, apply a legal move,
	// its inverse must be legal and restore the state.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		p := NewPuzzle()
		randomLegalSequence(t, p, rng, 20)
		before := *p

		pool := scramblePool(FullScramble)
		m := pool[rng.Intn(len(pool))]
		if !p.CanApply(m) {
			continue
		}
		p.Apply(m)
		inv := m.Inverse()
		if !p.CanApply(inv) {
			t.Fatalf("Inverse of %v should be legal right after it", m)
		}
		p.Apply(inv)
		if *p != before {
			t.Fatalf("%v then %v should restore the state", m, inv)
		}
	}
}

func TestConservationUnderRandomMoves(t *testing.T) {
	// Sticker counts per color and piece counts per shape class never change.
	rng := rand.New(rand.NewSource(11))
	p := NewPuzzle()
	randomLegalSequence(t, p, rng, 200)

	colorCounts := map[Color]int{}
	shapeCounts := map[int]int{}
	for _, c := range allCoords {
		pc := *p.pieceAt(c)
		shapeCounts[pc.StickerCount()]++
		for _, col := range pc.Colors() {
			colorCounts[col]++
		}
	}
	for col := Color(0); col < 8; col++ {
		if colorCounts[col] != 27 {
			t.Errorf("Color %v should still appear 27 times, got %d", col, colorCounts[col])
		}
	}
	want := map[int]int{1: 8, 2: 24, 3: 32, 4: 16}
	for n, expected := range want {
		if shapeCounts[n] != expected {
			t.Errorf("Expected %d pieces with %d stickers, got %d", expected, n, shapeCounts[n])
		}
	}
}

func TestMiddlePositionStaysInWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := NewPuzzle()
	for i := 0; i < 300; i++ {
		randomLegalSequence(t, p, rng, 1)
		lo, hi := p.MiddleSliceRange()
		if p.MiddleSlicePos < lo || p.MiddleSlicePos > hi {
			t.Fatalf("Middle position %d outside window [%d,%d]", p.MiddleSlicePos, lo, hi)
		}
		if p.OuterSlicePos != 1 && p.OuterSlicePos != -1 {
			t.Fatalf("Outer slice position should be ±1, got %d", p.OuterSlicePos)
		}
	}
}

func TestGyroOuterSliceMovesNoPieces(t *testing.T) {
	p := NewPuzzle()
	q := p.Clone()
	p.GyroOuterSlice()
	if p.OuterSlicePos != -1 {
		t.Errorf("Outer gyro should flip the slice position, got %d", p.OuterSlicePos)
	}
	p.OuterSlicePos = q.OuterSlicePos
	if *p != *q {
		t.Error("Outer gyro should not move any piece")
	}
}

func TestGyroOuterSliceCarriesDockedRing(t *testing.T) {
	p := NewPuzzle()
	p.GyroMiddleSlice(1)
	p.GyroMiddleSlice(1) // ring docked against the outer slice at +2
	p.GyroOuterSlice()
	if p.MiddleSlicePos != -2 {
		t.Errorf("Docked ring should travel with the outer slice, got %d", p.MiddleSlicePos)
	}
	if p.OuterSlicePos != -1 {
		t.Errorf("Outer slice should now sit left, got %d", p.OuterSlicePos)
	}
	lo, hi := p.MiddleSliceRange()
	if p.MiddleSlicePos < lo || p.MiddleSlicePos > hi {
		t.Errorf("Ring position %d outside window [%d, %d]", p.MiddleSlicePos, lo, hi)
	}
}

func TestGyroMiddleSliceLegality(t *testing.T) {
	p := NewPuzzle()
	if !p.CanGyroMiddleSlice(0) {
		t.Error("Ring flip should be legal at position 0")
	}
	if !p.CanGyroMiddleSlice(1) || !p.CanGyroMiddleSlice(-1) {
		t.Error("Both slides should be legal from the center")
	}
	p.GyroMiddleSlice(-1)
	if p.CanGyroMiddleSlice(-1) {
		t.Error("Sliding past the window edge should be illegal")
	}
	if p.CanGyroMiddleSlice(0) {
		t.Error("Ring flip should be illegal away from position 0")
	}
	p.GyroMiddleSlice(1)
	p.GyroMiddleSlice(1)
	p.GyroMiddleSlice(1)
	if p.MiddleSlicePos != 2 {
		t.Fatalf("Ring should be at +2, got %d", p.MiddleSlicePos)
	}
	if p.CanGyroMiddleSlice(1) {
		t.Error("Sliding past the outer slice should be illegal")
	}
}

func TestGyroMiddleSliceFlip(t *testing.T) {
	p := NewPuzzle()
	q := p.Clone()
	p.GyroMiddleSlice(0)
	if p.MiddleSliceDir != CellFront {
		t.Errorf("Ring flip should change the opening, got %v", p.MiddleSliceDir)
	}
	p.MiddleSliceDir = q.MiddleSliceDir
	if *p != *q {
		t.Error("Ring flip should not move any piece")
	}
}
