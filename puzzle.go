package go3to4

import "strings"

// Puzzle is the full state of the 3x3x3x3: the 80 pieces in their storage
// groups plus the three configuration variables describing where the
// movable slices sit.
//
// LeftCell and RightCell are indexed [layer][row][col] with layer 0 the
// outermost layer of each cube, row 0 the bottom and col 0 the back.
// InnerSlice and OuterSlice are indexed [row][col] the same way. The
// middle ring is TopCell, BottomCell, FrontCell and BackCell; FrontCell
// and BackCell run bottom to top.
//
// OuterSlicePos is +1 when the outer slice sits at the right end of the
// long axis and -1 at the left. MiddleSlicePos is the ring's offset along
// the long axis; MiddleSliceDir is the axis the ring opens toward.
type Puzzle struct {
	LeftCell  [3][3][3]Piece
	RightCell [3][3][3]Piece

	InnerSlice [3][3]Piece
	OuterSlice [3][3]Piece

	TopCell    Piece
	BottomCell Piece
	FrontCell  [3]Piece
	BackCell   [3]Piece

	OuterSlicePos  int
	MiddleSlicePos int
	MiddleSliceDir CellLocation // CellUp or CellFront
}

// NewPuzzle creates a solved puzzle in the home configuration: outer slice
// at the right end, middle ring centered and opening upward.
func NewPuzzle() *Puzzle {
	p := &Puzzle{}
	p.Reset()
	return p
}

// Reset restores the solved identity and the home configuration.
func (p *Puzzle) Reset() {
	for _, c := range allCoords {
		*p.pieceAt(c) = solvedPiece(c)
	}
	p.OuterSlicePos = 1
	p.MiddleSlicePos = 0
	p.MiddleSliceDir = CellUp
}

// Clone creates a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	clone := *p
	return &clone
}

// IsSolved reports whether every sticker matches the solved identity.
// The slice variables are presentation state and do not count: a puzzle
// whose pieces are home is solved wherever the slices happen to sit.
func (p *Puzzle) IsSolved() bool {
	for _, c := range allCoords {
		if *p.pieceAt(c) != solvedPiece(c) {
			return false
		}
	}
	return true
}

// MiddleSliceRange returns the reachable middle ring positions for the
// current outer slice position.
func (p *Puzzle) MiddleSliceRange() (lo, hi int) {
	if p.OuterSlicePos > 0 {
		return -1, 2
	}
	return -2, 1
}

// wrapMiddlePos folds a ring position into the reachable window. The ring
// track is a loop of four stops, so positions wrap modulo 4.
func (p *Puzzle) wrapMiddlePos(pos int) int {
	lo, _ := p.MiddleSliceRange()
	return (pos-lo+8)%4 + lo
}

// String returns a text dump of the puzzle, one storage group per block.
func (p *Puzzle) String() string {
	var b strings.Builder
	writeCube := func(name string, cube *[3][3][3]Piece) {
		b.WriteString(name + ":\n")
		for layer := 0; layer < 3; layer++ {
			for row := 2; row >= 0; row-- {
				b.WriteString("  ")
				for col := 0; col < 3; col++ {
					b.WriteString(cube[layer][row][col].String())
					b.WriteString(" ")
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	writeSlice := func(name string, sl *[3][3]Piece) {
		b.WriteString(name + ":\n")
		for row := 2; row >= 0; row-- {
			b.WriteString("  ")
			for col := 0; col < 3; col++ {
				b.WriteString(sl[row][col].String())
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeCube("Left", &p.LeftCell)
	writeSlice("Inner", &p.InnerSlice)
	writeSlice("Outer", &p.OuterSlice)
	writeCube("Right", &p.RightCell)

	b.WriteString("Ring: top " + p.TopCell.String())
	b.WriteString(" bottom " + p.BottomCell.String())
	b.WriteString(" front " + p.FrontCell[0].String() + " " + p.FrontCell[1].String() + " " + p.FrontCell[2].String())
	b.WriteString(" back " + p.BackCell[0].String() + " " + p.BackCell[1].String() + " " + p.BackCell[2].String())
	b.WriteString("\n")
	return b.String()
}
