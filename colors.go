package go3to4

// Color represents a sticker color. Each of the eight cells has its own
// color when solved.
type Color byte

const (
	White  Color = 0 // Up cell
	Yellow Color = 1 // Down cell
	Green  Color = 2 // Front cell
	Blue   Color = 3 // Back cell
	Red    Color = 4 // Right cell
	Orange Color = 5 // Left cell
	Purple Color = 6 // In cell
	Pink   Color = 7 // Out cell

	// NoColor marks an unused sticker slot on a piece.
	NoColor Color = 255
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Purple:
		return "P"
	case Pink:
		return "K"
	default:
		return "?"
	}
}

// CellLocation identifies one of the eight cells of the puzzle.
type CellLocation byte

const (
	CellIn    CellLocation = 0
	CellOut   CellLocation = 1
	CellRight CellLocation = 2
	CellLeft  CellLocation = 3
	CellUp    CellLocation = 4
	CellDown  CellLocation = 5
	CellFront CellLocation = 6
	CellBack  CellLocation = 7
)

func (l CellLocation) String() string {
	switch l {
	case CellIn:
		return "I"
	case CellOut:
		return "O"
	case CellRight:
		return "R"
	case CellLeft:
		return "L"
	case CellUp:
		return "U"
	case CellDown:
		return "D"
	case CellFront:
		return "F"
	case CellBack:
		return "B"
	default:
		return "?"
	}
}

// Opposite returns the cell across the puzzle from this one.
func (l CellLocation) Opposite() CellLocation {
	switch l {
	case CellIn:
		return CellOut
	case CellOut:
		return CellIn
	case CellRight:
		return CellLeft
	case CellLeft:
		return CellRight
	case CellUp:
		return CellDown
	case CellDown:
		return CellUp
	case CellFront:
		return CellBack
	default:
		return CellFront
	}
}

// SolvedColor returns the sticker color belonging to a cell when solved.
func (l CellLocation) SolvedColor() Color {
	switch l {
	case CellIn:
		return Purple
	case CellOut:
		return Pink
	case CellRight:
		return Red
	case CellLeft:
		return Orange
	case CellUp:
		return White
	case CellDown:
		return Yellow
	case CellFront:
		return Green
	default:
		return Blue
	}
}

// RotateDirection selects one of the six quarter turns of a cell, named by
// the plane of rotation in the cell's own frame. DirYZ carries the local y
// axis onto the local z axis; DirZY is its inverse, and likewise for the
// other two pairs.
type RotateDirection byte

const (
	DirYZ RotateDirection = 0 // about local x
	DirZY RotateDirection = 1
	DirXZ RotateDirection = 2 // about local y
	DirZX RotateDirection = 3
	DirXY RotateDirection = 4 // about local z
	DirYX RotateDirection = 5
)

func (d RotateDirection) String() string {
	switch d {
	case DirYZ:
		return "yz"
	case DirZY:
		return "zy"
	case DirXZ:
		return "xz"
	case DirZX:
		return "zx"
	case DirXY:
		return "xy"
	case DirYX:
		return "yx"
	default:
		return "?"
	}
}

// Inverse returns the opposite quarter turn in the same plane.
func (d RotateDirection) Inverse() RotateDirection {
	return d ^ 1
}

// aboutLongAxis reports whether the turn is a rotation about the local x
// axis. The two flat slices and the whole puzzle can only turn this way.
func (d RotateDirection) aboutLongAxis() bool {
	return d == DirYZ || d == DirZY
}
