package go3to4

import "strings"

// MoveKind discriminates the five primitive move families.
type MoveKind byte

const (
	MoveTurn       MoveKind = 0 // quarter turn of one cell
	MoveRotate     MoveKind = 1 // whole puzzle reorientation
	MoveGyro       MoveKind = 2 // 4D reorientation bringing a cell to In
	MoveGyroOuter  MoveKind = 3 // outer slice flies to the other end
	MoveGyroMiddle MoveKind = 4 // middle ring slide or flip
)

// Move is a single primitive move. Kind selects the family; Cell and
// Direction apply to turns and gyros, Location to middle ring moves
// (-1 and +1 slide the ring, 0 flips its orientation).
type Move struct {
	Kind      MoveKind
	Cell      CellLocation
	Direction RotateDirection
	Location  int
}

// Notation returns the text notation for the move. Cell turns are the
// cell letter plus the local rotation axis, primed for the reverse sense
// (Lx, Lx', Iy ...); whole puzzle rotations are x and x'; gyros are G
// plus the cell letter, GO for the outer slice; middle ring moves are
// M+, M- and M0.
func (m Move) Notation() string {
	switch m.Kind {
	case MoveTurn:
		return m.Cell.String() + directionNotation(m.Direction)
	case MoveRotate:
		return directionNotation(m.Direction)
	case MoveGyro:
		return "G" + m.Cell.String()
	case MoveGyroOuter:
		return "GO"
	case MoveGyroMiddle:
		switch m.Location {
		case 1:
			return "M+"
		case -1:
			return "M-"
		default:
			return "M0"
		}
	default:
		return "?"
	}
}

func directionNotation(d RotateDirection) string {
	base := [3]string{"x", "y", "z"}[d/2]
	if d&1 == 1 {
		return base + "'"
	}
	return base
}

// Inverse returns the move undoing this one.
func (m Move) Inverse() Move {
	inv := m
	switch m.Kind {
	case MoveTurn, MoveRotate:
		inv.Direction = m.Direction.Inverse()
	case MoveGyro:
		inv.Cell = m.Cell.Opposite()
	case MoveGyroOuter:
		// self-inverse
	case MoveGyroMiddle:
		inv.Location = -m.Location
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation string into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	switch {
	case s == "GO":
		return Move{Kind: MoveGyroOuter}, nil
	case s == "M+":
		return Move{Kind: MoveGyroMiddle, Location: 1}, nil
	case s == "M-":
		return Move{Kind: MoveGyroMiddle, Location: -1}, nil
	case s == "M0":
		return Move{Kind: MoveGyroMiddle, Location: 0}, nil
	}

	if s[0] == 'G' {
		if len(s) != 2 {
			return Move{}, ErrInvalidNotation
		}
		cell, ok := parseCell(s[1])
		if !ok || cell == CellIn || cell == CellOut {
			return Move{}, ErrInvalidNotation
		}
		return Move{Kind: MoveGyro, Cell: cell}, nil
	}

	// Whole puzzle rotation: bare axis letter.
	if s[0] == 'x' || s[0] == 'y' || s[0] == 'z' {
		dir, ok := parseDirection(s)
		if !ok || !dir.aboutLongAxis() {
			return Move{}, ErrInvalidNotation
		}
		return Move{Kind: MoveRotate, Direction: dir}, nil
	}

	cell, ok := parseCell(s[0])
	if !ok {
		return Move{}, ErrInvalidNotation
	}
	switch cell {
	case CellLeft, CellRight, CellIn, CellOut:
	default:
		return Move{}, ErrInvalidNotation
	}
	dir, ok := parseDirection(s[1:])
	if !ok {
		return Move{}, ErrInvalidNotation
	}
	if (cell == CellIn || cell == CellOut) && !dir.aboutLongAxis() {
		return Move{}, ErrInvalidNotation
	}
	return Move{Kind: MoveTurn, Cell: cell, Direction: dir}, nil
}

func parseCell(b byte) (CellLocation, bool) {
	switch b {
	case 'I':
		return CellIn, true
	case 'O':
		return CellOut, true
	case 'R':
		return CellRight, true
	case 'L':
		return CellLeft, true
	case 'U':
		return CellUp, true
	case 'D':
		return CellDown, true
	case 'F':
		return CellFront, true
	case 'B':
		return CellBack, true
	}
	return 0, false
}

func parseDirection(s string) (RotateDirection, bool) {
	var base RotateDirection
	switch {
	case len(s) == 0:
		return 0, false
	case s[0] == 'x':
		base = DirYZ
	case s[0] == 'y':
		base = DirXZ
	case s[0] == 'z':
		base = DirXY
	default:
		return 0, false
	}
	switch s[1:] {
	case "":
		return base, true
	case "'", "`":
		return base + 1, true
	}
	return 0, false
}

// ParseMoves parses a space-separated sequence of moves.
// Returns an error on the first invalid token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
