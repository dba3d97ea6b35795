package go3to4

// The puzzle state is stored the way the physical puzzle is handled: two
// 3x3x3 cubes, two flat 3x3 slices and an eight piece middle ring. Moves
// are much easier to express on a 4D lattice, where every piece occupies a
// point of {-1,0,1}^4 (the origin excluded) and carries one sticker per
// nonzero coordinate. This file is the single mapping between the two
// views; the move engine works on the lattice and reads and writes storage
// through it.
//
// Lattice conventions: x runs left (-1) to right (+1) along the long axis,
// y runs down to up, z runs back to front, and w runs in (-1) to out (+1).
// The left cube's layers are stored outermost first, so storage index i on
// the left cube corresponds to w = 1-i, and on the right cube to w = i-1.

type coord [4]int

const (
	axisX = 0
	axisY = 1
	axisZ = 2
	axisW = 3
)

// allCoords lists every piece slot in a fixed order.
var allCoords = buildCoords()

func buildCoords() []coord {
	out := make([]coord, 0, 80)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				for w := -1; w <= 1; w++ {
					if x == 0 && y == 0 && z == 0 && w == 0 {
						continue
					}
					out = append(out, coord{x, y, z, w})
				}
			}
		}
	}
	return out
}

// pieceAt returns the storage slot holding the piece at a lattice
// coordinate.
func (p *Puzzle) pieceAt(c coord) *Piece {
	x, y, z, w := c[axisX], c[axisY], c[axisZ], c[axisW]
	switch {
	case x == -1:
		return &p.LeftCell[1-w][y+1][z+1]
	case x == 1:
		return &p.RightCell[w+1][y+1][z+1]
	case w == -1:
		return &p.InnerSlice[y+1][z+1]
	case w == 1:
		return &p.OuterSlice[y+1][z+1]
	case z == 1:
		return &p.FrontCell[y+1]
	case z == -1:
		return &p.BackCell[y+1]
	case y == 1:
		return &p.TopCell
	default:
		return &p.BottomCell
	}
}

// solvedColor returns the sticker color on the face pointing along the
// given signed axis.
func solvedColor(a, sign int) Color {
	switch {
	case a == axisX && sign < 0:
		return Orange
	case a == axisX:
		return Red
	case a == axisY && sign < 0:
		return Yellow
	case a == axisY:
		return White
	case a == axisZ && sign < 0:
		return Blue
	case a == axisZ:
		return Green
	case a == axisW && sign < 0:
		return Purple
	default:
		return Pink
	}
}

// solvedPiece builds the identity piece for a slot.
func solvedPiece(c coord) Piece {
	var st [4]Color
	for a := 0; a < 4; a++ {
		if c[a] != 0 {
			st[a] = solvedColor(a, c[a])
		} else {
			st[a] = NoColor
		}
	}
	return pack(c, st)
}

// unpack spreads a piece's stickers onto the axes they occupy at slot c.
func unpack(c coord, p Piece) [4]Color {
	st := [4]Color{NoColor, NoColor, NoColor, NoColor}
	slots := [4]Color{p.A, p.B, p.C, p.D}
	i := 0
	for a := 0; a < 4; a++ {
		if c[a] != 0 {
			st[a] = slots[i]
			i++
		}
	}
	return st
}

// pack collects axis-indexed stickers back into slot order at c.
func pack(c coord, st [4]Color) Piece {
	out := Piece{NoColor, NoColor, NoColor, NoColor}
	slots := [4]*Color{&out.A, &out.B, &out.C, &out.D}
	i := 0
	for a := 0; a < 4; a++ {
		if c[a] != 0 {
			*slots[i] = st[a]
			i++
		}
	}
	return out
}

// rotation is a signed permutation of the four axes: a vector component v
// along axis a maps to sign[a]*v along axis[a]. Quarter turns, whole
// puzzle rotations and gyros are all rotations; they differ only in which
// slots they select.
type rotation struct {
	axis [4]int
	sign [4]int
}

func identityRotation() rotation {
	return rotation{axis: [4]int{0, 1, 2, 3}, sign: [4]int{1, 1, 1, 1}}
}

func (r rotation) apply(c coord) coord {
	var out coord
	for a := 0; a < 4; a++ {
		out[r.axis[a]] = r.sign[a] * c[a]
	}
	return out
}

// signedAxis is an axis direction. Cell frames express a cell's local
// x/y/z axes as signed global axes.
type signedAxis struct {
	axis int
	sign int
}

// planeRotation builds the rotation carrying direction u onto direction v
// and v onto -u, leaving the other two axes fixed.
func planeRotation(u, v signedAxis) rotation {
	r := identityRotation()
	r.axis[u.axis] = v.axis
	r.sign[u.axis] = u.sign * v.sign
	r.axis[v.axis] = u.axis
	r.sign[v.axis] = -u.sign * v.sign
	return r
}

// cellFrame returns the local x, y and z axes of a cell's storage layout.
// Only the four cells that can be turned directly have a frame. The left
// cube's local x points inward along -w, the right cube's along +w; the
// flat slices share the global frame.
func cellFrame(cell CellLocation) ([3]signedAxis, bool) {
	switch cell {
	case CellLeft:
		return [3]signedAxis{{axisW, -1}, {axisY, 1}, {axisZ, 1}}, true
	case CellRight:
		return [3]signedAxis{{axisW, 1}, {axisY, 1}, {axisZ, 1}}, true
	case CellIn, CellOut:
		return [3]signedAxis{{axisX, 1}, {axisY, 1}, {axisZ, 1}}, true
	default:
		return [3]signedAxis{}, false
	}
}

// directionRotation resolves a turn direction to a rotation using the
// cell's local frame: DirYZ carries local y onto local z, and so on.
func directionRotation(frame [3]signedAxis, dir RotateDirection) rotation {
	switch dir {
	case DirYZ:
		return planeRotation(frame[1], frame[2])
	case DirZY:
		return planeRotation(frame[2], frame[1])
	case DirXZ:
		return planeRotation(frame[0], frame[2])
	case DirZX:
		return planeRotation(frame[2], frame[0])
	case DirXY:
		return planeRotation(frame[0], frame[1])
	default:
		return planeRotation(frame[1], frame[0])
	}
}

// gyroRotation returns the whole puzzle 4D rotation that carries the given
// cell onto the In position.
func gyroRotation(cell CellLocation) (rotation, bool) {
	in := signedAxis{axisW, -1}
	switch cell {
	case CellLeft:
		return planeRotation(signedAxis{axisX, -1}, in), true
	case CellRight:
		return planeRotation(signedAxis{axisX, 1}, in), true
	case CellUp:
		return planeRotation(signedAxis{axisY, 1}, in), true
	case CellDown:
		return planeRotation(signedAxis{axisY, -1}, in), true
	case CellFront:
		return planeRotation(signedAxis{axisZ, 1}, in), true
	case CellBack:
		return planeRotation(signedAxis{axisZ, -1}, in), true
	}
	return rotation{}, false
}

// transform applies a rotation to every piece whose slot satisfies sel,
// repacking stickers for the destination slots. Destinations are buffered
// so overlapping reads and writes cannot interfere.
func (p *Puzzle) transform(r rotation, sel func(coord) bool) {
	type placement struct {
		dst coord
		pc  Piece
	}
	moved := make([]placement, 0, len(allCoords))
	for _, c := range allCoords {
		if !sel(c) {
			continue
		}
		src := unpack(c, *p.pieceAt(c))
		st := [4]Color{NoColor, NoColor, NoColor, NoColor}
		for a := 0; a < 4; a++ {
			if src[a] != NoColor {
				st[r.axis[a]] = src[a]
			}
		}
		dst := r.apply(c)
		moved = append(moved, placement{dst, pack(dst, st)})
	}
	for _, m := range moved {
		*p.pieceAt(m.dst) = m.pc
	}
}

// selectors for the regions the move families act on

func selectAll(coord) bool { return true }

func cellRegion(cell CellLocation) func(coord) bool {
	switch cell {
	case CellLeft:
		return func(c coord) bool { return c[axisX] == -1 }
	case CellRight:
		return func(c coord) bool { return c[axisX] == 1 }
	case CellIn:
		return func(c coord) bool { return c[axisX] == 0 && c[axisW] == -1 }
	case CellOut:
		return func(c coord) bool { return c[axisX] == 0 && c[axisW] == 1 }
	default:
		return func(coord) bool { return false }
	}
}
