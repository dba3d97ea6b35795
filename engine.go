package go3to4

import "fmt"

// The move engine: one Can predicate and one mutator per primitive family.
// Mutators assert their predicate; applying an illegal move is a
// programming error, not a runtime condition, and panics. Callers that
// handle user input check the predicate first and surface a boolean.

// CanRotateCell reports whether a cell can be turned in the given
// direction from the current configuration. The two cubes turn freely in
// all six directions. The flat slices only spin about the long axis, and
// only while the middle ring is not docked against them: the ring parked
// at position 0 locks the inner slice, and parked against the far end
// (position 2*OuterSlicePos) locks the outer slice. The four perimeter
// cells are never turned directly.
func (p *Puzzle) CanRotateCell(cell CellLocation, dir RotateDirection) bool {
	switch cell {
	case CellLeft, CellRight:
		return true
	case CellIn:
		return dir.aboutLongAxis() && p.MiddleSlicePos != 0
	case CellOut:
		return dir.aboutLongAxis() && p.MiddleSlicePos != 2*p.OuterSlicePos
	default:
		return false
	}
}

// RotateCell turns one cell a quarter turn.
func (p *Puzzle) RotateCell(cell CellLocation, dir RotateDirection) {
	if !p.CanRotateCell(cell, dir) {
		panic(fmt.Sprintf("go3to4: illegal cell rotation %v %v", cell, dir))
	}
	frame, _ := cellFrame(cell)
	p.transform(directionRotation(frame, dir), cellRegion(cell))
}

// CanRotatePuzzle reports whether the whole puzzle can be reoriented in
// the given direction. Only rotations about the long axis keep the
// storage layout valid.
func (p *Puzzle) CanRotatePuzzle(dir RotateDirection) bool {
	return dir.aboutLongAxis()
}

// RotatePuzzle reorients the whole puzzle about the long axis. Every
// piece moves; the middle ring's opening swaps between up and front.
func (p *Puzzle) RotatePuzzle(dir RotateDirection) {
	if !p.CanRotatePuzzle(dir) {
		panic(fmt.Sprintf("go3to4: illegal puzzle rotation %v", dir))
	}
	frame := [3]signedAxis{{axisX, 1}, {axisY, 1}, {axisZ, 1}}
	p.transform(directionRotation(frame, dir), selectAll)
	p.flipMiddleDir()
}

func (p *Puzzle) flipMiddleDir() {
	if p.MiddleSliceDir == CellUp {
		p.MiddleSliceDir = CellFront
	} else {
		p.MiddleSliceDir = CellUp
	}
}

// CanGyroCell reports whether the given cell can be gyroed to the In
// position. Left and right always can. The four perimeter cells need the
// middle ring centered and opening along the gyro axis, which is the
// planner's job to arrange. In and Out never gyro.
func (p *Puzzle) CanGyroCell(cell CellLocation) bool {
	switch cell {
	case CellLeft, CellRight:
		return true
	case CellUp, CellDown:
		return p.MiddleSliceDir == CellUp && p.MiddleSlicePos == 0
	case CellFront, CellBack:
		return p.MiddleSliceDir == CellFront && p.MiddleSlicePos == 0
	default:
		return false
	}
}

// GyroCell reorients the whole puzzle in 4D so that the given cell lands
// on the In position. A left or right gyro shifts the eight layers of the
// long axis one step around their loop and drags the middle ring one stop
// along with them; the outer slice's end of the axis is unchanged. A
// perimeter gyro exchanges the four perimeter cells and leaves the slice
// variables alone.
func (p *Puzzle) GyroCell(cell CellLocation) {
	if !p.CanGyroCell(cell) {
		panic(fmt.Sprintf("go3to4: illegal gyro %v", cell))
	}
	r, _ := gyroRotation(cell)
	p.transform(r, selectAll)
	switch cell {
	case CellLeft:
		p.MiddleSlicePos = p.wrapMiddlePos(p.MiddleSlicePos + 1)
	case CellRight:
		p.MiddleSlicePos = p.wrapMiddlePos(p.MiddleSlicePos - 1)
	}
}

// CanGyroOuterSlice reports whether the outer slice can fly to the other
// end of the long axis. Its flight path over the middle ring is clear in
// every reachable configuration.
func (p *Puzzle) CanGyroOuterSlice() bool {
	return true
}

// GyroOuterSlice moves the outer slice to the other end of the long axis.
// No piece changes slot; the slice travels as a plate. A middle ring
// docked against it travels too.
func (p *Puzzle) GyroOuterSlice() {
	old := p.OuterSlicePos
	p.OuterSlicePos = -old
	if p.MiddleSlicePos == 2*old {
		p.MiddleSlicePos = -2 * old
	}
}

// CanGyroMiddleSlice reports whether the middle ring move is possible.
// Location 0 flips the ring's opening and needs the ring centered;
// locations -1 and +1 slide the ring one stop, stopping at the ends of
// the reachable window.
func (p *Puzzle) CanGyroMiddleSlice(location int) bool {
	switch location {
	case 0:
		return p.MiddleSlicePos == 0
	case -1, 1:
		lo, hi := p.MiddleSliceRange()
		target := p.MiddleSlicePos + location
		return target >= lo && target <= hi
	default:
		return false
	}
}

// GyroMiddleSlice slides the middle ring one stop (location ±1) or flips
// its opening between up and front (location 0). No piece changes slot.
func (p *Puzzle) GyroMiddleSlice(location int) {
	if !p.CanGyroMiddleSlice(location) {
		panic(fmt.Sprintf("go3to4: illegal middle slice gyro %d", location))
	}
	if location == 0 {
		p.flipMiddleDir()
		return
	}
	p.MiddleSlicePos += location
}

// CanApply reports whether a move is legal in the current configuration.
func (p *Puzzle) CanApply(m Move) bool {
	switch m.Kind {
	case MoveTurn:
		return p.CanRotateCell(m.Cell, m.Direction)
	case MoveRotate:
		return p.CanRotatePuzzle(m.Direction)
	case MoveGyro:
		return p.CanGyroCell(m.Cell)
	case MoveGyroOuter:
		return p.CanGyroOuterSlice()
	case MoveGyroMiddle:
		return p.CanGyroMiddleSlice(m.Location)
	default:
		return false
	}
}

// Apply applies a single move. The move must be legal.
func (p *Puzzle) Apply(m Move) {
	switch m.Kind {
	case MoveTurn:
		p.RotateCell(m.Cell, m.Direction)
	case MoveRotate:
		p.RotatePuzzle(m.Direction)
	case MoveGyro:
		p.GyroCell(m.Cell)
	case MoveGyroOuter:
		p.GyroOuterSlice()
	case MoveGyroMiddle:
		p.GyroMiddleSlice(m.Location)
	default:
		panic(fmt.Sprintf("go3to4: unknown move kind %d", m.Kind))
	}
}

// ApplyMoves applies a sequence of moves in order.
func (p *Puzzle) ApplyMoves(moves []Move) {
	for _, m := range moves {
		p.Apply(m)
	}
}
