package go3to4

// PlanGyro returns the legal move sequence that gyros the given cell to
// the In position from the current configuration. Left and right gyros
// need no setup. The four perimeter cells first need the middle ring
// parked at position zero and opening along the gyro axis: the plan
// slides the ring home (flying the outer slice over first when the ring
// is docked against the inner slice from the far side), flips the ring's
// opening if it faces the wrong axis, and ends with the cell gyro itself.
// In and Out cannot be gyroed.
//
// Callers re-validate each step against the live state as they execute
// it; a step failing its own predicate means the plan and state have
// diverged, which is a bug.
func (p *Puzzle) PlanGyro(cell CellLocation) ([]Move, error) {
	switch cell {
	case CellIn, CellOut:
		return nil, ErrCannotGyro
	case CellLeft, CellRight:
		return []Move{{Kind: MoveGyro, Cell: cell}}, nil
	}

	var seq []Move
	pos := p.MiddleSlicePos
	osp := p.OuterSlicePos

	if pos == -osp {
		// The inner slice plate blocks a direct slide from this side.
		// Flying the outer slice over swaps the free end of the track,
		// after which one slide reaches the center.
		seq = append(seq, Move{Kind: MoveGyroOuter})
		seq = append(seq, Move{Kind: MoveGyroMiddle, Location: osp})
		pos = 0
	}
	for pos != 0 {
		step := -1
		if pos < 0 {
			step = 1
		}
		seq = append(seq, Move{Kind: MoveGyroMiddle, Location: step})
		pos += step
	}
	if p.MiddleSliceDir != gyroAxis(cell) {
		seq = append(seq, Move{Kind: MoveGyroMiddle, Location: 0})
	}
	return append(seq, Move{Kind: MoveGyro, Cell: cell}), nil
}

// gyroAxis returns the ring opening required to gyro a perimeter cell.
func gyroAxis(cell CellLocation) CellLocation {
	if cell == CellUp || cell == CellDown {
		return CellUp
	}
	return CellFront
}
