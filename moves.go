package go3to4

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	p.Apply(go3to4.Lx)
//	p.Apply(go3to4.GyroLeft)
var (
	// Left cube turns
	Lx      = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirYZ}
	LxPrime = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirZY}
	Ly      = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirXZ}
	LyPrime = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirZX}
	Lz      = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirXY}
	LzPrime = Move{Kind: MoveTurn, Cell: CellLeft, Direction: DirYX}

	// Right cube turns
	Rx      = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirYZ}
	RxPrime = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirZY}
	Ry      = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirXZ}
	RyPrime = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirZX}
	Rz      = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirXY}
	RzPrime = Move{Kind: MoveTurn, Cell: CellRight, Direction: DirYX}

	// Slice turns (about the long axis only)
	Ix      = Move{Kind: MoveTurn, Cell: CellIn, Direction: DirYZ}
	IxPrime = Move{Kind: MoveTurn, Cell: CellIn, Direction: DirZY}
	Ox      = Move{Kind: MoveTurn, Cell: CellOut, Direction: DirYZ}
	OxPrime = Move{Kind: MoveTurn, Cell: CellOut, Direction: DirZY}

	// Whole puzzle rotations
	RotX      = Move{Kind: MoveRotate, Direction: DirYZ}
	RotXPrime = Move{Kind: MoveRotate, Direction: DirZY}

	// Cell gyros
	GyroLeft  = Move{Kind: MoveGyro, Cell: CellLeft}
	GyroRight = Move{Kind: MoveGyro, Cell: CellRight}
	GyroUp    = Move{Kind: MoveGyro, Cell: CellUp}
	GyroDown  = Move{Kind: MoveGyro, Cell: CellDown}
	GyroFront = Move{Kind: MoveGyro, Cell: CellFront}
	GyroBack  = Move{Kind: MoveGyro, Cell: CellBack}

	// Slice gyros
	GyroOuter   = Move{Kind: MoveGyroOuter}
	MiddlePlus  = Move{Kind: MoveGyroMiddle, Location: 1}
	MiddleMinus = Move{Kind: MoveGyroMiddle, Location: -1}
	MiddleFlip  = Move{Kind: MoveGyroMiddle, Location: 0}
)
