package go3to4

import (
	"math/rand"
	"time"
)

// Scrambler generates random legal move sequences. A fixed seed yields a
// reproducible scramble; seed 0 derives one from the clock.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler from a seed.
func NewScrambler(seed int64) *Scrambler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scrambler{rng: rand.New(rand.NewSource(seed))}
}

// FullScramble is the difficulty value selecting a full scramble.
const FullScramble = 0

// Scramble applies a random legal sequence to the puzzle and returns it.
// Difficulty 0 is a full scramble of 40 to 60 moves drawing from every
// move family. Difficulties 1 through 8 restrict the pool and scale the
// length: low tiers stick to cube turns, middle tiers add slice turns and
// reorientations, high tiers add gyros.
//
// Candidates are validated against the live state. A candidate that
// exactly inverts the previous move, or turns the same cell about the
// same axis as the previous move, is rejected and redrawn.
func (s *Scrambler) Scramble(p *Puzzle, difficulty int) ([]Move, error) {
	if difficulty < 0 || difficulty > 8 {
		return nil, ErrBadDifficulty
	}

	pool := scramblePool(difficulty)
	length := 7 * difficulty
	if difficulty == FullScramble {
		length = 40 + s.rng.Intn(21)
	}

	moves := make([]Move, 0, length)
	for len(moves) < length {
		m := pool[s.rng.Intn(len(pool))]
		if !p.CanApply(m) {
			continue
		}
		if len(moves) > 0 && rejectAfter(moves[len(moves)-1], m) {
			continue
		}
		p.Apply(m)
		moves = append(moves, m)
	}
	return moves, nil
}

// rejectAfter reports whether move m is a wasted move following prev:
// its exact inverse, or another turn of the same cell about the same
// axis (the pair collapses into a single move).
func rejectAfter(prev, m Move) bool {
	if m == prev.Inverse() {
		return true
	}
	if m.Kind == MoveTurn && prev.Kind == MoveTurn &&
		m.Cell == prev.Cell && m.Direction/2 == prev.Direction/2 {
		return true
	}
	return false
}

// scramblePool returns the candidate moves for a difficulty tier.
func scramblePool(difficulty int) []Move {
	cubeTurns := []Move{
		Lx, LxPrime, Ly, LyPrime, Lz, LzPrime,
		Rx, RxPrime, Ry, RyPrime, Rz, RzPrime,
	}
	sliceTurns := []Move{Ix, IxPrime, Ox, OxPrime, RotX, RotXPrime}
	sliceGyros := []Move{GyroOuter, MiddlePlus, MiddleMinus, MiddleFlip}
	cellGyros := []Move{GyroLeft, GyroRight, GyroUp, GyroDown, GyroFront, GyroBack}

	pool := cubeTurns
	if difficulty == FullScramble || difficulty >= 3 {
		pool = append(pool, sliceTurns...)
	}
	if difficulty == FullScramble || difficulty >= 5 {
		pool = append(pool, sliceGyros...)
	}
	if difficulty == FullScramble || difficulty >= 7 {
		pool = append(pool, cellGyros...)
	}
	return pool
}
