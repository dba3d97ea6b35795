package go3to4

// Piece holds the sticker colors of one puzzle piece. Depending on its
// slot a piece carries between one and four stickers; unused slots hold
// NoColor. Sticker order follows the global axis order (x, y, z, w) of
// the faces the stickers sit on.
type Piece struct {
	A, B, C, D Color
}

// Colors returns the stickers actually present on the piece.
func (p Piece) Colors() []Color {
	out := make([]Color, 0, 4)
	for _, c := range [4]Color{p.A, p.B, p.C, p.D} {
		if c != NoColor {
			out = append(out, c)
		}
	}
	return out
}

// StickerCount returns how many stickers the piece carries (1 to 4).
func (p Piece) StickerCount() int {
	n := 0
	for _, c := range [4]Color{p.A, p.B, p.C, p.D} {
		if c != NoColor {
			n++
		}
	}
	return n
}

// Has reports whether the piece carries a sticker of the given color.
func (p Piece) Has(c Color) bool {
	return p.A == c || p.B == c || p.C == c || p.D == c
}

// String returns the sticker letters in slot order, e.g. "OWG".
func (p Piece) String() string {
	s := ""
	for _, c := range [4]Color{p.A, p.B, p.C, p.D} {
		if c != NoColor {
			s += c.String()
		}
	}
	return s
}
