// Package chess provides the core value types of the rules engine:
// piece identities, board geometry, and the canonical move representation.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour. It is involutive: applying it
// twice returns the original colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// BackRank returns the colour's home rank: 1 for White, 8 for Black.
func (c Colour) BackRank() Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// KingHome returns the square the colour's king starts on.
func (c Colour) KingHome() Square {
	return Square{File: FileE, Rank: c.BackRank()}
}

// Forward returns the rank direction the colour's pawns advance in:
// +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	King
	Queen
	Rook
	Bishop
	Knight
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "King", "Queen", "Rook", "Bishop", "Knight"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase SAN letter for a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'K', 'Q', 'R', 'B', 'N'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter returns the piece kind for a SAN letter, upper or lower
// case. The second result is false for unrecognized letters.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	default:
		return NoKind, false
	}
}

// Piece is a (kind, colour) pair.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// String returns a human-readable description such as "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the placement-string letter for the piece: uppercase
// for White, lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Kind.Letter()
	if p.Colour == Black && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}
