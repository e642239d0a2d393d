package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// File is an ordinal board file, a (A) through h (H), counted 1 to 8.
type File int

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Valid reports whether the file lies on the board.
func (f File) Valid() bool {
	return f >= FileA && f <= FileH
}

// String returns the lowercase file letter, or "?" off the board.
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + int(f) - 1))
}

// Rank is a board rank, counted 1 to 8 from White's side.
type Rank int

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Valid reports whether the rank lies on the board.
func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank8
}

// String returns the rank digit, or "?" off the board.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('0' + int(r)))
}

// Square identifies one of the 64 board cells by file and rank.
type Square struct {
	File File
	Rank Rank
}

// String returns algebraic coordinates such as "e4".
func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.File.Valid() && s.Rank.Valid()
}

// Offset returns the square displaced by df files and dr ranks. Arithmetic
// that would leave the board fails with ErrOutOfBoard instead of wrapping.
func (s Square) Offset(df, dr int) (Square, error) {
	to := Square{File: s.File + File(df), Rank: s.Rank + Rank(dr)}
	if !to.Valid() {
		return Square{}, errors.Wrapf(errors.ErrOutOfBoard, "offset %s by (%d,%d)", s, df, dr)
	}
	return to, nil
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, errors.Wrapf(errors.ErrOutOfBoard, "square %q", text)
	}
	sq := Square{
		File: File(text[0]-'a') + FileA,
		Rank: Rank(text[1]-'1') + Rank1,
	}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrOutOfBoard, "square %q", text)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for trusted literals; it panics on error.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(fmt.Sprintf("chess: bad square literal %q", text))
	}
	return sq
}

// Unbounded is a signed square coordinate used during ray generation, so
// intermediate steps may leave the board before being discarded.
type Unbounded struct {
	File int
	Rank int
}

// Unbound widens a square to its unbounded coordinate.
func Unbound(s Square) Unbounded {
	return Unbounded{File: int(s.File), Rank: int(s.Rank)}
}

// Shift returns the coordinate displaced by df files and dr ranks.
func (u Unbounded) Shift(df, dr int) Unbounded {
	return Unbounded{File: u.File + df, Rank: u.Rank + dr}
}

// Square narrows the coordinate back to a board square. The second result
// is false when the coordinate lies outside files or ranks 1..8.
func (u Unbounded) Square() (Square, bool) {
	sq := Square{File: File(u.File), Rank: Rank(u.Rank)}
	return sq, sq.Valid()
}

// Direction is a unit step used by ray generation.
type Direction struct {
	DF int
	DR int
}

// The eight ray directions.
var (
	Up        = Direction{0, 1}
	Down      = Direction{0, -1}
	Left      = Direction{-1, 0}
	Right     = Direction{1, 0}
	UpLeft    = Direction{-1, 1}
	UpRight   = Direction{1, 1}
	DownLeft  = Direction{-1, -1}
	DownRight = Direction{1, -1}
)

// Orthogonals holds the rook directions, Diagonals the bishop directions.
var (
	Orthogonals = [4]Direction{Up, Down, Left, Right}
	Diagonals   = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}
)

// KnightJumps holds the eight fixed L-shaped knight offsets.
var KnightJumps = [8]Direction{
	{-1, 2}, {1, 2}, {-2, 1}, {2, 1},
	{-2, -1}, {2, -1}, {-1, -2}, {1, -2},
}

// KingSteps holds the eight adjacent-square offsets.
var KingSteps = [8]Direction{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// Ray produces the unbounded coordinates stepping away from origin in the
// given direction, for up to n steps. Steps are unbounded; callers discard
// the ones that do not narrow back to a board square.
func Ray(origin Square, dir Direction, n int) []Unbounded {
	steps := make([]Unbounded, 0, n)
	u := Unbound(origin)
	for i := 1; i <= n; i++ {
		u = u.Shift(dir.DF, dir.DR)
		steps = append(steps, u)
	}
	return steps
}
