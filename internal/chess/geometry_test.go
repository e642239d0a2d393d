package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text string
		file File
		rank Rank
	}{
		{"a1", FileA, Rank1},
		{"e4", FileE, Rank4},
		{"h8", FileH, Rank8},
		{"d2", FileD, Rank2},
	}
	for _, tt := range tests {
		sq, err := ParseSquare(tt.text)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tt.text, err)
			continue
		}
		if sq.File != tt.file || sq.Rank != tt.rank {
			t.Errorf("ParseSquare(%q) = %v, want {%v %v}", tt.text, sq, tt.file, tt.rank)
		}
		if got := sq.String(); got != tt.text {
			t.Errorf("String() = %q, want %q", got, tt.text)
		}
	}
}

func TestParseSquareRejectsOffBoard(t *testing.T) {
	for _, text := range []string{"", "e", "e0", "e9", "i4", "44", "e4 ", "xx"} {
		if _, err := ParseSquare(text); !stderrors.Is(err, errors.ErrOutOfBoard) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrOutOfBoard", text, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	from := MustParseSquare("e4")

	to, err := from.Offset(1, 1)
	if err != nil {
		t.Fatalf("Offset error: %v", err)
	}
	if want := MustParseSquare("f5"); to != want {
		t.Errorf("e4 offset (1,1) = %v, want %v", to, want)
	}

	// Arithmetic leaving the board fails instead of wrapping around.
	if _, err := MustParseSquare("h8").Offset(1, 0); !stderrors.Is(err, errors.ErrOutOfBoard) {
		t.Errorf("h8 offset (1,0) error = %v, want ErrOutOfBoard", err)
	}
	if _, err := MustParseSquare("a1").Offset(0, -1); !stderrors.Is(err, errors.ErrOutOfBoard) {
		t.Errorf("a1 offset (0,-1) error = %v, want ErrOutOfBoard", err)
	}
}

func TestUnboundedRoundTrip(t *testing.T) {
	sq := MustParseSquare("c7")
	back, ok := Unbound(sq).Square()
	if !ok || back != sq {
		t.Errorf("Unbound round trip = %v (%v), want %v", back, ok, sq)
	}

	// A shifted coordinate off the board refuses to narrow.
	if _, ok := Unbound(MustParseSquare("a1")).Shift(-1, 0).Square(); ok {
		t.Error("off-board coordinate narrowed to a square")
	}
	if _, ok := Unbound(MustParseSquare("h8")).Shift(0, 1).Square(); ok {
		t.Error("off-board coordinate narrowed to a square")
	}
}

func TestRay(t *testing.T) {
	steps := Ray(MustParseSquare("a1"), Up, 7)
	if len(steps) != 7 {
		t.Fatalf("Ray length = %d, want 7", len(steps))
	}
	for i, u := range steps {
		sq, ok := u.Square()
		if !ok {
			t.Fatalf("step %d off board", i)
		}
		if want := (Square{File: FileA, Rank: Rank(i + 2)}); sq != want {
			t.Errorf("step %d = %v, want %v", i, sq, want)
		}
	}
}

func TestRayLeavesBoardUnbounded(t *testing.T) {
	// Steps past the edge stay in the result; narrowing discards them.
	steps := Ray(MustParseSquare("g4"), Right, 3)
	if len(steps) != 3 {
		t.Fatalf("Ray length = %d, want 3", len(steps))
	}
	if sq, ok := steps[0].Square(); !ok || sq != MustParseSquare("h4") {
		t.Errorf("first step = %v (%v), want h4", sq, ok)
	}
	for i, u := range steps[1:] {
		if _, ok := u.Square(); ok {
			t.Errorf("step %d narrowed despite being off board", i+1)
		}
	}
}

func TestDirectionTables(t *testing.T) {
	if len(KnightJumps) != 8 {
		t.Errorf("KnightJumps = %d entries, want 8", len(KnightJumps))
	}
	if len(KingSteps) != 8 {
		t.Errorf("KingSteps = %d entries, want 8", len(KingSteps))
	}
	for _, d := range KnightJumps {
		if abs(d.DF)+abs(d.DR) != 3 || d.DF == 0 || d.DR == 0 {
			t.Errorf("knight jump %+v is not L-shaped", d)
		}
	}
	for _, d := range KingSteps {
		if d.DF == 0 && d.DR == 0 {
			t.Errorf("king step %+v does not move", d)
		}
		if abs(d.DF) > 1 || abs(d.DR) > 1 {
			t.Errorf("king step %+v is not adjacent", d)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
