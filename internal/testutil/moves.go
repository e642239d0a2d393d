package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq parses an algebraic square literal, failing the test on error.
func Sq(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad square literal %q: %v", text, err)
	}
	return sq
}

// Mv builds a regular move from two square literals.
func Mv(t *testing.T, from, to string) chess.Move {
	t.Helper()
	return chess.NewMove(Sq(t, from), Sq(t, to))
}

// AssertSameMoves compares two move sets ignoring order.
func AssertSameMoves(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := cmpopts.SortSlices(MoveLess)
	empty := cmpopts.EquateEmpty()
	if diff := cmp.Diff(want, got, sorted, empty); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: move set mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("move set mismatch (-want +got):\n%s", diff)
		}
	}
}

// MoveLess is an arbitrary total order on moves, for order-insensitive
// comparison.
func MoveLess(a, b chess.Move) bool {
	return a.String() < b.String()
}
