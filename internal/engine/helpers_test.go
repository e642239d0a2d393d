package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard loads a placement, failing the test on error.
func mustBoard(t *testing.T, placement string) *Board {
	t.Helper()
	b, err := NewFromPlacement(placement)
	if err != nil {
		t.Fatalf("NewFromPlacement(%q) error: %v", placement, err)
	}
	return b
}

// mustPieceAt returns the piece on the named square, failing if the
// square is empty.
func mustPieceAt(t *testing.T, b *Board, square string) chess.Piece {
	t.Helper()
	cell := b.CellAt(chess.MustParseSquare(square))
	if cell.Empty() {
		t.Fatalf("no piece at %s", square)
	}
	return cell.Piece
}

// applyMoves applies coordinate moves in order, failing on any error.
func applyMoves(t *testing.T, b *Board, moves ...chess.Move) {
	t.Helper()
	for _, m := range moves {
		if err := b.Apply(m); err != nil {
			t.Fatalf("Apply(%s) error: %v", m, err)
		}
	}
}
