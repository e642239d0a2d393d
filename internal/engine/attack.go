package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsAttacked reports whether sq is attacked by the given colour: some
// piece of that colour has it as a reachable destination under
// pseudo-legal generation. The attacker's own king safety is irrelevant.
// Castle pseudo-moves never count, having no single destination square.
func (b *Board) IsAttacked(sq chess.Square, by chess.Colour) bool {
	for _, placed := range b.Pieces() {
		if placed.Piece.Colour != by {
			continue
		}
		for _, m := range b.AvailableMoves(placed.Piece, placed.Square) {
			if !m.IsCastle() && m.To == sq {
				return true
			}
		}
	}
	return false
}

// IsKingAttacked locates the colour's king and reports whether its
// square is attacked by the opposing colour.
func (b *Board) IsKingAttacked(colour chess.Colour) bool {
	sq, ok := b.kingSquare(colour)
	if !ok {
		return false
	}
	return b.IsAttacked(sq, colour.Opposite())
}

// kingSquare finds the colour's king. The placement loader guarantees
// exactly one king per colour.
func (b *Board) kingSquare(colour chess.Colour) (chess.Square, bool) {
	for _, placed := range b.Pieces() {
		if placed.Piece.Kind == chess.King && placed.Piece.Colour == colour {
			return placed.Square, true
		}
	}
	return chess.Square{}, false
}
