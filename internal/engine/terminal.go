package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsCheckmate reports whether the given colour is checkmated: its king
// is attacked and no piece of that colour has any legal move.
func (b *Board) IsCheckmate(colour chess.Colour) bool {
	return b.IsKingAttacked(colour) && !b.hasLegalMoves(colour)
}

// IsStalemate reports whether the side to move is stalemated: its king
// is not attacked and no piece of that side has any legal move.
func (b *Board) IsStalemate() bool {
	return !b.IsKingAttacked(b.turn) && !b.hasLegalMoves(b.turn)
}

// hasLegalMoves reports whether any piece of the colour has a legal move.
func (b *Board) hasLegalMoves(colour chess.Colour) bool {
	for _, placed := range b.Pieces() {
		if placed.Piece.Colour != colour {
			continue
		}
		if len(b.LegalMoves(placed.Piece, placed.Square)) > 0 {
			return true
		}
	}
	return false
}
