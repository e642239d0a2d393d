package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsLegal reports whether a pseudo-legal move of the given piece is
// legal. A regular move is legal iff, after applying it to a disposable
// copy of the board, the mover's own king is not attacked; this
// clone-and-simulate check is the correctness oracle. A castle is legal
// iff the king's transit path and the rook's transit path are
// unoccupied, and no square the king stands on or crosses (origin, path,
// destination) is attacked by the opponent.
func (b *Board) IsLegal(piece chess.Piece, m chess.Move) bool {
	if m.IsCastle() {
		return b.castleLegal(piece.Colour, m.Castle)
	}
	return !b.leavesKingAttacked(piece.Colour, m)
}

// leavesKingAttacked simulates the move on an independently-owned copy
// and inspects the resulting position. The copy is discarded afterwards.
func (b *Board) leavesKingAttacked(colour chess.Colour, m chess.Move) bool {
	next := b.clone()
	if err := next.apply(m); err != nil {
		return true
	}
	return next.IsKingAttacked(colour)
}

// castleLegal checks path occupancy and attacked squares for a castle.
//
// Transit sets on the mover's back rank:
//
//	Short: king f, g (occupancy and attack); rook g, f (occupancy only)
//	Long:  king d, c (occupancy and attack); rook b, c, d (occupancy only)
//
// The attack check additionally covers the king's origin square, so a
// king may not castle out of check.
func (b *Board) castleLegal(colour chess.Colour, side chess.CastleSide) bool {
	rank := colour.BackRank()
	var kingFiles, rookFiles []chess.File
	if side == chess.ShortCastle {
		kingFiles = []chess.File{chess.FileF, chess.FileG}
		rookFiles = []chess.File{chess.FileG, chess.FileF}
	} else {
		kingFiles = []chess.File{chess.FileD, chess.FileC}
		rookFiles = []chess.File{chess.FileB, chess.FileC, chess.FileD}
	}

	for _, f := range kingFiles {
		if b.occupied(chess.Square{File: f, Rank: rank}) {
			return false
		}
	}
	for _, f := range rookFiles {
		if b.occupied(chess.Square{File: f, Rank: rank}) {
			return false
		}
	}

	opponent := colour.Opposite()
	attackFiles := append([]chess.File{chess.FileE}, kingFiles...)
	for _, f := range attackFiles {
		if b.IsAttacked(chess.Square{File: f, Rank: rank}, opponent) {
			return false
		}
	}
	return true
}

// LegalMoves returns the piece's pseudo-legal moves filtered by the
// legality predicate. It is total and may be empty.
func (b *Board) LegalMoves(piece chess.Piece, from chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range b.AvailableMoves(piece, from) {
		if b.IsLegal(piece, m) {
			legal = append(legal, m)
		}
	}
	return legal
}
