package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Highlights is a derived set of legal destination squares for a
// selected piece. It is recomputed on demand and owned by the
// presentation layer; the board state itself carries no per-cell
// highlight flags.
type Highlights map[chess.Square]struct{}

// Contains reports whether sq is a highlighted destination.
func (h Highlights) Contains(sq chess.Square) bool {
	_, ok := h[sq]
	return ok
}

// Clear removes every highlighted square.
func (h Highlights) Clear() {
	for sq := range h {
		delete(h, sq)
	}
}

// HighlightLegalDestinations computes the set of squares the piece on
// from can legally move to. A legal castle highlights the king's
// destination square (g or c on the mover's back rank).
func (b *Board) HighlightLegalDestinations(piece chess.Piece, from chess.Square) Highlights {
	h := make(Highlights)
	for _, m := range b.LegalMoves(piece, from) {
		if m.IsCastle() {
			file := chess.FileG
			if m.Castle == chess.LongCastle {
				file = chess.FileC
			}
			h[chess.Square{File: file, Rank: piece.Colour.BackRank()}] = struct{}{}
		} else {
			h[m.To] = struct{}{}
		}
	}
	return h
}
