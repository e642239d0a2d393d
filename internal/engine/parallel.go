package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// LegalMovesParallel is LegalMoves with candidate legality evaluated on a
// worker pool. Each check simulates on its own board copy and shares no
// mutable state, so fanning out preserves verdicts exactly; the result
// slice matches LegalMoves in content and order.
func (b *Board) LegalMovesParallel(piece chess.Piece, from chess.Square, workers int) []chess.Move {
	candidates := b.AvailableMoves(piece, from)
	return worker.FilterLegal(candidates, func(m chess.Move) bool {
		return b.IsLegal(piece, m)
	}, workers)
}
