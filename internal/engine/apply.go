package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply mutates the board by the given move and refreshes the terminal
// result. It performs no legality re-check; callers are expected to have
// confirmed legality via IsLegal first. Applying a move from an empty
// origin returns ErrInvalidMove, and a decided game rejects every
// further move with ErrGameOver.
func (b *Board) Apply(m chess.Move) error {
	if b.outcome.Decided() {
		return b.moveError(errors.ErrGameOver, m)
	}
	if err := b.apply(m); err != nil {
		return err
	}
	b.refreshOutcome()
	return nil
}

// apply performs the raw move application without terminal detection.
// The legality simulation uses this path, keeping the clone-based check
// non-recursive.
func (b *Board) apply(m chess.Move) error {
	if m.IsCastle() {
		b.applyCastle(m.Castle)
		return nil
	}
	return b.applyRegular(m)
}

// applyRegular relocates (or promotes) the moving piece, updates the
// castling-rights flags and counters, and flips the side to move.
func (b *Board) applyRegular(m chess.Move) error {
	piece, ok := b.pieceAt(m.From)
	if !ok {
		return b.moveError(errors.Wrap(errors.ErrInvalidMove, "no piece at origin"), m)
	}
	if !m.To.Valid() {
		return b.moveError(errors.Wrap(errors.ErrInvalidMove, "destination off the board"), m)
	}

	promotionRank := piece.Colour.Opposite().BackRank()
	promoting := piece.Kind == chess.Pawn && m.To.Rank == promotionRank
	if promoting && m.Promotion == chess.NoPromotion {
		return b.moveError(errors.Wrap(errors.ErrInvalidMove, "promotion target required"), m)
	}
	if !promoting && m.Promotion != chess.NoPromotion {
		return b.moveError(errors.Wrap(errors.ErrInvalidMove, "move does not promote"), m)
	}

	rights := &b.castling[piece.Colour]
	if piece.Kind == chess.King {
		rights.KingMoved = true
	}
	if piece.Kind == chess.Rook {
		if m.From.File == chess.FileA {
			rights.LongRookMoved = true
		}
		if m.From.File == chess.FileH {
			rights.ShortRookMoved = true
		}
	}

	capture := b.occupied(m.To)
	b.clearCell(m.From)
	if promoting {
		b.setPiece(m.To, chess.Piece{Kind: m.Promotion.Kind(), Colour: piece.Colour})
	} else {
		b.setPiece(m.To, piece)
	}

	if capture || piece.Kind == chess.Pawn {
		b.quietPlies = 0
	} else {
		b.quietPlies++
	}
	b.finishPly()
	return nil
}

// applyCastle unconditionally relocates the king and the side's rook to
// their fixed destinations and sets both never-moved flags. Castling
// increments the ply counter; it never resets it.
func (b *Board) applyCastle(side chess.CastleSide) {
	colour := b.turn
	rank := colour.BackRank()
	rights := &b.castling[colour]
	rights.KingMoved = true

	kingFrom := chess.Square{File: chess.FileE, Rank: rank}
	var kingTo, rookFrom, rookTo chess.Square
	if side == chess.ShortCastle {
		rights.ShortRookMoved = true
		kingTo = chess.Square{File: chess.FileG, Rank: rank}
		rookFrom = chess.Square{File: chess.FileH, Rank: rank}
		rookTo = chess.Square{File: chess.FileF, Rank: rank}
	} else {
		rights.LongRookMoved = true
		kingTo = chess.Square{File: chess.FileC, Rank: rank}
		rookFrom = chess.Square{File: chess.FileA, Rank: rank}
		rookTo = chess.Square{File: chess.FileD, Rank: rank}
	}
	b.relocate(kingFrom, kingTo)
	b.relocate(rookFrom, rookTo)

	b.quietPlies++
	b.finishPly()
}

// relocate moves whatever occupies from onto to.
func (b *Board) relocate(from, to chess.Square) {
	cell := b.cells[cellIndex(from)]
	b.clearCell(from)
	b.cells[cellIndex(to)] = cell
}

// finishPly flips the side to move, advances the move number when White
// is next, and drops any pending selection.
func (b *Board) finishPly() {
	b.ClearSelection()
	b.turn = b.turn.Opposite()
	if b.turn == chess.White {
		b.moveNumber++
	}
}

// refreshOutcome latches the terminal result for the new side to move.
func (b *Board) refreshOutcome() {
	switch {
	case b.IsCheckmate(b.turn):
		b.outcome = Outcome{Result: WinByCheckmate, Loser: b.turn}
	case b.IsStalemate():
		b.outcome = Outcome{Result: DrawByStalemate}
	}
}

// moveError wraps err with the move text and position context.
func (b *Board) moveError(err error, m chess.Move) error {
	return &errors.MoveError{
		Err:        err,
		MoveText:   m.String(),
		SideToMove: b.turn.String(),
		MoveNumber: b.moveNumber,
	}
}
