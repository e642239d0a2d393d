package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// AvailableMoves enumerates every move consistent with the piece's
// movement geometry and simple occupancy rules, ignoring whether the
// move leaves the mover's own king in check. The caller must guarantee
// that the piece genuinely occupies from; given that, the operation is
// total.
func (b *Board) AvailableMoves(piece chess.Piece, from chess.Square) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return b.pawnMoves(piece, from)
	case chess.King:
		return b.kingMoves(piece, from)
	case chess.Knight:
		return b.knightMoves(piece, from)
	case chess.Bishop:
		return b.slidingMoves(piece, from, chess.Diagonals[:])
	case chess.Rook:
		return b.slidingMoves(piece, from, chess.Orthogonals[:])
	case chess.Queen:
		dirs := append(chess.Orthogonals[:0:0], chess.Orthogonals[:]...)
		return b.slidingMoves(piece, from, append(dirs, chess.Diagonals[:]...))
	default:
		return nil
	}
}

// pawnMoves generates pawn pushes, diagonal captures, and their
// promotion fan-out.
func (b *Board) pawnMoves(piece chess.Piece, from chess.Square) []chess.Move {
	forward := chess.Up
	if piece.Colour == chess.Black {
		forward = chess.Down
	}

	// One step forward, and a second only from the home rank. The ray
	// stops at the first blocked step, so a blocked first step
	// suppresses the second entirely.
	steps := 1
	if from.Rank == piece.Colour.PawnRank() {
		steps = 2
	}
	var targets []chess.Square
	for _, u := range chess.Ray(from, forward, steps) {
		to, ok := u.Square()
		if !ok || b.occupied(to) {
			break
		}
		targets = append(targets, to)
	}

	// Diagonal moves are legal only onto cells held by the opponent.
	captureDirs := [2]chess.Direction{chess.UpLeft, chess.UpRight}
	if piece.Colour == chess.Black {
		captureDirs = [2]chess.Direction{chess.DownLeft, chess.DownRight}
	}
	for _, dir := range captureDirs {
		to, ok := chess.Unbound(from).Shift(dir.DF, dir.DR).Square()
		if ok && b.occupiedBy(to, piece.Colour.Opposite()) {
			targets = append(targets, to)
		}
	}

	// A destination on the opponent's back rank splits into four
	// alternative moves, one per promotion target.
	moves := make([]chess.Move, 0, len(targets))
	promotionRank := piece.Colour.Opposite().BackRank()
	for _, to := range targets {
		if to.Rank == promotionRank {
			for _, promotion := range chess.Promotions {
				moves = append(moves, chess.NewPromotionMove(from, to, promotion))
			}
		} else {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// kingMoves generates the adjacent-square moves plus castle pseudo-moves.
// Castles are generated only for a king on its home square with the
// never-moved flags intact; path occupancy and attacked squares are the
// legality filter's concern.
func (b *Board) kingMoves(piece chess.Piece, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, step := range chess.KingSteps {
		to, ok := chess.Unbound(from).Shift(step.DF, step.DR).Square()
		if ok && !b.occupiedBy(to, piece.Colour) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	if from == piece.Colour.KingHome() {
		rights := b.castling[piece.Colour]
		if rights.ShortPossible() {
			moves = append(moves, chess.NewCastle(chess.ShortCastle))
		}
		if rights.LongPossible() {
			moves = append(moves, chess.NewCastle(chess.LongCastle))
		}
	}
	return moves
}

// knightMoves generates the eight L-shaped jumps, each independently
// bounds-checked.
func (b *Board) knightMoves(piece chess.Piece, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, jump := range chess.KnightJumps {
		to, ok := chess.Unbound(from).Shift(jump.DF, jump.DR).Square()
		if ok && !b.occupiedBy(to, piece.Colour) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slidingMoves ray-casts up to 7 steps per direction. A ray includes the
// first occupied cell it meets but nothing beyond it, and that cell is
// excluded when it holds a friendly piece.
func (b *Board) slidingMoves(piece chess.Piece, from chess.Square, dirs []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		for _, u := range chess.Ray(from, dir, 7) {
			to, ok := u.Square()
			if !ok {
				break
			}
			if b.occupied(to) {
				if !b.occupiedBy(to, piece.Colour) {
					moves = append(moves, chess.NewMove(from, to))
				}
				break
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}
