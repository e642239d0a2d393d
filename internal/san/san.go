// Package san implements standard algebraic notation: the SAN move
// representation, its text rendering, and its parser. Converting between
// SAN moves and canonical moves needs the board position and lives in the
// engine package.
package san

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Class categorizes the SAN move forms.
type Class int

const (
	PieceMove Class = iota
	PawnPush
	PawnCapture
	Castle
)

// Move is a single move in SAN form. Which fields are meaningful depends
// on Class:
//
//   - PieceMove: Piece, Capture, the optional FromFile/FromRank origin
//     disambiguator (file, rank, or both for a full square), and To.
//   - PawnPush: To and the optional Promotion.
//   - PawnCapture: FromFile, the optional FromRank, To, and Promotion.
//   - Castle: Side.
//
// Unset File and Rank fields are zero, which is off the board.
type Move struct {
	Class     Class
	Piece     chess.Kind
	Capture   bool
	FromFile  chess.File
	FromRank  chess.Rank
	To        chess.Square
	Promotion chess.Promotion
	Side      chess.CastleSide
}

// String renders the move as SAN text, e.g. "Nbd2", "exd8=Q", "O-O".
func (m Move) String() string {
	switch m.Class {
	case Castle:
		return m.Side.String()
	case PawnPush:
		return m.To.String() + m.Promotion.String()
	case PawnCapture:
		s := m.FromFile.String()
		if m.FromRank.Valid() {
			s += m.FromRank.String()
		}
		return s + "x" + m.To.String() + m.Promotion.String()
	default:
		s := string(m.Piece.Letter())
		if m.FromFile.Valid() {
			s += m.FromFile.String()
		}
		if m.FromRank.Valid() {
			s += m.FromRank.String()
		}
		if m.Capture {
			s += "x"
		}
		return s + m.To.String()
	}
}
