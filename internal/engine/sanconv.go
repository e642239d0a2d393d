package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/san"
)

// ToSAN converts a canonical move to SAN form. The conversion depends on
// the side to move and pre-move occupancy, so it must be called before
// the move is applied. For every legal move m, FromSAN(ToSAN(m)) == m.
func (b *Board) ToSAN(m chess.Move) (san.Move, error) {
	if m.IsCastle() {
		return san.Move{Class: san.Castle, Side: m.Castle}, nil
	}

	piece, ok := b.pieceAt(m.From)
	if !ok {
		return san.Move{}, b.moveError(errors.Wrap(errors.ErrInvalidMove, "no piece at origin"), m)
	}
	if !m.To.Valid() {
		return san.Move{}, b.moveError(errors.Wrap(errors.ErrInvalidMove, "destination off the board"), m)
	}

	if piece.Kind == chess.Pawn {
		return b.pawnToSAN(piece, m), nil
	}
	return b.pieceToSAN(piece, m), nil
}

// pawnToSAN renders a pawn move. A capture always includes the origin
// file, plus the origin rank only when at least two same-colour pawns
// share that file.
func (b *Board) pawnToSAN(piece chess.Piece, m chess.Move) san.Move {
	if !b.occupied(m.To) {
		return san.Move{Class: san.PawnPush, To: m.To, Promotion: m.Promotion}
	}

	sharing := 0
	for _, placed := range b.Pieces() {
		if placed.Piece.Kind == chess.Pawn && placed.Piece.Colour == piece.Colour &&
			placed.Square.File == m.From.File {
			sharing++
		}
	}
	sm := san.Move{
		Class:     san.PawnCapture,
		FromFile:  m.From.File,
		To:        m.To,
		Promotion: m.Promotion,
	}
	if sharing > 1 {
		sm.FromRank = m.From.Rank
	}
	return sm
}

// pieceToSAN renders a non-pawn move, disambiguating the origin only
// when another piece of the same kind and colour could also legally
// reach the destination: by file if the competitors differ in file, by
// rank if they all share the mover's file, and by the full origin square
// otherwise.
func (b *Board) pieceToSAN(piece chess.Piece, m chess.Move) san.Move {
	sm := san.Move{
		Class:   san.PieceMove,
		Piece:   piece.Kind,
		Capture: b.occupied(m.To),
		To:      m.To,
	}

	var competitors []chess.Square
	sameKind := 0
	for _, placed := range b.Pieces() {
		if placed.Piece.Kind != piece.Kind || placed.Piece.Colour != piece.Colour {
			continue
		}
		sameKind++
		if placed.Square == m.From {
			continue
		}
		for _, other := range b.LegalMoves(placed.Piece, placed.Square) {
			if !other.IsCastle() && other.To == m.To {
				competitors = append(competitors, placed.Square)
				break
			}
		}
	}
	if sameKind == 1 || len(competitors) == 0 {
		return sm
	}

	anyOtherFile := false
	allSameFile := true
	for _, sq := range competitors {
		if sq.File != m.From.File {
			anyOtherFile = true
			allSameFile = false
		}
	}
	switch {
	case anyOtherFile:
		sm.FromFile = m.From.File
	case allSameFile:
		sm.FromRank = m.From.Rank
	default:
		sm.FromFile = m.From.File
		sm.FromRank = m.From.Rank
	}
	return sm
}

// FromSAN resolves a SAN move against the current position, intersecting
// the pieces of the stated kind and side to move with any origin
// constraint and with the pieces whose legal moves reach the stated
// destination. Exactly one candidate must survive: none yields
// ErrUnresolvedSAN and several yield ErrAmbiguousSAN.
func (b *Board) FromSAN(sm san.Move) (chess.Move, error) {
	switch sm.Class {
	case san.Castle:
		return chess.NewCastle(sm.Side), nil
	case san.PieceMove:
		return b.resolve(sm, func(p PlacedPiece) bool {
			if p.Piece.Kind != sm.Piece {
				return false
			}
			if sm.FromFile.Valid() && p.Square.File != sm.FromFile {
				return false
			}
			if sm.FromRank.Valid() && p.Square.Rank != sm.FromRank {
				return false
			}
			return true
		})
	case san.PawnCapture:
		return b.resolve(sm, func(p PlacedPiece) bool {
			if p.Piece.Kind != chess.Pawn || p.Square.File != sm.FromFile {
				return false
			}
			return !sm.FromRank.Valid() || p.Square.Rank == sm.FromRank
		})
	default: // san.PawnPush
		return b.resolve(sm, func(p PlacedPiece) bool {
			return p.Piece.Kind == chess.Pawn
		})
	}
}

// resolve collects the legal moves of the side to move's pieces passing
// the origin filter that reach sm's destination with sm's promotion.
func (b *Board) resolve(sm san.Move, origin func(PlacedPiece) bool) (chess.Move, error) {
	var matches []chess.Move
	for _, placed := range b.Pieces() {
		if placed.Piece.Colour != b.turn || !origin(placed) {
			continue
		}
		for _, m := range b.LegalMoves(placed.Piece, placed.Square) {
			if !m.IsCastle() && m.To == sm.To && m.Promotion == sm.Promotion {
				matches = append(matches, m)
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return chess.Move{}, errors.Wrap(errors.ErrUnresolvedSAN, sm.String())
	default:
		return chess.Move{}, errors.Wrap(errors.ErrAmbiguousSAN, sm.String())
	}
}

// ParseSAN parses single-move SAN text and resolves it against the
// current position.
func (b *Board) ParseSAN(text string) (chess.Move, error) {
	sm, err := san.Parse(text)
	if err != nil {
		return chess.Move{}, err
	}
	return b.FromSAN(sm)
}
