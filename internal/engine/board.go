// Package engine implements the authoritative board position: move
// generation, legality filtering, attack and terminal detection, move
// application, and SAN conversion.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Cell is one board square: empty or occupied by a piece.
type Cell struct {
	Piece chess.Piece
}

// Empty reports whether the cell holds no piece.
func (c Cell) Empty() bool {
	return c.Piece.Kind == chess.NoKind
}

// CastlingRights tracks one colour's castling eligibility with three
// monotonic flags: once set, never reset.
type CastlingRights struct {
	KingMoved      bool
	ShortRookMoved bool
	LongRookMoved  bool
}

// ShortPossible reports whether the short castle is still available as
// far as the never-moved flags are concerned.
func (r CastlingRights) ShortPossible() bool {
	return !r.KingMoved && !r.ShortRookMoved
}

// LongPossible reports whether the long castle is still available as
// far as the never-moved flags are concerned.
func (r CastlingRights) LongPossible() bool {
	return !r.KingMoved && !r.LongRookMoved
}

// Result classifies a decided game.
type Result int

const (
	Undecided Result = iota
	WinByCheckmate
	DrawByStalemate
)

// Outcome is the terminal result of a game. Loser is meaningful only for
// WinByCheckmate. Once a board's outcome is decided it is never cleared.
type Outcome struct {
	Result Result
	Loser  chess.Colour
}

// Decided reports whether the game has ended.
func (o Outcome) Decided() bool {
	return o.Result != Undecided
}

// Selection is the piece currently selected for move input.
type Selection struct {
	Piece chess.Piece
	From  chess.Square
}

// PlacedPiece is a (piece, square) pair produced by Pieces.
type PlacedPiece struct {
	Piece  chess.Piece
	Square chess.Square
}

// Board is the authoritative position: the 64-cell layout, side to move,
// castling rights, counters, and terminal result. All fields are plain
// values, so a clone is an independently-owned copy with no shared
// mutable state; the legality filter relies on this.
type Board struct {
	cells       [64]Cell
	turn        chess.Colour
	castling    [2]CastlingRights // indexed by chess.Colour
	quietPlies  uint
	moveNumber  uint
	outcome     Outcome
	selected    Selection
	hasSelected bool
}

// New creates a board holding the standard starting position.
func New() *Board {
	b, err := NewFromPlacement(StartingPlacement)
	if err != nil {
		panic("engine: starting placement failed to parse: " + err.Error())
	}
	return b
}

// NewFromPlacement creates a board from a placement string with White to
// move. Malformed strings, layouts that are not 64 cells, and layouts
// without exactly one king per colour are rejected with
// ErrMalformedPlacement.
func NewFromPlacement(placement string) (*Board, error) {
	cells, err := parsePlacement(placement)
	if err != nil {
		return nil, err
	}
	return &Board{
		cells:      cells,
		turn:       chess.White,
		moveNumber: 1,
	}, nil
}

// Turn returns the side to move.
func (b *Board) Turn() chess.Colour {
	return b.turn
}

// MoveNumber returns the current move number, starting at 1 and
// incrementing each time the side to move becomes White.
func (b *Board) MoveNumber() uint {
	return b.moveNumber
}

// QuietPlies returns the number of plies since the last capture or pawn
// move. It is tracked for draw bookkeeping but not enforced.
func (b *Board) QuietPlies() uint {
	return b.quietPlies
}

// Outcome returns the terminal result, if the game has one.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// CellAt returns the cell at the given square. Off-board squares read
// as empty.
func (b *Board) CellAt(sq chess.Square) Cell {
	if !sq.Valid() {
		return Cell{}
	}
	return b.cells[cellIndex(sq)]
}

// Pieces returns every (piece, square) pair currently on the board, in
// layout order (rank 8 down to rank 1, file a to h). The order is stable
// within one state.
func (b *Board) Pieces() []PlacedPiece {
	pieces := make([]PlacedPiece, 0, 32)
	for i, cell := range b.cells {
		if !cell.Empty() {
			pieces = append(pieces, PlacedPiece{Piece: cell.Piece, Square: cellSquare(i)})
		}
	}
	return pieces
}

// IsCastleAvailable reports whether the side to move still has the given
// castle available according to its never-moved flags. Path occupancy and
// attacked squares are the legality filter's concern.
func (b *Board) IsCastleAvailable(side chess.CastleSide) bool {
	rights := b.castling[b.turn]
	if side == chess.ShortCastle {
		return rights.ShortPossible()
	}
	return rights.LongPossible()
}

// Select marks the piece on sq as selected for move input. It fails with
// ErrInvalidMove if the piece does not occupy sq.
func (b *Board) Select(piece chess.Piece, sq chess.Square) error {
	if p, ok := b.pieceAt(sq); !ok || p != piece {
		return errors.Wrapf(errors.ErrInvalidMove, "select %s at %s", piece, sq)
	}
	b.selected = Selection{Piece: piece, From: sq}
	b.hasSelected = true
	return nil
}

// Selected returns the current selection, if any.
func (b *Board) Selected() (Selection, bool) {
	return b.selected, b.hasSelected
}

// ClearSelection drops the current selection.
func (b *Board) ClearSelection() {
	b.selected = Selection{}
	b.hasSelected = false
}

// clone returns an independently-owned copy of the board. The struct is
// flat, so a value copy suffices.
func (b *Board) clone() *Board {
	copied := *b
	return &copied
}

// pieceAt returns the piece on sq, if any. Off-board squares hold
// nothing.
func (b *Board) pieceAt(sq chess.Square) (chess.Piece, bool) {
	if !sq.Valid() {
		return chess.Piece{}, false
	}
	cell := b.cells[cellIndex(sq)]
	return cell.Piece, !cell.Empty()
}

// occupied reports whether sq holds a piece.
func (b *Board) occupied(sq chess.Square) bool {
	return !b.cells[cellIndex(sq)].Empty()
}

// occupiedBy reports whether sq holds a piece of the given colour.
func (b *Board) occupiedBy(sq chess.Square, colour chess.Colour) bool {
	cell := b.cells[cellIndex(sq)]
	return !cell.Empty() && cell.Piece.Colour == colour
}

// setPiece places a piece on sq.
func (b *Board) setPiece(sq chess.Square, piece chess.Piece) {
	b.cells[cellIndex(sq)] = Cell{Piece: piece}
}

// clearCell empties sq.
func (b *Board) clearCell(sq chess.Square) {
	b.cells[cellIndex(sq)] = Cell{}
}

// cellIndex maps a square to its position in the layout: rank 8 down to
// rank 1, file a to h within each rank.
func cellIndex(sq chess.Square) int {
	return (8-int(sq.Rank))*8 + int(sq.File) - 1
}

// cellSquare is the inverse of cellIndex.
func cellSquare(i int) chess.Square {
	return chess.Square{
		File: chess.File(i%8) + chess.FileA,
		Rank: chess.Rank(8 - i/8),
	}
}
