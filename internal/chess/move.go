package chess

// CastleSide distinguishes the two castling options. NoCastle marks a
// regular move.
type CastleSide int

const (
	NoCastle CastleSide = iota
	ShortCastle
	LongCastle
)

// String returns the SAN rendering of a castle side.
func (s CastleSide) String() string {
	switch s {
	case ShortCastle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	default:
		return ""
	}
}

// Promotion names a pawn promotion target. NoPromotion marks a
// non-promoting move.
type Promotion int

const (
	NoPromotion Promotion = iota
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// Promotions lists the four alternative promotion targets a pawn move onto
// the back rank is split into.
var Promotions = [4]Promotion{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// Kind returns the piece kind the pawn turns into.
func (p Promotion) Kind() Kind {
	switch p {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return NoKind
	}
}

// String returns the SAN promotion suffix, e.g. "=Q", or "" for none.
func (p Promotion) String() string {
	if k := p.Kind(); k != NoKind {
		return "=" + string(k.Letter())
	}
	return ""
}

// Move is the canonical move representation: either a regular move
// (from, to, optional promotion target) or a castle. Equality is
// structural on these fields; a regular move carries no disambiguation
// metadata.
type Move struct {
	From      Square
	To        Square
	Promotion Promotion
	Castle    CastleSide
}

// NewMove builds a regular move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotionMove builds a regular move carrying a promotion target.
func NewPromotionMove(from, to Square, promotion Promotion) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// NewCastle builds a castle move.
func NewCastle(side CastleSide) Move {
	return Move{Castle: side}
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// String returns coordinate notation such as "e2e4" or "e7e8=Q";
// castles render as "O-O" and "O-O-O".
func (m Move) String() string {
	if m.IsCastle() {
		return m.Castle.String()
	}
	return m.From.String() + m.To.String() + m.Promotion.String()
}
