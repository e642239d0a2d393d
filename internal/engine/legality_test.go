package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestLegalMovesAreSubsetOfAvailable(t *testing.T) {
	b := New()
	for _, placed := range b.Pieces() {
		available := map[chess.Move]bool{}
		for _, m := range b.AvailableMoves(placed.Piece, placed.Square) {
			available[m] = true
		}
		for _, m := range b.LegalMoves(placed.Piece, placed.Square) {
			testutil.AssertTrue(t, available[m],
				"legal move %s of %s not in available set", m, placed.Piece)
		}
	}
}

func TestPinnedRookMayOnlyCaptureAlongThePin(t *testing.T) {
	// The rook on e2 shields its king from the rook on e3: any move off
	// the e-file exposes the king, so capturing the attacker is the only
	// legal move.
	b := mustBoard(t, "4k3/8/8/8/8/4r3/4R3/4K3")
	rook := mustPieceAt(t, b, "e2")
	from := chess.MustParseSquare("e2")

	got := b.LegalMoves(rook, from)
	testutil.AssertSameMoves(t, got, []chess.Move{testutil.Mv(t, "e2", "e3")})

	// The lateral moves are generated but fail the simulation.
	lateral := testutil.Mv(t, "e2", "d2")
	testutil.AssertFalse(t, b.IsLegal(rook, lateral), "pinned rook move %s legal", lateral)
}

func TestKingMayNotStayOnAttackedFile(t *testing.T) {
	b := mustBoard(t, "4r1k1/8/8/8/8/8/8/4K3")
	king := mustPieceAt(t, b, "e1")

	testutil.AssertTrue(t, b.IsKingAttacked(chess.White), "king on open file not in check")

	got := b.LegalMoves(king, chess.MustParseSquare("e1"))
	want := []chess.Move{
		testutil.Mv(t, "e1", "d1"),
		testutil.Mv(t, "e1", "d2"),
		testutil.Mv(t, "e1", "f1"),
		testutil.Mv(t, "e1", "f2"),
	}
	testutil.AssertSameMoves(t, got, want)
}

func TestLegalityCheckLeavesBoardUntouched(t *testing.T) {
	// The simulation works on a disposable copy: the position, turn and
	// castling rights all survive an IsLegal probe.
	b := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R")
	king := mustPieceAt(t, b, "e1")

	testutil.AssertTrue(t, b.IsLegal(king, chess.NewCastle(chess.ShortCastle)), "short castle illegal")
	testutil.AssertTrue(t, b.IsCastleAvailable(chess.ShortCastle), "probe consumed castle availability")
	testutil.AssertEqual(t, b.Turn(), chess.White, "probe flipped the turn")
	testutil.AssertEqual(t, mustPieceAt(t, b, "e1"), king, "probe moved the king")
}

func TestShortCastleLegality(t *testing.T) {
	king := chess.Piece{Kind: chess.King, Colour: chess.White}
	castle := chess.NewCastle(chess.ShortCastle)

	tests := []struct {
		name      string
		placement string
		legal     bool
	}{
		{"clear path", "4k3/8/8/8/8/8/8/4K2R", true},
		{"transit square occupied", "4k3/8/8/8/8/8/8/4KB1R", false},
		{"start position blocked", StartingPlacement, false},
		{"transit square attacked", "4kr2/8/8/8/8/8/8/4K2R", false},
		{"king in check", "4k3/8/8/8/4r3/8/8/4K2R", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.placement)
			testutil.AssertEqual(t, b.IsLegal(king, castle), tt.legal)
		})
	}
}

func TestLongCastleLegality(t *testing.T) {
	king := chess.Piece{Kind: chess.King, Colour: chess.White}
	castle := chess.NewCastle(chess.LongCastle)

	tests := []struct {
		name      string
		placement string
		legal     bool
	}{
		{"clear path", "4k3/8/8/8/8/8/8/R3K3", true},
		// b1 is rook transit only: occupancy blocks, attacks do not.
		{"rook path occupied", "4k3/8/8/8/8/8/8/RN2K3", false},
		{"king path attacked", "2r1k3/8/8/8/8/8/8/R3K3", false},
		{"b-file attacked only", "1r2k3/8/8/8/8/8/8/R3K3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.placement)
			testutil.AssertEqual(t, b.IsLegal(king, castle), tt.legal)
		})
	}
}

func TestBlackCastleUsesBackRank(t *testing.T) {
	// White to move by construction, but legality is colour-driven.
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/4K3")
	king := chess.Piece{Kind: chess.King, Colour: chess.Black}

	testutil.AssertTrue(t, b.IsLegal(king, chess.NewCastle(chess.ShortCastle)), "black short castle illegal")
	testutil.AssertTrue(t, b.IsLegal(king, chess.NewCastle(chess.LongCastle)), "black long castle illegal")
}

func TestPawnDoesNotAttackEmptySquares(t *testing.T) {
	// Attack detection is defined through pseudo-legal destinations, and
	// a pawn's diagonal is generated only onto an occupied square.
	empty := mustBoard(t, "4k3/8/8/8/8/4p3/8/4K3")
	testutil.AssertFalse(t, empty.IsAttacked(chess.MustParseSquare("d2"), chess.Black),
		"pawn attacks empty diagonal")

	occupied := mustBoard(t, "4k3/8/8/8/8/4p3/3N4/4K3")
	testutil.AssertTrue(t, occupied.IsAttacked(chess.MustParseSquare("d2"), chess.Black),
		"pawn does not attack occupied diagonal")
}

func TestIsAttacked(t *testing.T) {
	b := New()
	// The g1 knight reaches f3; nothing reaches e4 from the start.
	testutil.AssertTrue(t, b.IsAttacked(chess.MustParseSquare("f3"), chess.White))
	testutil.AssertFalse(t, b.IsAttacked(chess.MustParseSquare("e4"), chess.White))
	testutil.AssertFalse(t, b.IsKingAttacked(chess.White))
	testutil.AssertFalse(t, b.IsKingAttacked(chess.Black))
}

func TestLegalMovesParallelMatchesSequential(t *testing.T) {
	placements := []string{
		StartingPlacement,
		"4k3/8/8/8/8/4r3/4R3/4K3",
		"4k3/8/8/8/R2p4/8/8/4K3",
	}
	for _, placement := range placements {
		b := mustBoard(t, placement)
		for _, placed := range b.Pieces() {
			sequential := b.LegalMoves(placed.Piece, placed.Square)
			parallel := b.LegalMovesParallel(placed.Piece, placed.Square, 4)
			testutil.AssertEqual(t, parallel, sequential,
				"%s at %s", placed.Piece, placed.Square)
		}
	}
}

func TestHighlightLegalDestinations(t *testing.T) {
	b := New()
	knight := mustPieceAt(t, b, "b1")
	h := b.HighlightLegalDestinations(knight, chess.MustParseSquare("b1"))

	testutil.AssertEqual(t, len(h), 2, "highlight count")
	testutil.AssertTrue(t, h.Contains(chess.MustParseSquare("a3")))
	testutil.AssertTrue(t, h.Contains(chess.MustParseSquare("c3")))
	testutil.AssertFalse(t, h.Contains(chess.MustParseSquare("d2")))

	h.Clear()
	testutil.AssertEqual(t, len(h), 0, "highlights after Clear")
}

func TestHighlightCastleShowsKingDestination(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K2R")
	king := mustPieceAt(t, b, "e1")
	h := b.HighlightLegalDestinations(king, chess.MustParseSquare("e1"))

	testutil.AssertTrue(t, h.Contains(chess.MustParseSquare("g1")), "short castle destination")
	testutil.AssertTrue(t, h.Contains(chess.MustParseSquare("c1")), "long castle destination")
}
