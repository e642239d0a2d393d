package chess

import "testing"

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(MustParseSquare("e2"), MustParseSquare("e4")), "e2e4"},
		{NewPromotionMove(MustParseSquare("e7"), MustParseSquare("e8"), PromoteQueen), "e7e8=Q"},
		{NewPromotionMove(MustParseSquare("g7"), MustParseSquare("h8"), PromoteKnight), "g7h8=N"},
		{NewCastle(ShortCastle), "O-O"},
		{NewCastle(LongCastle), "O-O-O"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveEquality(t *testing.T) {
	// Moves are plain values; equality is structural.
	a := NewMove(MustParseSquare("e2"), MustParseSquare("e4"))
	b := NewMove(MustParseSquare("e2"), MustParseSquare("e4"))
	if a != b {
		t.Error("identical moves compare unequal")
	}
	if a == NewPromotionMove(MustParseSquare("e2"), MustParseSquare("e4"), PromoteQueen) {
		t.Error("promotion target ignored by equality")
	}
	if NewCastle(ShortCastle) == NewCastle(LongCastle) {
		t.Error("castle sides compare equal")
	}
}

func TestIsCastle(t *testing.T) {
	if !NewCastle(ShortCastle).IsCastle() {
		t.Error("short castle not recognized")
	}
	if NewMove(MustParseSquare("e2"), MustParseSquare("e4")).IsCastle() {
		t.Error("regular move recognized as castle")
	}
}

func TestPromotionKinds(t *testing.T) {
	want := map[Promotion]Kind{
		PromoteQueen:  Queen,
		PromoteRook:   Rook,
		PromoteBishop: Bishop,
		PromoteKnight: Knight,
	}
	if len(Promotions) != 4 {
		t.Fatalf("Promotions = %d entries, want 4", len(Promotions))
	}
	seen := map[Promotion]bool{}
	for _, p := range Promotions {
		if seen[p] {
			t.Errorf("promotion %v listed twice", p)
		}
		seen[p] = true
		if p.Kind() != want[p] {
			t.Errorf("%v Kind() = %v, want %v", p, p.Kind(), want[p])
		}
	}
	if got := PromoteQueen.String(); got != "=Q" {
		t.Errorf("PromoteQueen String() = %q, want %q", got, "=Q")
	}
	if got := NoPromotion.String(); got != "" {
		t.Errorf("NoPromotion String() = %q, want empty", got)
	}
}
