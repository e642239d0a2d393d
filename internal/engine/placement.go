package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Fixed placement strings used as fixtures. Only the piece-placement
// field of FEN is understood; turn, castling rights, en passant and
// clocks are never read.
const (
	// StartingPlacement is the standard starting position.
	StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

	// ScholarsMatePlacement is the position after 1.e4 e5 2.Bc4 Nc6
	// 3.Qh5 Nf6 4.Qxf7#, with Black checkmated.
	ScholarsMatePlacement = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR"

	// BareKingsPlacement is a minimal two-king position.
	BareKingsPlacement = "4k3/8/8/8/8/8/8/3K4"
)

// parsePlacement parses a rank-separated placement string into the
// ordered 64-cell layout: 8 '/'-separated ranks, highest first, digits
// 1-8 denoting runs of empty cells and letters p/k/q/r/b/n denoting
// pieces with case encoding colour.
func parsePlacement(placement string) ([64]Cell, error) {
	var cells [64]Cell

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return cells, &errors.PlacementError{
			Err: errors.Wrapf(errors.ErrMalformedPlacement, "want 8 ranks, got %d", len(ranks)),
		}
	}

	kings := [2]int{}
	i := 0
	for r, rank := range ranks {
		width := 0
		for _, symbol := range rank {
			switch {
			case symbol >= '1' && symbol <= '8':
				n := int(symbol - '0')
				for j := 0; j < n && i < 64; j++ {
					cells[i] = Cell{}
					i++
				}
				width += n
			default:
				piece, ok := pieceFromSymbol(symbol)
				if !ok {
					return cells, &errors.PlacementError{
						Err:    errors.Wrap(errors.ErrMalformedPlacement, "unrecognized symbol"),
						Rank:   8 - r,
						Symbol: symbol,
					}
				}
				if i < 64 {
					cells[i] = Cell{Piece: piece}
					i++
				}
				if piece.Kind == chess.King {
					kings[piece.Colour]++
				}
				width++
			}
		}
		if width != 8 {
			return cells, &errors.PlacementError{
				Err:  errors.Wrapf(errors.ErrMalformedPlacement, "rank holds %d cells, want 8", width),
				Rank: 8 - r,
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return cells, &errors.PlacementError{
				Err: errors.Wrapf(errors.ErrMalformedPlacement,
					"%s has %d kings, want exactly 1", colour, kings[colour]),
			}
		}
	}

	return cells, nil
}

// pieceFromSymbol maps a placement letter to a piece; lowercase is Black,
// uppercase is White.
func pieceFromSymbol(symbol rune) (chess.Piece, bool) {
	colour := chess.White
	if symbol >= 'a' && symbol <= 'z' {
		colour = chess.Black
	}
	kind, ok := chess.KindFromLetter(byte(symbol))
	if !ok {
		return chess.Piece{}, false
	}
	return chess.Piece{Kind: kind, Colour: colour}, true
}
