package san

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parse parses a single SAN move from text. Check, mate, and annotation
// suffixes ("+", "#", "!", "?") are tolerated and ignored. Castling is
// accepted in both letter ("O-O") and zero ("0-0") spellings.
func Parse(text string) (Move, error) {
	body := strings.TrimRight(text, "+#!?")
	if body == "" {
		return Move{}, malformed(text)
	}

	switch body {
	case "O-O-O", "0-0-0":
		return Move{Class: Castle, Side: chess.LongCastle}, nil
	case "O-O", "0-0":
		return Move{Class: Castle, Side: chess.ShortCastle}, nil
	}

	promotion, body, err := splitPromotion(text, body)
	if err != nil {
		return Move{}, err
	}
	// A bare promotion suffix strips down to nothing.
	if body == "" {
		return Move{}, malformed(text)
	}

	if isPieceLetter(body[0]) {
		if promotion != chess.NoPromotion {
			return Move{}, malformed(text)
		}
		return parsePieceMove(text, body)
	}
	return parsePawnMove(text, body, promotion)
}

// splitPromotion strips a trailing "=X" suffix and returns its target.
func splitPromotion(text, body string) (chess.Promotion, string, error) {
	if len(body) < 2 || body[len(body)-2] != '=' {
		return chess.NoPromotion, body, nil
	}
	var promotion chess.Promotion
	switch body[len(body)-1] {
	case 'Q':
		promotion = chess.PromoteQueen
	case 'R':
		promotion = chess.PromoteRook
	case 'B':
		promotion = chess.PromoteBishop
	case 'N':
		promotion = chess.PromoteKnight
	default:
		return chess.NoPromotion, "", malformed(text)
	}
	return promotion, body[:len(body)-2], nil
}

// parsePieceMove parses forms like "Nf3", "Nxf3", "Nbd2", "N1d2", "Nb1d2".
func parsePieceMove(text, body string) (Move, error) {
	kind, _ := chess.KindFromLetter(body[0])
	rest := body[1:]

	if len(rest) < 2 {
		return Move{}, malformed(text)
	}
	to, err := chess.ParseSquare(rest[len(rest)-2:])
	if err != nil {
		return Move{}, malformed(text)
	}
	rest = rest[:len(rest)-2]

	capture := false
	if strings.HasSuffix(rest, "x") {
		capture = true
		rest = rest[:len(rest)-1]
	}

	m := Move{Class: PieceMove, Piece: kind, Capture: capture, To: to}
	switch len(rest) {
	case 0:
	case 1:
		if isFileChar(rest[0]) {
			m.FromFile = fileOf(rest[0])
		} else if isRankChar(rest[0]) {
			m.FromRank = rankOf(rest[0])
		} else {
			return Move{}, malformed(text)
		}
	case 2:
		if !isFileChar(rest[0]) || !isRankChar(rest[1]) {
			return Move{}, malformed(text)
		}
		m.FromFile = fileOf(rest[0])
		m.FromRank = rankOf(rest[1])
	default:
		return Move{}, malformed(text)
	}
	return m, nil
}

// parsePawnMove parses forms like "e4", "e8=Q", "exd5", "e7xd8=Q".
func parsePawnMove(text, body string, promotion chess.Promotion) (Move, error) {
	if i := strings.IndexByte(body, 'x'); i >= 0 {
		origin, dest := body[:i], body[i+1:]
		if len(origin) < 1 || len(origin) > 2 || !isFileChar(origin[0]) {
			return Move{}, malformed(text)
		}
		m := Move{Class: PawnCapture, FromFile: fileOf(origin[0]), Promotion: promotion}
		if len(origin) == 2 {
			if !isRankChar(origin[1]) {
				return Move{}, malformed(text)
			}
			m.FromRank = rankOf(origin[1])
		}
		to, err := chess.ParseSquare(dest)
		if err != nil {
			return Move{}, malformed(text)
		}
		m.To = to
		return m, nil
	}

	to, err := chess.ParseSquare(body)
	if err != nil {
		return Move{}, malformed(text)
	}
	return Move{Class: PawnPush, To: to, Promotion: promotion}, nil
}

func malformed(text string) error {
	return errors.Wrapf(errors.ErrMalformedSAN, "%q", text)
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return true
	}
	return false
}

func isFileChar(c byte) bool { return c >= 'a' && c <= 'h' }
func isRankChar(c byte) bool { return c >= '1' && c <= '8' }

func fileOf(c byte) chess.File { return chess.File(c-'a') + chess.FileA }
func rankOf(c byte) chess.Rank { return chess.Rank(c-'1') + chess.Rank1 }
