package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	lightSquare     = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare      = color.New(color.BgCyan, color.FgBlack)
	highlightSquare = color.New(color.BgHiRed, color.FgBlack)
	selectedSquare  = color.New(color.BgYellow, color.FgBlack)
)

// renderBoard draws the position rank 8 down to rank 1 with rank and
// file labels. Pieces render as placement letters (uppercase White,
// lowercase Black). The selected square and the highlighted legal
// destinations get accent backgrounds; with colors disabled, highlighted
// empty squares render as '*'.
func renderBoard(b *engine.Board, highlights engine.Highlights) string {
	var sb strings.Builder
	selected, hasSelection := b.Selected()

	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		sb.WriteString(" " + rank.String() + " ")
		for file := chess.FileA; file <= chess.FileH; file++ {
			sq := chess.Square{File: file, Rank: rank}
			cell := b.CellAt(sq)

			content := " "
			if color.NoColor {
				content = "."
			}
			if !cell.Empty() {
				content = string(cell.Piece.Letter())
			}

			style := lightSquare
			if (int(file)+int(rank))%2 == 0 {
				style = darkSquare
			}
			switch {
			case hasSelection && sq == selected.From:
				style = selectedSquare
			case highlights.Contains(sq):
				style = highlightSquare
				if cell.Empty() && color.NoColor {
					content = "*"
				}
			}
			sb.WriteString(style.Sprintf(" %s ", content))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   ")
	for file := chess.FileA; file <= chess.FileH; file++ {
		sb.WriteString(" " + file.String() + " ")
	}
	return sb.String()
}
