// playchess is a two-player terminal front end for the chess rules
// engine. It renders the position, reads single-move SAN text from
// stdin, shows legal-destination highlights on request, and tracks the
// game to checkmate or stalemate.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	placement = flag.String("placement", engine.StartingPlacement,
		"starting piece placement (the FEN piece field)")
	plain = flag.Bool("plain", false, "disable colored board output")
)

var errQuit = errors.New("quit")

func main() {
	flag.Usage = usage
	flag.Parse()

	if *plain {
		color.NoColor = true
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `playchess - play chess in the terminal

Enter moves as SAN text (e4, Nf3, exd5, O-O, e8=Q). Commands:

  moves <square>  highlight the legal destinations of the piece on <square>
  list            print the move list so far
  quit            leave the game

Flags:
`)
	flag.PrintDefaults()
}

func run() error {
	board, err := engine.NewFromPlacement(*placement)
	if err != nil {
		return err
	}
	g := &game{board: board, out: os.Stdout}
	if err := g.loop(bufio.NewScanner(os.Stdin)); err != nil && err != errQuit {
		return err
	}
	return nil
}

// game holds the presentation state around one board: the accumulated
// SAN move list and the highlight set for the current selection.
type game struct {
	board      *engine.Board
	moves      []string
	highlights engine.Highlights
	out        io.Writer
}

func (g *game) loop(in *bufio.Scanner) error {
	for {
		fmt.Fprintln(g.out, renderBoard(g.board, g.highlights))

		if outcome := g.board.Outcome(); outcome.Decided() {
			g.announce(outcome)
			g.printMoveList()
			return nil
		}

		fmt.Fprintf(g.out, "%s to move (move %d)> ", g.board.Turn(), g.board.MoveNumber())
		if !in.Scan() {
			return in.Err()
		}
		if err := g.handle(strings.TrimSpace(in.Text())); err != nil {
			return err
		}
	}
}

func (g *game) handle(line string) error {
	switch {
	case line == "":
	case line == "quit" || line == "exit":
		return errQuit
	case line == "help":
		usage()
	case line == "list":
		g.printMoveList()
	case strings.HasPrefix(line, "moves "):
		g.showMoves(strings.TrimSpace(strings.TrimPrefix(line, "moves ")))
	default:
		g.play(line)
	}
	return nil
}

// showMoves selects the piece on the named square and highlights its
// legal destinations.
func (g *game) showMoves(arg string) {
	sq, err := chess.ParseSquare(arg)
	if err != nil {
		fmt.Fprintf(g.out, "no such square: %s\n", arg)
		return
	}
	cell := g.board.CellAt(sq)
	if cell.Empty() {
		fmt.Fprintf(g.out, "%s is empty\n", sq)
		return
	}
	if err := g.board.Select(cell.Piece, sq); err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	g.highlights = g.board.HighlightLegalDestinations(cell.Piece, sq)
	if len(g.highlights) == 0 {
		fmt.Fprintf(g.out, "%s on %s has no legal moves\n", cell.Piece, sq)
	}
}

// play resolves SAN text against the position and applies the move.
func (g *game) play(text string) {
	mv, err := g.board.ParseSAN(text)
	if err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	piece := g.moverPiece(mv)
	if !g.board.IsLegal(piece, mv) {
		fmt.Fprintf(g.out, "illegal move: %s\n", text)
		return
	}
	if mv.IsCastle() && !g.board.IsCastleAvailable(mv.Castle) {
		fmt.Fprintf(g.out, "castling no longer available: %s\n", text)
		return
	}

	// SAN rendering depends on the pre-move position.
	sm, err := g.board.ToSAN(mv)
	if err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	if err := g.board.Apply(mv); err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	g.moves = append(g.moves, sm.String())
	g.highlights = nil
}

// moverPiece names the piece a resolved move belongs to.
func (g *game) moverPiece(mv chess.Move) chess.Piece {
	if mv.IsCastle() {
		return chess.Piece{Kind: chess.King, Colour: g.board.Turn()}
	}
	return g.board.CellAt(mv.From).Piece
}

func (g *game) announce(outcome engine.Outcome) {
	switch outcome.Result {
	case engine.WinByCheckmate:
		fmt.Fprintf(g.out, "checkmate - %s wins\n", outcome.Loser.Opposite())
	case engine.DrawByStalemate:
		fmt.Fprintln(g.out, "stalemate - draw")
	}
}

func (g *game) printMoveList() {
	if len(g.moves) == 0 {
		fmt.Fprintln(g.out, "no moves played")
		return
	}
	var sb strings.Builder
	for i, m := range g.moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s", i/2+1, m)
		} else {
			fmt.Fprintf(&sb, " %s\n", m)
		}
	}
	if len(g.moves)%2 == 1 {
		sb.WriteByte('\n')
	}
	fmt.Fprint(g.out, sb.String())
}
