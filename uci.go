package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/board"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// uciLoop serves the position-handling part of the UCI protocol plus a few
// console commands. There is no search; "go" only understands "go perft N".
func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	b := board.NewBoard() // the game board
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-core")
			fmt.Fprintln(out, "id author chess-core authors")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			b = board.NewBoard()
		case "quit":
			return
		case "position":
			next, err := position(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			b = next
		case "d":
			fmt.Fprint(out, b.Describe())
			fmt.Fprintf(out, "fen: %s\n", b.FEN())
			fmt.Fprintf(out, "status: %s\n", status(b))
		case "moves":
			var moves []string
			for _, m := range b.LegalMoves() {
				moves = append(moves, m.String())
			}
			slices.Sort(moves)
			fmt.Fprintln(out, strings.Join(moves, " "))
		case "go":
			if len(tokens) < 3 || strings.ToLower(tokens[1]) != "perft" {
				fmt.Fprintln(out, "info string search not available")
				continue
			}
			depth, err := strconv.Atoi(tokens[2])
			if err != nil || depth < 1 {
				fmt.Fprintln(out, "info string Malformed go perft depth", tokens[2])
				continue
			}
			perft(out, b, depth)
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

// position builds the board for "position startpos|fen <fen> [moves ...]".
func position(args []string) (*board.Board, error) {
	if len(args) == 0 {
		return nil, errors.New("malformed position command")
	}
	var b *board.Board
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		b = board.NewBoard()
	case "fen":
		i := slices.Index(rest, "moves")
		if i < 0 {
			i = len(rest)
		}
		var err error
		b, err = board.ParseFEN(strings.Join(rest[:i], " "))
		if err != nil {
			return nil, err
		}
		rest = rest[i:]
	default:
		return nil, fmt.Errorf("invalid position subcommand %s", args[0])
	}
	if len(rest) == 0 {
		return b, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, fmt.Errorf("unexpected token %s", rest[0])
	}
	for _, text := range rest[1:] {
		m, err := b.ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("move %s not played in %s: %w", text, b.FEN(), err)
		}
		b.MakeMove(m)
	}
	return b, nil
}

func perft(out io.Writer, b *board.Board, depth int) {
	start := time.Now()
	div := board.PerftDivide(b, depth)
	elapsed := time.Since(start)
	byText := make(map[string]uint64, len(div))
	var total uint64
	for m, n := range div {
		byText[m.String()] = n
		total += n
	}
	moves := maps.Keys(byText)
	slices.Sort(moves)
	for _, m := range moves {
		fmt.Fprintf(out, "%s: %d\n", m, byText[m])
	}
	fmt.Fprintf(out, "\nNodes searched: %d\n", total)
	fmt.Fprintf(out, "info string time %dms\n", elapsed.Milliseconds())
}

func status(b *board.Board) string {
	switch {
	case b.IsCheckmate():
		return "checkmate"
	case b.IsStalemate():
		return "stalemate"
	case b.IsFiftyMoveDraw():
		return "fifty-move draw"
	case b.IsThreefoldRepetition():
		return "threefold repetition"
	case b.InsufficientMaterial():
		return "insufficient material"
	case b.InCheck():
		return "check"
	}
	return "playing"
}
