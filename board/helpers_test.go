package board_test

import (
	"fmt"
	"testing"

	"golang.org/x/exp/slices"

	"chess-core/board"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos3FEN     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos4FEN     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos5FEN     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustParse(t testing.TB, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen, board.WithHasher(board.NewSeededHasher(7)))
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// findMove returns the generated move with the given coordinate text.
func findMove(t *testing.T, b *board.Board, text string) board.Move {
	t.Helper()
	for _, sm := range b.GenerateMoves() {
		if sm.Move.String() == text {
			return sm.Move
		}
	}
	t.Fatalf("move %s not generated in %s", text, b.FEN())
	return board.NoMove
}

// play makes a sequence of legal moves, failing on the first rejection.
func play(t *testing.T, b *board.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m := findMove(t, b, text)
		if !b.MakeMove(m) {
			t.Fatalf("move %s rejected in %s", text, b.FEN())
		}
		b.MustValidate()
	}
}

// snapshot captures every observable field so two boards can be compared.
// Piece lists are compared as sets: removal swaps the last slot into the gap.
type snapshot struct {
	FEN        string
	Key        uint64
	Side       board.Color
	EnPassant  board.Square
	Castling   board.CastlingRights
	Halfmove   int
	Fullmove   int
	Ply        int
	HistoryPly int
	Pawns      [3]board.Bitboard
	Kings      [2]board.Square
	Material   [2]int
	Big        [2]int
	Major      [2]int
	Minor      [2]int
	Lists      string
}

func takeSnapshot(b *board.Board) snapshot {
	s := snapshot{
		FEN:        b.FEN(),
		Key:        b.Key(),
		Side:       b.Side(),
		EnPassant:  b.EnPassant(),
		Castling:   b.Castling(),
		Halfmove:   b.HalfmoveClock(),
		Fullmove:   b.FullmoveNumber(),
		Ply:        b.Ply(),
		HistoryPly: b.HistoryPly(),
		Pawns:      [3]board.Bitboard{b.Pawns(board.White), b.Pawns(board.Black), b.Pawns(board.Both)},
	}
	for _, c := range []board.Color{board.White, board.Black} {
		s.Kings[c] = b.KingSquare(c)
		s.Material[c] = b.Material(c)
		s.Big[c] = b.BigPieces(c)
		s.Major[c] = b.MajorPieces(c)
		s.Minor[c] = b.MinorPieces(c)
	}
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		sqs := b.PieceSquares(p)
		slices.Sort(sqs)
		s.Lists += fmt.Sprintf("%v%v;", p, sqs)
	}
	return s
}

// walk makes and undoes every legal move to depth, validating the board after
// each step and checking the round trip. It returns the leaf count.
func walk(t *testing.T, b *board.Board, depth int) uint64 {
	t.Helper()
	if depth == 0 {
		return 1
	}
	var nodes uint64
	before := takeSnapshot(b)
	for _, sm := range b.GenerateMoves() {
		mover := b.Side()
		if !b.MakeMove(sm.Move) {
			if got := takeSnapshot(b); got != before {
				t.Fatalf("rejected %v changed the board:\n got %+v\nwant %+v", sm.Move, got, before)
			}
			continue
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("after %v from %s: %v", sm.Move, before.FEN, err)
		}
		if b.SquareAttacked(b.KingSquare(mover), mover.Other()) {
			t.Fatalf("%v accepted with own king attacked: %s", sm.Move, b.FEN())
		}
		nodes += walk(t, b, depth-1)
		b.UndoMove()
		if got := takeSnapshot(b); got != before {
			t.Fatalf("undo %v did not restore the board:\n got %+v\nwant %+v", sm.Move, got, before)
		}
	}
	return nodes
}
