package board_test

import (
	"strings"
	"testing"

	"chess-core/board"
)

func TestBitboardOps(t *testing.T) {
	var bb board.Bitboard
	bb.Set(0)
	bb.Set(12)
	bb.Set(63)
	if bb.Count() != 3 || !bb.Has(12) {
		t.Fatalf("after Set: %b", uint64(bb))
	}
	bb.Move(12, 28)
	if bb.Has(12) || !bb.Has(28) {
		t.Fatalf("Move left %b", uint64(bb))
	}
	bb.Clear(0)
	if bb.Has(0) || bb.Count() != 2 {
		t.Fatalf("Clear left %b", uint64(bb))
	}

	var got []int
	for bb != 0 {
		got = append(got, bb.Pop())
	}
	if len(got) != 2 || got[0] != 28 || got[1] != 63 {
		t.Fatalf("Pop order = %v", got)
	}
}

func TestBitboardPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Pop on empty bitboard did not panic")
		}
	}()
	var bb board.Bitboard
	bb.Pop()
}

func TestBitboardPopEverySquare(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bb board.Bitboard
		bb.Set(i)
		if got := bb.Pop(); got != i || bb != 0 {
			t.Fatalf("Pop of bit %d = %d, left %b", i, got, uint64(bb))
		}
	}
}

func TestBitboardString(t *testing.T) {
	var bb board.Bitboard
	bb.Set(0)  // a1
	bb.Set(63) // h8
	lines := strings.Split(strings.TrimRight(bb.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "-------x" || lines[7] != "x-------" {
		t.Fatalf("unexpected grid:\n%s", bb)
	}
}

func TestPawnBitboardsFollowMoves(t *testing.T) {
	b := mustParse(t, board.StartFEN)
	if b.Pawns(board.White).Count() != 8 || b.Pawns(board.Both).Count() != 16 {
		t.Fatalf("start pawns wrong:\n%v", b.Pawns(board.Both))
	}
	play(t, b, "e2e4")
	if b.Pawns(board.White).Has(board.Sq64(board.E2)) || !b.Pawns(board.White).Has(board.Sq64(board.E4)) {
		t.Fatalf("white pawn mask not updated:\n%v", b.Pawns(board.White))
	}
	play(t, b, "d7d5", "e4d5")
	if b.Pawns(board.Black).Count() != 7 || b.Pawns(board.Both).Count() != 15 {
		t.Fatalf("capture not reflected:\n%v", b.Pawns(board.Both))
	}
}
