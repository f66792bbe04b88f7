package board_test

import (
	"errors"
	"testing"

	"chess-core/board"
)

func TestSquareMapping(t *testing.T) {
	if got := board.FileRankToSquare(board.FileA, board.Rank1); got != board.A1 {
		t.Fatalf("a1: got %d", got)
	}
	if board.A1 != 21 {
		t.Fatalf("A1 = %d, want 21", board.A1)
	}
	if got := board.FileRankToSquare(board.FileH, board.Rank8); got != board.H8 {
		t.Fatalf("h8: got %d", got)
	}
	if board.H8 != 98 {
		t.Fatalf("H8 = %d, want 98", board.H8)
	}
	seen := make(map[board.Square]bool)
	for i := 0; i < 64; i++ {
		sq := board.Sq120(i)
		if !sq.OnBoard() {
			t.Fatalf("Sq120(%d) = %d is off the board", i, sq)
		}
		if board.Sq64(sq) != i {
			t.Fatalf("Sq64(Sq120(%d)) = %d", i, board.Sq64(sq))
		}
		if seen[sq] {
			t.Fatalf("Sq120(%d) = %v repeated", i, sq)
		}
		seen[sq] = true
	}
	for sq := board.Square(0); sq < board.NumCells; sq++ {
		if sq.OnBoard() != seen[sq] {
			t.Fatalf("OnBoard(%d) = %v", sq, sq.OnBoard())
		}
		if !sq.OnBoard() && board.Sq64(sq) != 65 {
			t.Fatalf("Sq64(%d) = %d, want 65", sq, board.Sq64(sq))
		}
	}
	if board.NoSquare.OnBoard() {
		t.Fatalf("NoSquare reported on board")
	}
}

func TestSquareString(t *testing.T) {
	cases := map[board.Square]string{
		board.A1:       "a1",
		board.E4:       "e4",
		board.H8:       "h8",
		board.NoSquare: "-",
	}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sq, got, want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquare("e4")
	if err != nil || sq != board.E4 {
		t.Fatalf("ParseSquare(e4) = %v, %v", sq, err)
	}
	for _, bad := range []string{"", "e", "e44", "i1", "a9", "E4"} {
		if _, err := board.ParseSquare(bad); !errors.Is(err, board.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestPieceAttributes(t *testing.T) {
	if board.WhiteQueen.Color() != board.White || board.BlackKnight.Color() != board.Black {
		t.Fatalf("colors wrong")
	}
	if board.Empty.Color() != board.Both {
		t.Fatalf("Empty colour = %v", board.Empty.Color())
	}
	if !board.WhiteRook.IsMajor() || board.WhiteRook.IsMinor() || !board.WhiteRook.IsBig() {
		t.Fatalf("rook classification wrong")
	}
	if board.BlackPawn.IsBig() {
		t.Fatalf("pawn counted as big")
	}
	if got := len(board.WhiteKing.Directions()); got != 8 {
		t.Fatalf("king directions = %d", got)
	}
	if got := len(board.BlackBishop.Directions()); got != 4 {
		t.Fatalf("bishop directions = %d", got)
	}
	if board.WhitePawn.Value() != 100 || board.BlackQueen.Value() != 1000 {
		t.Fatalf("values wrong")
	}
}
