package board_test

import (
	"errors"
	"testing"

	"chess-core/board"
)

func TestParseMove(t *testing.T) {
	b := mustParse(t, board.StartFEN)
	m, err := b.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4): %v", err)
	}
	if m.From() != board.E2 || m.To() != board.E4 || !m.IsPawnStart() {
		t.Fatalf("e2e4 resolved to %v (%#x)", m, uint32(m))
	}
	if b.HistoryPly() != 0 {
		t.Fatalf("ParseMove changed the board")
	}

	cases := []struct {
		text string
		want error
	}{
		{"", board.ErrInvalidMove},
		{"e2", board.ErrInvalidMove},
		{"e2e4qq", board.ErrInvalidMove},
		{"z2e4", board.ErrInvalidMove},
		{"e2e9", board.ErrInvalidMove},
		{"e2e4k", board.ErrInvalidMove},
		{"e2e5", board.ErrIllegalMove},
		{"e1e2", board.ErrIllegalMove},
		{"e2e4q", board.ErrIllegalMove},
	}
	for _, tc := range cases {
		if _, err := b.ParseMove(tc.text); !errors.Is(err, tc.want) {
			t.Errorf("ParseMove(%q) error = %v, want %v", tc.text, err, tc.want)
		}
	}
}

func TestParseMovePromotion(t *testing.T) {
	b := mustParse(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	for text, want := range map[string]board.Piece{
		"a7a8q": board.WhiteQueen,
		"a7a8r": board.WhiteRook,
		"a7a8b": board.WhiteBishop,
		"a7a8n": board.WhiteKnight,
		"a7a8N": board.WhiteKnight,
	} {
		m, err := b.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", text, err)
		}
		if m.Promoted() != want {
			t.Fatalf("%s promoted to %v", text, m.Promoted())
		}
	}
	if _, err := b.ParseMove("a7a8"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("promotion without a piece: %v", err)
	}
}

func TestParseMoveRejectsSelfCheck(t *testing.T) {
	b := mustParse(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if _, err := b.ParseMove("e2d3"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("pinned move: %v", err)
	}
	if _, err := b.ParseMove("e1f2"); err != nil {
		t.Fatalf("king move: %v", err)
	}
}

func TestMoveEncoding(t *testing.T) {
	m := board.NewMove(board.E7, board.D8, board.BlackRook, board.WhiteQueen, 0)
	if m.From() != board.E7 || m.To() != board.D8 || m.Captured() != board.BlackRook || m.Promoted() != board.WhiteQueen {
		t.Fatalf("fields lost: %#x", uint32(m))
	}
	if !m.IsCapture() || !m.IsPromotion() || m.IsCastle() || m.IsEnPassant() || m.IsPawnStart() {
		t.Fatalf("flags wrong: %#x", uint32(m))
	}
	if m.String() != "e7d8q" {
		t.Fatalf("String = %s", m)
	}
	// Field layout: from bits 0-6, to 7-13, captured 14-17, promoted 20-23.
	want := uint32(board.E7) | uint32(board.D8)<<7 | uint32(board.BlackRook)<<14 | uint32(board.WhiteQueen)<<20
	if uint32(m) != want {
		t.Fatalf("encoding %#x, want %#x", uint32(m), want)
	}
	c := board.NewMove(board.E1, board.G1, board.Empty, board.Empty, board.FlagCastle)
	if uint32(c)&0x1000000 == 0 || c.IsCapture() {
		t.Fatalf("castle encoding %#x", uint32(c))
	}
	if board.NoMove.String() != "0000" {
		t.Fatalf("NoMove prints %s", board.NoMove)
	}
}
