package board_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"chess-core/board"
)

func moveStrings(ml board.MoveList) []string {
	out := make([]string, len(ml))
	for i, sm := range ml {
		out[i] = sm.Move.String()
	}
	return out
}

func TestStartPositionMoves(t *testing.T) {
	b := mustParse(t, board.StartFEN)
	moves := b.GenerateMoves()
	if len(moves) != 20 {
		t.Fatalf("got %d moves: %v", len(moves), moveStrings(moves))
	}
	var pawns, knights int
	for _, sm := range moves {
		m := sm.Move
		if m.IsCapture() || m.IsCastle() || m.IsPromotion() || m.IsEnPassant() {
			t.Fatalf("unexpected special move %v", m)
		}
		switch b.PieceAt(m.From()) {
		case board.WhitePawn:
			pawns++
		case board.WhiteKnight:
			knights++
		default:
			t.Fatalf("move %v by %v", m, b.PieceAt(m.From()))
		}
		if sm.Score != 0 {
			t.Fatalf("generator set a score on %v", m)
		}
	}
	if pawns != 16 || knights != 4 {
		t.Fatalf("pawns %d knights %d", pawns, knights)
	}
	// Pawns first, double pushes flagged.
	if b.PieceAt(moves[0].Move.From()) != board.WhitePawn {
		t.Fatalf("generation order does not start with pawns: %v", moveStrings(moves))
	}
	double := 0
	for _, sm := range moves {
		if sm.Move.IsPawnStart() {
			double++
		}
	}
	if double != 8 {
		t.Fatalf("pawn-start flags = %d", double)
	}
}

func TestNoDuplicateMoves(t *testing.T) {
	for _, fen := range []string{board.StartFEN, kiwipeteFEN, pos3FEN, pos4FEN, pos5FEN} {
		moves := mustParse(t, fen).GenerateMoves().Moves()
		sorted := slices.Clone(moves)
		slices.Sort(sorted)
		if len(slices.Compact(sorted)) != len(moves) {
			t.Errorf("%s: duplicate moves in %v", fen, moves)
		}
	}
}

func TestPromotionsGeneratedInOrder(t *testing.T) {
	b := mustParse(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	var promos []string
	for _, sm := range b.GenerateMoves() {
		if sm.Move.IsPromotion() {
			promos = append(promos, sm.Move.String())
		}
	}
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"}
	if !slices.Equal(promos, want) {
		t.Fatalf("promotions = %v, want %v", promos, want)
	}
}

func TestGenerateCaptures(t *testing.T) {
	b := mustParse(t, "1n6/P7/8/8/8/8/8/k6K w - - 0 1")
	got := moveStrings(b.GenerateCaptures())
	want := []string{"a7b8q", "a7b8r", "a7b8b", "a7b8n"}
	if !slices.Equal(got, want) {
		t.Fatalf("captures = %v, want %v", got, want)
	}

	b = mustParse(t, kiwipeteFEN)
	caps := b.GenerateCaptures()
	for _, sm := range caps {
		if !sm.Move.IsCapture() {
			t.Fatalf("quiet move %v in capture list", sm.Move)
		}
	}
	all := 0
	for _, sm := range b.GenerateMoves() {
		if sm.Move.IsCapture() {
			all++
		}
	}
	if all != len(caps) {
		t.Fatalf("capture generator found %d, full generator %d", len(caps), all)
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	m := findMove(t, b, "e5d6")
	if !m.IsEnPassant() || m.Captured() != board.Empty || !m.IsCapture() {
		t.Fatalf("e5d6 = %#x, want en-passant flag with empty capture", uint32(m))
	}
}

func TestCastlingGeneration(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want []string
	}{
		{"both sides", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", nil},
		{"path blocked", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", nil},
		{"b1 attacked is fine", "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1", []string{"e1c1"}},
		{"crossing square attacked", "5rk1/8/8/8/8/8/8/4K2R w K - 0 1", nil},
		{"destination attacked", "6rk/8/8/8/8/8/8/4K2R w K - 0 1", nil},
		{"in check", "4r1k1/8/8/8/8/8/8/4K2R w K - 0 1", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.fen)
			var got []string
			for _, sm := range b.GenerateMoves() {
				if sm.Move.IsCastle() {
					got = append(got, sm.Move.String())
				}
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("castles = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLegalMovesFilterPins(t *testing.T) {
	b := mustParse(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	legal := b.LegalMoves()
	if len(legal) != 4 {
		t.Fatalf("legal = %v", legal)
	}
	for _, m := range legal {
		if m.From() != board.E1 {
			t.Fatalf("pinned bishop moved: %v", m)
		}
	}
	if b.MoveExists(findMove(t, b, "e2d3")) {
		t.Fatalf("MoveExists accepted a pinned bishop move")
	}
	if !b.MoveExists(findMove(t, b, "e1d1")) {
		t.Fatalf("MoveExists rejected a king move")
	}
	if b.HistoryPly() != 0 {
		t.Fatalf("legality probes left history %d", b.HistoryPly())
	}
}

func TestGenerateMovesIntoReusesBuffer(t *testing.T) {
	b := mustParse(t, kiwipeteFEN)
	buf := make(board.MoveList, 0, 256)
	first := b.GenerateMovesInto(buf)
	again := b.GenerateMovesInto(first[:0])
	if !slices.Equal(first.Moves(), again.Moves()) || &first[0] != &again[0] {
		t.Fatalf("buffer not reused or output changed")
	}
}
