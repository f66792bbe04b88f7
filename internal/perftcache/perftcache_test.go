package perftcache_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"chess-core/board"
	"chess-core/internal/perftcache"
)

func TestKeyIgnoresClocks(t *testing.T) {
	a := perftcache.Key("8/8/8/8/8/8/8/K6k w - - 0 1", 3)
	b := perftcache.Key("8/8/8/8/8/8/8/K6k w - - 12 40", 3)
	if !bytes.Equal(a, b) {
		t.Fatalf("keys differ: %s vs %s", a, b)
	}
	if bytes.Equal(a, perftcache.Key("8/8/8/8/8/8/8/K6k w - - 0 1", 4)) {
		t.Fatalf("depth not part of the key")
	}
	if string(a) != "perft/3/8/8/8/8/8/8/8/K6k w - -" {
		t.Fatalf("key = %s", a)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	c, err := perftcache.Open(t.TempDir(), log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if _, ok, err := c.Get(board.StartFEN, 2); err != nil || ok {
		t.Fatalf("empty cache Get = %v, %v", ok, err)
	}

	b, _ := board.ParseFEN(board.StartFEN)
	div := make(map[string]uint64)
	for m, n := range board.PerftDivide(b, 2) {
		div[m.String()] = n
	}
	want := perftcache.Result{Nodes: board.Perft(b, 2), Divide: div, Elapsed: 3 * time.Millisecond}
	if err := c.Put(board.StartFEN, 2, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(board.StartFEN, 2)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Nodes != 400 || len(got.Divide) != 20 || got.Divide["e2e4"] != 20 || got.Elapsed != want.Elapsed {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.Recorded.IsZero() {
		t.Fatalf("Put did not stamp the record time")
	}
	if n, err := c.Len(); err != nil || n != 1 {
		t.Fatalf("Len = %d, %v", n, err)
	}
}

func TestReopenKeepsResults(t *testing.T) {
	dir := t.TempDir()
	c, err := perftcache.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Put(board.StartFEN, 3, perftcache.Result{Nodes: 8902}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	c, err = perftcache.Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close()
	r, ok, err := c.Get(board.StartFEN, 3)
	if err != nil || !ok || r.Nodes != 8902 {
		t.Fatalf("after reopen: %+v %v %v", r, ok, err)
	}
}

func TestInMemory(t *testing.T) {
	c, err := perftcache.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer c.Close()
	if err := c.Put("8/8/8/8/8/8/8/K6k w - - 0 1", 1, perftcache.Result{Nodes: 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if r, ok, _ := c.Get("8/8/8/8/8/8/8/K6k w - - 5 9", 1); !ok || r.Nodes != 3 {
		t.Fatalf("Get = %+v, %v", r, ok)
	}
}
