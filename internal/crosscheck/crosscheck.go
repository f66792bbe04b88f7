// Package crosscheck walks the legal move tree of a position with both the
// board package and dragontoothmg, and reports the first node where the two
// generators disagree.
package crosscheck

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/board"
)

// Mismatch describes a node whose legal move sets differ.
type Mismatch struct {
	FEN     string
	Path    []string // moves from the root
	Missing []string // generated by the reference only
	Extra   []string // generated by board only
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("%s (after %s): missing %v, extra %v",
		m.FEN, strings.Join(m.Path, " "), m.Missing, m.Extra)
}

// Report summarises a walk.
type Report struct {
	Nodes    uint64 // leaf nodes visited, equal to perft when no mismatch
	Mismatch *Mismatch
}

// Compare walks both trees to depth from fen.
func Compare(fen string, depth int) (*Report, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	ref := dragontoothmg.ParseFen(b.FEN())
	w := walker{ours: b, ref: &ref, report: &Report{}}
	w.walk(depth)
	return w.report, nil
}

type walker struct {
	ours   *board.Board
	ref    *dragontoothmg.Board
	path   []string
	report *Report
}

func (w *walker) walk(depth int) {
	if w.report.Mismatch != nil {
		return
	}
	if depth == 0 {
		w.report.Nodes++
		return
	}

	ours := make(map[string]board.Move)
	for _, m := range w.ours.LegalMoves() {
		ours[m.String()] = m
	}
	theirs := make(map[string]dragontoothmg.Move)
	for _, m := range w.ref.GenerateLegalMoves() {
		m := m
		theirs[strings.ToLower(m.String())] = m
	}

	if missing, extra := diff(theirs, ours); len(missing) > 0 || len(extra) > 0 {
		w.report.Mismatch = &Mismatch{
			FEN:     w.ours.FEN(),
			Path:    slices.Clone(w.path),
			Missing: missing,
			Extra:   extra,
		}
		return
	}

	keys := maps.Keys(ours)
	slices.Sort(keys)
	for _, text := range keys {
		if !w.ours.MakeMove(ours[text]) {
			panic("crosscheck: legal move rejected: " + text)
		}
		undo := w.ref.Apply(theirs[text])
		w.path = append(w.path, text)

		w.walk(depth - 1)

		w.path = w.path[:len(w.path)-1]
		undo()
		w.ours.UndoMove()
		if w.report.Mismatch != nil {
			return
		}
	}
}

// diff returns the sorted keys present only in ref, then only in ours.
func diff[A, B any](ref map[string]A, ours map[string]B) (missing, extra []string) {
	for k := range ref {
		if _, ok := ours[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range ours {
		if _, ok := ref[k]; !ok {
			extra = append(extra, k)
		}
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}

// LegalMoves returns the sorted coordinate strings dragontoothmg generates for
// fen, for callers that only need a one-node comparison.
func LegalMoves(fen string) ([]string, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	ref := dragontoothmg.ParseFen(b.FEN())
	var out []string
	for _, m := range ref.GenerateLegalMoves() {
		m := m
		out = append(out, strings.ToLower(m.String()))
	}
	slices.Sort(out)
	return out, nil
}
