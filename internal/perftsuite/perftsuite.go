// Package perftsuite reads perft test suites in the common EPD layout:
//
//	rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400
//
// Blank lines and lines starting with '#' are skipped.
package perftsuite

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is one position with its expected node counts.
type Entry struct {
	Line   int
	FEN    string
	Depths map[int]uint64
}

// MaxDepth returns the deepest depth with an expected count.
func (e Entry) MaxDepth() int {
	deepest := 0
	for d := range e.Depths {
		if d > deepest {
			deepest = d
		}
	}
	return deepest
}

// SortedDepths returns the depths in ascending order.
func (e Entry) SortedDepths() []int {
	ds := maps.Keys(e.Depths)
	slices.Sort(ds)
	return ds
}

// Parse reads a suite. Errors name the offending line.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("perftsuite: line %d: %w", lineNo, err)
		}
		e.Line = lineNo
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("perftsuite: %w", err)
	}
	return entries, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(line string) (Entry, error) {
	parts := strings.Split(line, ";")
	e := Entry{FEN: strings.TrimSpace(parts[0]), Depths: make(map[int]uint64)}
	if e.FEN == "" {
		return e, errors.New("missing FEN")
	}
	if len(parts) < 2 {
		return e, errors.New("no depth counts")
	}
	for _, p := range parts[1:] {
		fields := strings.Fields(p)
		if len(fields) != 2 || len(fields[0]) < 2 || (fields[0][0] != 'D' && fields[0][0] != 'd') {
			return e, fmt.Errorf("malformed depth field %q", strings.TrimSpace(p))
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil || depth < 1 {
			return e, fmt.Errorf("bad depth %q", fields[0])
		}
		nodes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return e, fmt.Errorf("bad node count %q", fields[1])
		}
		if _, dup := e.Depths[depth]; dup {
			return e, fmt.Errorf("depth %d listed twice", depth)
		}
		e.Depths[depth] = nodes
	}
	return e, nil
}
