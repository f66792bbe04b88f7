package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/board"
	"chess-core/internal/crosscheck"
	"chess-core/internal/perftcache"
	"chess-core/internal/perftsuite"
)

// usageError marks failures caused by bad flags or input; they exit with 2.
type usageError struct{ error }

func main() {
	log.SetFlags(0)
	log.SetPrefix("perft: ")

	if err := run(os.Args[1:]); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			log.Print(ue.error)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fen := fs.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := fs.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := fs.Bool("divide", false, "Print per-move node counts at root")
	repeat := fs.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := fs.String("label", "", "Optional label prefix for one-line output")
	suite := fs.String("suite", "", "Run every position of an EPD perft suite and check the expected counts")
	verify := fs.Bool("verify", false, "Walk the tree alongside dragontoothmg and report the first disagreement")
	cacheDir := fs.String("cache", "", "Directory of a perft result cache")
	workers := fs.Int("workers", 1, "Split root moves across N goroutines")
	cpuProf := fs.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := fs.String("memprofile", "", "Write heap profile to file after run")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}

	if *suite != "" {
		return runSuite(*suite, *depth, *workers)
	}

	if *depth <= 0 {
		return usageError{errors.New("-depth must be > 0")}
	}
	if *repeat < 1 {
		return usageError{errors.New("-repeat must be > 0")}
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		return usageError{fmt.Errorf("ParseFEN error: %w", err)}
	}

	if *verify {
		r, err := crosscheck.Compare(*fen, *depth)
		if err != nil {
			return err
		}
		if r.Mismatch != nil {
			return fmt.Errorf("mismatch at %v", r.Mismatch)
		}
		fmt.Printf("verified %d nodes at depth %d\n", r.Nodes, *depth)
		return nil
	}

	var cache *perftcache.Cache
	if *cacheDir != "" {
		cache, err = perftcache.Open(*cacheDir, log.Default())
		if err != nil {
			return err
		}
		defer func() {
			if err := cache.Close(); err != nil {
				log.Printf("closing cache: %v", err)
			}
		}()
	}

	if *divide {
		div, err := cachedDivide(cache, b, *depth, *workers)
		if err != nil {
			return err
		}
		printDivide(div)
		return nil
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			return usageError{fmt.Errorf("creating cpuprofile: %w", err)}
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return usageError{fmt.Errorf("start cpu profile: %w", err)}
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += parallelPerft(b, *depth, *workers)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if cache != nil {
		r := perftcache.Result{Nodes: totalNodes / uint64(*repeat), Elapsed: elapsed / time.Duration(*repeat)}
		if err := cache.Put(*fen, *depth, r); err != nil {
			return err
		}
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			return usageError{fmt.Errorf("creating memprofile: %w", err)}
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
	}
	return nil
}

// parallelPerft counts leaves, handing root moves to workers clones of b.
func parallelPerft(b *board.Board, depth, workers int) uint64 {
	if workers <= 1 || depth < 2 {
		return board.Perft(b, depth)
	}
	var total uint64
	for _, n := range parallelDivide(b, depth, workers) {
		total += n
	}
	return total
}

func parallelDivide(b *board.Board, depth, workers int) map[board.Move]uint64 {
	if workers <= 1 {
		return board.PerftDivide(b, depth)
	}
	root := b.LegalMoves()
	jobs := make(chan board.Move)
	out := make(map[board.Move]uint64, len(root))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(local *board.Board) {
			defer wg.Done()
			for m := range jobs {
				if !local.MakeMove(m) {
					continue
				}
				n := board.Perft(local, depth-1)
				local.UndoMove()
				mu.Lock()
				out[m] = n
				mu.Unlock()
			}
		}(b.Clone())
	}
	for _, m := range root {
		jobs <- m
	}
	close(jobs)
	wg.Wait()
	return out
}

// cachedDivide returns the root split, reading and filling cache when set.
func cachedDivide(cache *perftcache.Cache, b *board.Board, depth, workers int) (map[string]uint64, error) {
	fen := b.FEN()
	if cache != nil {
		r, ok, err := cache.Get(fen, depth)
		if err != nil {
			return nil, err
		}
		if ok && r.Divide != nil {
			log.Printf("cached result from %s", r.Recorded.Format(time.RFC3339))
			return r.Divide, nil
		}
	}

	start := time.Now()
	div := make(map[string]uint64)
	var total uint64
	for m, n := range parallelDivide(b, depth, workers) {
		div[m.String()] = n
		total += n
	}
	if cache != nil {
		r := perftcache.Result{Nodes: total, Divide: div, Elapsed: time.Since(start)}
		if err := cache.Put(fen, depth, r); err != nil {
			return nil, err
		}
	}
	return div, nil
}

func printDivide(div map[string]uint64) {
	moves := maps.Keys(div)
	slices.Sort(moves)
	var sum uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, div[m])
		sum += div[m]
	}
	fmt.Printf("Total: %d\n", sum)
}

// runSuite checks every entry of an EPD file. A positive maxDepth caps the
// depths that are run.
func runSuite(path string, maxDepth, workers int) error {
	entries, err := perftsuite.ParseFile(path)
	if err != nil {
		return err
	}
	failed := 0
	start := time.Now()
	for _, e := range entries {
		b, err := board.ParseFEN(e.FEN)
		if err != nil {
			return fmt.Errorf("line %d: %w", e.Line, err)
		}
		var results []string
		for _, d := range e.SortedDepths() {
			if maxDepth > 0 && d > maxDepth {
				break
			}
			got := parallelPerft(b, d, workers)
			if want := e.Depths[d]; got != want {
				failed++
				results = append(results, fmt.Sprintf("D%d FAIL %d != %d", d, got, want))
				continue
			}
			results = append(results, fmt.Sprintf("D%d ok", d))
		}
		fmt.Printf("%4d %s\n     %s\n", e.Line, e.FEN, strings.Join(results, "  "))
	}
	fmt.Printf("%d positions, %d failures, %s\n", len(entries), failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		return fmt.Errorf("%d perft counts differ", failed)
	}
	return nil
}
