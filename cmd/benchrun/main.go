package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.Printf("error running %s: %v", name, err)
	return 1
}

type perftJob struct {
	label string
	fen   string
	depth int
}

var perftJobs = []perftJob{
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
	{"Position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4},
}

// Runs the bench/ micro benchmarks, then the perft throughput table.
// Usage: go run ./cmd/benchrun [-workers N] [-suite FILE]
func main() {
	log.SetFlags(0)
	log.SetPrefix("benchrun: ")

	workers := flag.Int("workers", 1, "Passed to cmd/perft")
	suite := flag.String("suite", "", "Also run an EPD perft suite")
	skipMicro := flag.Bool("skip-micro", false, "Skip the go test benchmarks")
	flag.Parse()

	if !*skipMicro {
		// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
		fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
		if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
			os.Exit(code)
		}
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, j := range perftJobs {
		args := []string{"run", "./cmd/perft", "-depth", strconv.Itoa(j.depth), "-label", j.label, "-workers", strconv.Itoa(*workers)}
		if j.fen != "" {
			args = append(args, "-fen", j.fen)
		}
		if run("go", args...) != 0 {
			failed++
		}
	}

	if *suite != "" {
		fmt.Println("\nSuite:")
		if run("go", "run", "./cmd/perft", "-suite", *suite, "-workers", strconv.Itoa(*workers)) != 0 {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
