package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"chess-core/internal/replay"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("replay: ")

	pgnPath := flag.String("pgn", "", "PGN file to replay (required)")
	verbose := flag.Bool("v", false, "Print the final position of every game")
	flag.Parse()

	if *pgnPath == "" {
		log.Print("-pgn is required")
		os.Exit(2)
	}

	f, err := os.Open(*pgnPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	games, err := replay.Games(f)
	if err != nil {
		log.Fatal(err)
	}

	failed, plies := 0, 0
	for i, g := range games {
		r, err := replay.Replay(g)
		if err != nil {
			failed++
			log.Printf("game %d: %v", i+1, err)
			continue
		}
		plies += r.Plies
		if *verbose {
			fmt.Printf("game %d: %d plies, %s, %s\n", i+1, r.Plies, r.Outcome, r.FinalFEN)
		}
	}
	fmt.Printf("%d games, %d plies replayed, %d failed\n", len(games), plies, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
