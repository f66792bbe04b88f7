package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"chess-core/board"
	"chess-core/internal/diagram"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("diagram: ")

	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	outPath := flag.String("o", "", "Output file (defaults to stdout)")
	size := flag.Int("size", 48, "Square size in pixels")
	flip := flag.Bool("flip", false, "Draw the board from Black's side")
	coords := flag.Bool("coords", false, "Label files and ranks")
	move := flag.String("move", "", "Highlight this move, in coordinate notation")
	flag.Parse()

	b, err := board.ParseFEN(*fen)
	if err != nil {
		log.Printf("ParseFEN error: %v", err)
		os.Exit(2)
	}

	opts := diagram.Options{SquareSize: *size, Flip: *flip, Coords: *coords}
	if *move != "" {
		m, err := b.ParseMove(*move)
		if err != nil {
			log.Printf("-move: %v", err)
			os.Exit(2)
		}
		opts.Highlight = m
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	diagram.Render(bw, b, opts)
	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
}
