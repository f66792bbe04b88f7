// Package diagram renders a board position as an SVG image.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-core/board"
)

// Options control the rendering.
type Options struct {
	SquareSize int        // pixels per square, 48 when zero
	Flip       bool       // draw from Black's side
	Highlight  board.Move // origin and destination are tinted when set
	Coords     bool       // file letters and rank digits along the edges
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a"
	checkTint   = "fill:#e06c5a"
)

// Render writes an SVG diagram of b to w.
func Render(w io.Writer, b *board.Board, opts Options) {
	size := opts.SquareSize
	if size <= 0 {
		size = 48
	}
	margin := 0
	if opts.Coords {
		margin = size / 2
	}
	side := 8*size + 2*margin

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Title(b.FEN())

	inCheck := board.NoSquare
	if b.InCheck() {
		inCheck = b.KingSquare(b.Side())
	}

	canvas.Gid("squares")
	for rank := board.Rank1; rank <= board.Rank8; rank++ {
		for file := board.FileA; file <= board.FileH; file++ {
			sq := board.FileRankToSquare(file, rank)
			x, y := origin(file, rank, size, margin, opts.Flip)
			style := lightSquare
			if (file+rank)%2 == 0 {
				style = darkSquare
			}
			if opts.Highlight != board.NoMove && (sq == opts.Highlight.From() || sq == opts.Highlight.To()) {
				style = highlight
			}
			if sq == inCheck {
				style = checkTint
			}
			canvas.Rect(x, y, size, size, style)
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	font := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx", size*3/5)
	for rank := board.Rank1; rank <= board.Rank8; rank++ {
		for file := board.FileA; file <= board.FileH; file++ {
			p := b.PieceAt(board.FileRankToSquare(file, rank))
			if p == board.Empty {
				continue
			}
			x, y := origin(file, rank, size, margin, opts.Flip)
			fill := "fill:#ffffff;stroke:#000000;stroke-width:1"
			if p.Color() == board.Black {
				fill = "fill:#000000"
			}
			canvas.Text(x+size/2, y+size*7/10, string(p.Char()), font+";"+fill)
		}
	}
	canvas.Gend()

	if opts.Coords {
		label := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:#555555", size/3)
		for i := 0; i < 8; i++ {
			fx, _ := origin(i, board.Rank1, size, margin, opts.Flip)
			canvas.Text(fx+size/2, side-margin/4, string(rune('a'+i)), label)
			_, ry := origin(board.FileA, i, size, margin, opts.Flip)
			canvas.Text(margin/2, ry+size*6/10, string(rune('1'+i)), label)
		}
	}
	canvas.End()
}

// origin returns the top-left pixel of a square.
func origin(file, rank, size, margin int, flip bool) (int, int) {
	col, row := file, board.Rank8-rank
	if flip {
		col, row = board.FileH-file, rank
	}
	return margin + col*size, margin + row*size
}
