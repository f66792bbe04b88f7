// Package replay plays recorded games through the board package and checks
// every position against the one notnil/chess derives from the same moves.
package replay

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"

	"chess-core/board"
)

// ErrDiverged reports a ply where the two move engines disagree.
var ErrDiverged = errors.New("replay diverged")

// Result summarises a replayed game.
type Result struct {
	Plies    int
	FinalFEN string
	Outcome  string
}

// Games reads every game of a PGN stream.
func Games(r io.Reader) ([]*chess.Game, error) {
	games, err := chess.GamesFromPGN(r)
	if err != nil {
		return nil, fmt.Errorf("replay: reading PGN: %w", err)
	}
	return games, nil
}

// Replay plays g move by move. Each move is converted to coordinate notation,
// resolved with ParseMove, applied with MakeMove, and the resulting board is
// validated and compared with notnil's position.
func Replay(g *chess.Game) (*Result, error) {
	positions := g.Positions()
	moves := g.Moves()
	if len(positions) != len(moves)+1 {
		return nil, fmt.Errorf("replay: %d positions for %d moves", len(positions), len(moves))
	}

	b, err := board.ParseFEN(positions[0].String())
	if err != nil {
		return nil, fmt.Errorf("replay: start position: %w", err)
	}
	if err := compare(b, positions[0]); err != nil {
		return nil, fmt.Errorf("%w at ply 0: %v", ErrDiverged, err)
	}

	for i, m := range moves {
		text := chess.UCINotation{}.Encode(positions[i], m)
		bm, err := b.ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("%w at ply %d (%s): %v", ErrDiverged, i+1, text, err)
		}
		if !b.MakeMove(bm) {
			return nil, fmt.Errorf("%w at ply %d (%s): move rejected", ErrDiverged, i+1, text)
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("replay: ply %d (%s): %w", i+1, text, err)
		}
		if err := compare(b, positions[i+1]); err != nil {
			return nil, fmt.Errorf("%w at ply %d (%s): %v", ErrDiverged, i+1, text, err)
		}
	}

	return &Result{
		Plies:    len(moves),
		FinalFEN: b.FEN(),
		Outcome:  string(g.Outcome()),
	}, nil
}

func compare(b *board.Board, pos *chess.Position) error {
	ours := strings.Fields(b.FEN())
	if want := pos.Board().String(); ours[0] != want {
		return fmt.Errorf("placement %s, want %s", ours[0], want)
	}
	side := board.White
	if pos.Turn() == chess.Black {
		side = board.Black
	}
	if b.Side() != side {
		return fmt.Errorf("side %v, want %v", b.Side(), side)
	}
	if want := pos.CastleRights().String(); ours[2] != want {
		return fmt.Errorf("castling %s, want %s", ours[2], want)
	}
	return nil
}
