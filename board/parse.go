package board

import "fmt"

// ParseMove resolves coordinate notation ("e2e4", "e7e8q") against the moves
// available in the current position. Malformed text wraps ErrInvalidMove; a
// well-formed move that is not legal here wraps ErrIllegalMove.
func (b *Board) ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	var promo byte
	if len(text) == 5 {
		promo = text[4] | 0x20
		switch promo {
		case 'q', 'r', 'b', 'n':
		default:
			return NoMove, fmt.Errorf("%w: %q: bad promotion piece", ErrInvalidMove, text)
		}
	}

	for _, sm := range b.GenerateMoves() {
		m := sm.Move
		if m.From() != from || m.To() != to {
			continue
		}
		if p := m.Promoted(); p != Empty {
			if promo == 0 || promotionChar(p) != promo {
				continue
			}
		} else if promo != 0 {
			continue
		}
		if !b.MakeMove(m) {
			return NoMove, fmt.Errorf("%w: %s leaves the king in check", ErrIllegalMove, text)
		}
		b.UndoMove()
		return m, nil
	}
	return NoMove, fmt.Errorf("%w: %s in %s", ErrIllegalMove, text, b.FEN())
}
