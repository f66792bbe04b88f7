package board

// RepetitionCount returns how many earlier positions in the history equal the
// current one. Only positions since the last capture or pawn move, with the
// same side to move, can match.
func (b *Board) RepetitionCount() int {
	n := len(b.history)
	limit := n - b.halfmove
	if limit < 0 {
		limit = 0
	}
	count := 0
	for i := n - 2; i >= limit; i -= 2 {
		if b.history[i].Key == b.key {
			count++
		}
	}
	return count
}

// IsRepetition reports whether the current position occurred before.
func (b *Board) IsRepetition() bool { return b.RepetitionCount() >= 1 }

// IsThreefoldRepetition reports a position seen for the third time.
func (b *Board) IsThreefoldRepetition() bool { return b.RepetitionCount() >= 2 }

// IsFiftyMoveDraw reports that a hundred plies passed without a capture or
// pawn move.
func (b *Board) IsFiftyMoveDraw() bool { return b.halfmove >= 100 }

// IsCheckmate reports that the side to move is in check with no legal move.
func (b *Board) IsCheckmate() bool { return b.InCheck() && !b.HasLegalMove() }

// IsStalemate reports that the side to move is not in check but cannot move.
func (b *Board) IsStalemate() bool { return !b.InCheck() && !b.HasLegalMove() }

// InsufficientMaterial reports a bare-king ending or king and one minor piece
// against a bare king.
func (b *Board) InsufficientMaterial() bool {
	if b.pawns[Both] != 0 {
		return false
	}
	for _, c := range [2]Color{White, Black} {
		if b.majorPieces[c] > 1 {
			return false
		}
	}
	return b.minorPieces[White]+b.minorPieces[Black] <= 1
}
