package board

// SquareAttacked reports whether side attacks sq on the raw cell array. It
// reads nothing but cells, so it can check hypothetical positions.
func SquareAttacked(sq Square, side Color, cells *[NumCells]Piece) bool {
	// pawns
	if side == White {
		if cells[sq-11] == WhitePawn || cells[sq-9] == WhitePawn {
			return true
		}
	} else {
		if cells[sq+11] == BlackPawn || cells[sq+9] == BlackPawn {
			return true
		}
	}

	// knights
	for _, d := range knightDir {
		p := cells[sq+d]
		if p != OffBoard && pieceIsKnight[p] && pieceColor[p] == side {
			return true
		}
	}

	// rooks, queens
	for _, d := range rookDir {
		t := sq + d
		p := cells[t]
		for p != OffBoard {
			if p != Empty {
				if pieceRookQueen[p] && pieceColor[p] == side {
					return true
				}
				break
			}
			t += d
			p = cells[t]
		}
	}

	// bishops, queens
	for _, d := range bishopDir {
		t := sq + d
		p := cells[t]
		for p != OffBoard {
			if p != Empty {
				if pieceBishopQueen[p] && pieceColor[p] == side {
					return true
				}
				break
			}
			t += d
			p = cells[t]
		}
	}

	// kings
	for _, d := range kingDir {
		p := cells[sq+d]
		if p == OffBoard {
			continue
		}
		if pieceIsKing[p] && pieceColor[p] == side {
			return true
		}
	}
	return false
}

// SquareAttacked reports whether side attacks sq in the current position.
func (b *Board) SquareAttacked(sq Square, side Color) bool {
	return SquareAttacked(sq, side, &b.cells)
}

// InCheck reports whether the side to move has its king attacked.
func (b *Board) InCheck() bool {
	return SquareAttacked(b.kingSquare[b.side], b.side.Other(), &b.cells)
}
