package board

import "fmt"

// castlePerm masks the castling rights whenever a move starts or ends on the
// square: rook and king home squares clear the rights they guard.
var castlePerm [NumCells]CastlingRights

func init() {
	for i := range castlePerm {
		castlePerm[i] = AllCastling
	}
	castlePerm[A1] = AllCastling &^ CastleWhiteQueen
	castlePerm[E1] = AllCastling &^ (CastleWhiteKing | CastleWhiteQueen)
	castlePerm[H1] = AllCastling &^ CastleWhiteKing
	castlePerm[A8] = AllCastling &^ CastleBlackQueen
	castlePerm[E8] = AllCastling &^ (CastleBlackKing | CastleBlackQueen)
	castlePerm[H8] = AllCastling &^ CastleBlackKing
}

// MakeMove applies the pseudo-legal move m. It returns false, with the board
// restored, when m would leave the mover's king attacked.
func (b *Board) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	side := b.side

	b.history = append(b.history, Undo{
		Move:      m,
		EnPassant: b.enPassant,
		Castling:  b.castling,
		Halfmove:  b.halfmove,
		Fullmove:  b.fullmove,
		Key:       b.key,
	})

	if m.IsEnPassant() {
		if side == White {
			b.clearPiece(to - 10)
		} else {
			b.clearPiece(to + 10)
		}
	} else if m.IsCastle() {
		switch to {
		case C1:
			b.movePiece(A1, D1)
		case G1:
			b.movePiece(H1, F1)
		case C8:
			b.movePiece(A8, D8)
		case G8:
			b.movePiece(H8, F8)
		default:
			panic(fmt.Sprintf("board: castle move %v has no rook", m))
		}
	}

	if b.enPassant != NoSquare {
		b.hashEnPassant()
	}
	b.hashCastle()
	b.castling &= castlePerm[from] & castlePerm[to]
	b.enPassant = NoSquare
	b.hashCastle()

	b.halfmove++
	if captured := m.Captured(); captured != Empty {
		b.clearPiece(to)
		b.halfmove = 0
	}

	if pieceIsPawn[b.cells[from]] {
		b.halfmove = 0
		if m.IsPawnStart() {
			if side == White {
				b.enPassant = from + 10
			} else {
				b.enPassant = from - 10
			}
			b.hashEnPassant()
		}
	}

	b.movePiece(from, to)

	if promoted := m.Promoted(); promoted != Empty {
		b.clearPiece(to)
		b.addPiece(to, promoted)
	}

	if side == Black {
		b.fullmove++
	}
	b.ply++
	b.historyPly++

	b.side = side.Other()
	b.hashSide()

	if SquareAttacked(b.kingSquare[side], b.side, &b.cells) {
		b.UndoMove()
		return false
	}
	return true
}

// UndoMove takes back the last move made with MakeMove. Calling it with an
// empty history, or with a null move on top, is a caller bug and panics.
func (b *Board) UndoMove() {
	u := b.popHistory()
	if u.Move == NoMove {
		panic("board: UndoMove on a null move")
	}
	m := u.Move
	from, to := m.From(), m.To()

	if b.enPassant != NoSquare {
		b.hashEnPassant()
	}
	b.hashCastle()
	b.castling = u.Castling
	b.enPassant = u.EnPassant
	b.halfmove = u.Halfmove
	b.fullmove = u.Fullmove
	if b.enPassant != NoSquare {
		b.hashEnPassant()
	}
	b.hashCastle()

	b.side = b.side.Other()
	b.hashSide()

	if m.IsEnPassant() {
		if b.side == White {
			b.addPiece(to-10, BlackPawn)
		} else {
			b.addPiece(to+10, WhitePawn)
		}
	} else if m.IsCastle() {
		switch to {
		case C1:
			b.movePiece(D1, A1)
		case G1:
			b.movePiece(F1, H1)
		case C8:
			b.movePiece(D8, A8)
		case G8:
			b.movePiece(F8, H8)
		default:
			panic(fmt.Sprintf("board: castle move %v has no rook", m))
		}
	}

	b.movePiece(to, from)

	if captured := m.Captured(); captured != Empty {
		b.addPiece(to, captured)
	}

	if m.Promoted() != Empty {
		b.clearPiece(from)
		b.addPiece(from, pawnOf[b.side])
	}
}

// MakeNullMove passes the turn: the side flips and any en-passant target is
// dropped. The caller must not be in check.
func (b *Board) MakeNullMove() {
	b.history = append(b.history, Undo{
		Move:      NoMove,
		EnPassant: b.enPassant,
		Castling:  b.castling,
		Halfmove:  b.halfmove,
		Fullmove:  b.fullmove,
		Key:       b.key,
	})
	if b.enPassant != NoSquare {
		b.hashEnPassant()
		b.enPassant = NoSquare
	}
	b.ply++
	b.historyPly++
	b.side = b.side.Other()
	b.hashSide()
}

// UndoNullMove takes back MakeNullMove.
func (b *Board) UndoNullMove() {
	u := b.popHistory()
	if u.Move != NoMove {
		panic(fmt.Sprintf("board: UndoNullMove on real move %v", u.Move))
	}
	b.enPassant = u.EnPassant
	if b.enPassant != NoSquare {
		b.hashEnPassant()
	}
	b.side = b.side.Other()
	b.hashSide()
}

func (b *Board) popHistory() Undo {
	n := len(b.history)
	if n == 0 {
		panic(ErrHistoryUnderflow)
	}
	u := b.history[n-1]
	b.history = b.history[:n-1]
	b.historyPly--
	if b.ply > 0 {
		b.ply--
	}
	return u
}
