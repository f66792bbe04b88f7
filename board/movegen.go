package board

const (
	genAll = iota
	genCaptures
)

// GenerateMoves returns every pseudo-legal move for the side to move, in
// generation order: pawns, sliders, knight and king, castling.
func (b *Board) GenerateMoves() MoveList { return b.GenerateMovesInto(make(MoveList, 0, 64)) }

// GenerateMovesInto appends the pseudo-legal moves to dst, reusing its storage.
func (b *Board) GenerateMovesInto(dst MoveList) MoveList { return b.generate(dst, genAll) }

// GenerateCaptures returns captures only, capture-promotions and en passant
// included.
func (b *Board) GenerateCaptures() MoveList {
	return b.GenerateCapturesInto(make(MoveList, 0, 32))
}

// GenerateCapturesInto appends the pseudo-legal captures to dst.
func (b *Board) GenerateCapturesInto(dst MoveList) MoveList { return b.generate(dst, genCaptures) }

func (b *Board) generate(dst MoveList, filter int) MoveList {
	side := b.side
	quiets := filter == genAll

	// pawns
	pawn := pawnOf[side]
	forward, startRank, lastRank := Square(10), Rank2, Rank7
	if side == Black {
		forward, startRank, lastRank = -10, Rank7, Rank2
	}
	for i := 0; i < b.pieceCount[pawn]; i++ {
		sq := b.pieceList[pawn][i]
		promoting := sq.Rank() == lastRank

		if quiets && b.cells[sq+forward] == Empty {
			dst = b.addPawnMove(dst, sq, sq+forward, Empty, promoting)
			if sq.Rank() == startRank && b.cells[sq+2*forward] == Empty {
				dst = append(dst, ScoredMove{Move: NewMove(sq, sq+2*forward, Empty, Empty, FlagPawnStart)})
			}
		}
		for _, t := range [2]Square{sq + forward - 1, sq + forward + 1} {
			target := b.cells[t]
			if target != OffBoard && pieceColor[target] == side.Other() {
				dst = b.addPawnMove(dst, sq, t, target, promoting)
			}
			if b.enPassant != NoSquare && t == b.enPassant {
				dst = append(dst, ScoredMove{Move: NewMove(sq, t, Empty, Empty, FlagEnPassant)})
			}
		}
	}

	// sliders
	for _, p := range slidePieces[side] {
		for i := 0; i < b.pieceCount[p]; i++ {
			sq := b.pieceList[p][i]
			for _, d := range p.Directions() {
				t := sq + d
				for b.cells[t] != OffBoard {
					target := b.cells[t]
					if target != Empty {
						if pieceColor[target] == side.Other() {
							dst = append(dst, ScoredMove{Move: NewMove(sq, t, target, Empty, 0)})
						}
						break
					}
					if quiets {
						dst = append(dst, ScoredMove{Move: NewMove(sq, t, Empty, Empty, 0)})
					}
					t += d
				}
			}
		}
	}

	// knight, king
	for _, p := range nonSlidePieces[side] {
		for i := 0; i < b.pieceCount[p]; i++ {
			sq := b.pieceList[p][i]
			for _, d := range p.Directions() {
				t := sq + d
				target := b.cells[t]
				if target == OffBoard {
					continue
				}
				if target == Empty {
					if quiets {
						dst = append(dst, ScoredMove{Move: NewMove(sq, t, Empty, Empty, 0)})
					}
				} else if pieceColor[target] == side.Other() {
					dst = append(dst, ScoredMove{Move: NewMove(sq, t, target, Empty, 0)})
				}
			}
		}
	}

	if quiets {
		dst = b.addCastles(dst)
	}
	return dst
}

// addPawnMove appends one move, or four when the pawn reaches the last rank.
func (b *Board) addPawnMove(dst MoveList, from, to Square, captured Piece, promoting bool) MoveList {
	if !promoting {
		return append(dst, ScoredMove{Move: NewMove(from, to, captured, Empty, 0)})
	}
	for _, promo := range promotionOrder[b.side] {
		dst = append(dst, ScoredMove{Move: NewMove(from, to, captured, promo, 0)})
	}
	return dst
}

// castleRoutes describes each castle: the squares that must be empty and the
// squares the king stands on, crosses and lands on.
var castleRoutes = [2][2]struct {
	right  CastlingRights
	from   Square
	to     Square
	empty  []Square
	unsafe [3]Square
	enemy  Color
}{
	{
		{CastleWhiteKing, E1, G1, []Square{F1, G1}, [3]Square{E1, F1, G1}, Black},
		{CastleWhiteQueen, E1, C1, []Square{D1, C1, B1}, [3]Square{E1, D1, C1}, Black},
	},
	{
		{CastleBlackKing, E8, G8, []Square{F8, G8}, [3]Square{E8, F8, G8}, White},
		{CastleBlackQueen, E8, C8, []Square{D8, C8, B8}, [3]Square{E8, D8, C8}, White},
	},
}

func (b *Board) addCastles(dst MoveList) MoveList {
next:
	for _, r := range castleRoutes[b.side] {
		if b.castling&r.right == 0 {
			continue
		}
		for _, sq := range r.empty {
			if b.cells[sq] != Empty {
				continue next
			}
		}
		for _, sq := range r.unsafe {
			if SquareAttacked(sq, r.enemy, &b.cells) {
				continue next
			}
		}
		dst = append(dst, ScoredMove{Move: NewMove(r.from, r.to, Empty, Empty, FlagCastle)})
	}
	return dst
}

// LegalMoves returns the pseudo-legal moves that MakeMove accepts.
func (b *Board) LegalMoves() []Move {
	list := b.GenerateMoves()
	legal := make([]Move, 0, len(list))
	for _, sm := range list {
		if b.MakeMove(sm.Move) {
			b.UndoMove()
			legal = append(legal, sm.Move)
		}
	}
	return legal
}

// MoveExists reports whether m is a legal move in the current position.
func (b *Board) MoveExists(m Move) bool {
	list := b.GenerateMoves()
	if !list.Contains(m) {
		return false
	}
	if !b.MakeMove(m) {
		return false
	}
	b.UndoMove()
	return true
}

// HasLegalMove reports whether the side to move can move at all.
func (b *Board) HasLegalMove() bool {
	for _, sm := range b.GenerateMoves() {
		if b.MakeMove(sm.Move) {
			b.UndoMove()
			return true
		}
	}
	return false
}
