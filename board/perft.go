package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	// Prepare a small pool of per-depth buffers
	pc := perftCtx{bufs: make([]MoveList, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs []MoveList
}

func (pc *perftCtx) bufFor(depth int) MoveList {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make(MoveList, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := b.GenerateMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	for _, sm := range moves {
		if b.MakeMove(sm.Move) {
			nodes += perftRec(b, depth-1, pc)
			b.UndoMove()
		}
	}
	return nodes
}

// PerftDivide returns the leaf count below each legal root move. Useful for
// locating a generator bug by comparing against a reference engine.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, sm := range b.GenerateMoves() {
		if b.MakeMove(sm.Move) {
			result[sm.Move] = Perft(b, depth-1)
			b.UndoMove()
		}
	}
	return result
}
