package board

import "fmt"

// Validate recomputes every derived field from the cell array and compares it
// with the incrementally maintained state. It returns an *InvariantError for
// the first mismatch and nil when the board is consistent.
func (b *Board) Validate() error {
	var (
		count    [numPieces]int
		big      [2]int
		major    [2]int
		minor    [2]int
		material [2]int
		pawns    [3]Bitboard
	)

	for sq := Square(0); sq < NumCells; sq++ {
		p := b.cells[sq]
		if !sq.OnBoard() {
			if p != OffBoard {
				return &InvariantError{Check: "sentinel", Detail: fmt.Sprintf("cell %d holds %d", int(sq), p)}
			}
			continue
		}
		if p == Empty {
			continue
		}
		if !p.Valid() {
			return &InvariantError{Check: "cells", Detail: fmt.Sprintf("%v holds invalid piece %d", sq, p)}
		}
		col := pieceColor[p]
		count[p]++
		material[col] += pieceValue[p]
		if pieceBig[p] {
			big[col]++
			if pieceMajor[p] {
				major[col]++
			}
			if pieceMinor[p] {
				minor[col]++
			}
		} else {
			pawns[col].Set(sq120To64[sq])
			pawns[Both].Set(sq120To64[sq])
		}
	}

	for p := WhitePawn; p <= BlackKing; p++ {
		if count[p] != b.pieceCount[p] {
			return &InvariantError{Check: "piece count", Detail: fmt.Sprintf("%v: cells %d, cached %d", p, count[p], b.pieceCount[p])}
		}
		for i := 0; i < b.pieceCount[p]; i++ {
			sq := b.pieceList[p][i]
			if !sq.OnBoard() || b.cells[sq] != p {
				return &InvariantError{Check: "piece list", Detail: fmt.Sprintf("%v listed on %v", p, sq)}
			}
		}
	}

	for _, c := range [2]Color{White, Black} {
		switch {
		case material[c] != b.material[c]:
			return &InvariantError{Check: "material", Detail: fmt.Sprintf("%v: cells %d, cached %d", c, material[c], b.material[c])}
		case big[c] != b.bigPieces[c]:
			return &InvariantError{Check: "big pieces", Detail: fmt.Sprintf("%v: cells %d, cached %d", c, big[c], b.bigPieces[c])}
		case major[c] != b.majorPieces[c]:
			return &InvariantError{Check: "major pieces", Detail: fmt.Sprintf("%v: cells %d, cached %d", c, major[c], b.majorPieces[c])}
		case minor[c] != b.minorPieces[c]:
			return &InvariantError{Check: "minor pieces", Detail: fmt.Sprintf("%v: cells %d, cached %d", c, minor[c], b.minorPieces[c])}
		}
		if b.cells[b.kingSquare[c]] != kingOf[c] {
			return &InvariantError{Check: "king square", Detail: fmt.Sprintf("%v king cached on %v", c, b.kingSquare[c])}
		}
	}

	for c := range pawns {
		if pawns[c] != b.pawns[c] {
			return &InvariantError{Check: "pawn bitboard", Detail: fmt.Sprintf("%v:\n%vcached:\n%v", Color(c), pawns[c], b.pawns[c])}
		}
	}

	if b.side != White && b.side != Black {
		return &InvariantError{Check: "side", Detail: b.side.String()}
	}
	if b.castling > AllCastling {
		return &InvariantError{Check: "castling", Detail: fmt.Sprintf("mask %d", b.castling)}
	}
	if b.enPassant != NoSquare {
		want := Rank6
		if b.side == Black {
			want = Rank3
		}
		if !b.enPassant.OnBoard() || b.enPassant.Rank() != want {
			return &InvariantError{Check: "en passant", Detail: fmt.Sprintf("%v with %v to move", b.enPassant, b.side)}
		}
	}
	if b.historyPly != len(b.history) {
		return &InvariantError{Check: "history", Detail: fmt.Sprintf("historyPly %d, stack %d", b.historyPly, len(b.history))}
	}
	if key := b.ComputeKey(); key != b.key {
		return &InvariantError{Check: "hash key", Detail: fmt.Sprintf("computed %016x, cached %016x", key, b.key)}
	}
	return nil
}

// MustValidate panics with the Validate error, if any.
func (b *Board) MustValidate() {
	if err := b.Validate(); err != nil {
		panic(err)
	}
}
