package board

import (
	"fmt"
	"math/rand"
	"time"
)

// Hasher holds the Zobrist constants for every (piece, square) pair, the side
// to move and each of the 16 castling masks. Row Empty of pieceKeys doubles as
// the en-passant key table. A Hasher is never modified after construction and
// may be shared by any number of boards.
type Hasher struct {
	pieceKeys  [numPieces][NumCells]uint64
	sideKey    uint64
	castleKeys [16]uint64
}

// NewHasher draws all constants from src.
func NewHasher(src rand.Source) *Hasher {
	rnd := rand.New(src)
	h := &Hasher{}
	for p := range h.pieceKeys {
		for sq := range h.pieceKeys[p] {
			h.pieceKeys[p][sq] = rnd.Uint64()
		}
	}
	h.sideKey = rnd.Uint64()
	for cr := range h.castleKeys {
		h.castleKeys[cr] = rnd.Uint64()
	}
	return h
}

// NewSeededHasher returns a reproducible Hasher for tests and tools that
// persist keys.
func NewSeededHasher(seed int64) *Hasher { return NewHasher(rand.NewSource(seed)) }

// defaultHasher is drawn once per process and shared by every board built
// without WithHasher.
var defaultHasher = NewHasher(rand.NewSource(time.Now().UnixNano()))

// DefaultHasher returns the process-wide key table.
func DefaultHasher() *Hasher { return defaultHasher }

// PieceKey returns the constant for p standing on sq.
func (h *Hasher) PieceKey(p Piece, sq Square) uint64 { return h.pieceKeys[p][sq] }

// EnPassantKey returns the constant for an en-passant target on sq.
func (h *Hasher) EnPassantKey(sq Square) uint64 { return h.pieceKeys[Empty][sq] }

// SideKey is folded in while White is to move.
func (h *Hasher) SideKey() uint64 { return h.sideKey }

// CastleKey returns the constant for a castling mask.
func (h *Hasher) CastleKey(cr CastlingRights) uint64 { return h.castleKeys[cr&AllCastling] }

// GenerateKey computes a fingerprint from scratch. Make/undo maintain the same
// value incrementally; the two must always agree.
func (h *Hasher) GenerateKey(cells *[NumCells]Piece, side Color, enPassant Square, castling CastlingRights) uint64 {
	var key uint64
	for sq, p := range cells {
		if p == OffBoard || p == Empty {
			continue
		}
		if !p.Valid() {
			panic(fmt.Sprintf("board: invalid piece %d on cell %d", p, sq))
		}
		key ^= h.pieceKeys[p][sq]
	}
	if side == White {
		key ^= h.sideKey
	}
	if enPassant != NoSquare {
		if !enPassant.OnBoard() {
			panic(fmt.Sprintf("board: en-passant square %d is off the board", int(enPassant)))
		}
		key ^= h.pieceKeys[Empty][enPassant]
	}
	if castling > AllCastling {
		panic(fmt.Sprintf("board: castling mask %d out of range", castling))
	}
	key ^= h.castleKeys[castling]
	return key
}

func (b *Board) hashPiece(p Piece, sq Square) { b.key ^= b.hasher.pieceKeys[p][sq] }
func (b *Board) hashCastle()                  { b.key ^= b.hasher.castleKeys[b.castling] }
func (b *Board) hashSide()                    { b.key ^= b.hasher.sideKey }
func (b *Board) hashEnPassant()               { b.key ^= b.hasher.pieceKeys[Empty][b.enPassant] }
