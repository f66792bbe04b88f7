package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// CastlingRights is a 4-bit mask of the remaining castling options.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	NoCastling  CastlingRights = 0
	AllCastling                = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if cr&CastleWhiteKing != 0 {
		sb.WriteByte('K')
	}
	if cr&CastleWhiteQueen != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastleBlackKing != 0 {
		sb.WriteByte('k')
	}
	if cr&CastleBlackQueen != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// maxPieceSlots bounds each piece list: two originals plus eight promotions.
const maxPieceSlots = 10

// Undo is one history entry: the move plus every field make cannot derive
// when reversing it.
type Undo struct {
	Move      Move
	EnPassant Square
	Castling  CastlingRights
	Halfmove  int
	Fullmove  int
	Key       uint64
}

// Board is the mutable game state. All exported methods leave it in a state
// where every invariant checked by Validate holds.
//
// A Board is not safe for concurrent use; give each goroutine its own Clone.
type Board struct {
	cells [NumCells]Piece

	// pawns[White], pawns[Black] and pawns[Both], indexed by dense square
	pawns      [3]Bitboard
	kingSquare [2]Square

	side       Color
	enPassant  Square
	castling   CastlingRights
	halfmove   int
	fullmove   int
	ply        int
	historyPly int

	key uint64

	pieceCount  [numPieces]int
	pieceList   [numPieces][maxPieceSlots]Square
	bigPieces   [2]int
	majorPieces [2]int
	minorPieces [2]int
	material    [2]int

	history []Undo
	hasher  *Hasher
}

// Option configures a new Board.
type Option func(*Board)

// WithHasher makes the board use h instead of the process-wide key table.
func WithHasher(h *Hasher) Option {
	return func(b *Board) { b.hasher = h }
}

// NewBoard returns the standard initial position.
func NewBoard(opts ...Option) *Board {
	b, err := ParseFEN(StartFEN, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func newEmptyBoard(opts ...Option) *Board {
	b := &Board{hasher: defaultHasher}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b
}

// reset clears the board to an empty, unhashed position.
func (b *Board) reset() {
	for i := range b.cells {
		b.cells[i] = OffBoard
	}
	for i := 0; i < 64; i++ {
		b.cells[sq64To120[i]] = Empty
	}
	b.pawns = [3]Bitboard{}
	b.kingSquare = [2]Square{NoSquare, NoSquare}
	b.side = Both
	b.enPassant = NoSquare
	b.castling = NoCastling
	b.halfmove = 0
	b.fullmove = 1
	b.ply = 0
	b.historyPly = 0
	b.key = 0
	b.pieceCount = [numPieces]int{}
	b.bigPieces = [2]int{}
	b.majorPieces = [2]int{}
	b.minorPieces = [2]int{}
	b.material = [2]int{}
	b.history = b.history[:0]
}

// Clone returns an independent deep copy, history included.
func (b *Board) Clone() *Board {
	c := *b
	c.history = slices.Clone(b.history)
	return &c
}

// addPiece puts p on the empty square sq.
func (b *Board) addPiece(sq Square, p Piece) {
	col := pieceColor[p]
	b.hashPiece(p, sq)
	b.cells[sq] = p
	if pieceBig[p] {
		b.bigPieces[col]++
		if pieceMajor[p] {
			b.majorPieces[col]++
		} else {
			b.minorPieces[col]++
		}
	} else {
		b.pawns[col].Set(sq120To64[sq])
		b.pawns[Both].Set(sq120To64[sq])
	}
	if pieceIsKing[p] {
		b.kingSquare[col] = sq
	}
	b.material[col] += pieceValue[p]
	b.pieceList[p][b.pieceCount[p]] = sq
	b.pieceCount[p]++
}

// clearPiece removes whatever piece stands on sq.
func (b *Board) clearPiece(sq Square) {
	p := b.cells[sq]
	if !p.Valid() {
		panic(fmt.Sprintf("board: clearPiece on %v holding %d", sq, p))
	}
	col := pieceColor[p]
	b.hashPiece(p, sq)
	b.cells[sq] = Empty
	b.material[col] -= pieceValue[p]
	if pieceBig[p] {
		b.bigPieces[col]--
		if pieceMajor[p] {
			b.majorPieces[col]--
		} else {
			b.minorPieces[col]--
		}
	} else {
		b.pawns[col].Clear(sq120To64[sq])
		b.pawns[Both].Clear(sq120To64[sq])
	}

	idx := -1
	for i := 0; i < b.pieceCount[p]; i++ {
		if b.pieceList[p][i] == sq {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("board: %v on %v missing from its piece list", p, sq))
	}
	b.pieceCount[p]--
	b.pieceList[p][idx] = b.pieceList[p][b.pieceCount[p]]
}

// movePiece relocates the piece on from to the empty square to.
func (b *Board) movePiece(from, to Square) {
	if !from.OnBoard() || !to.OnBoard() {
		panic(fmt.Sprintf("board: movePiece %d->%d leaves the board", int(from), int(to)))
	}
	p := b.cells[from]
	if !p.Valid() {
		panic(fmt.Sprintf("board: movePiece from empty square %v", from))
	}
	col := pieceColor[p]

	b.hashPiece(p, from)
	b.cells[from] = Empty
	b.hashPiece(p, to)
	b.cells[to] = p

	if !pieceBig[p] {
		b.pawns[col].Move(sq120To64[from], sq120To64[to])
		b.pawns[Both].Move(sq120To64[from], sq120To64[to])
	} else if pieceIsKing[p] {
		b.kingSquare[col] = to
	}

	for i := 0; i < b.pieceCount[p]; i++ {
		if b.pieceList[p][i] == from {
			b.pieceList[p][i] = to
			return
		}
	}
	panic(fmt.Sprintf("board: %v on %v missing from its piece list", p, from))
}

// Side returns the side to move.
func (b *Board) Side() Color { return b.side }

// EnPassant returns the en-passant target square or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// Castling returns the remaining castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// HalfmoveClock counts plies since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber starts at 1 and increments after each Black move.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Ply is the search depth counter; see ResetPly.
func (b *Board) Ply() int { return b.ply }

// ResetPly zeroes the search ply counter, typically at a search root.
func (b *Board) ResetPly() { b.ply = 0 }

// HistoryPly counts moves currently on the history stack.
func (b *Board) HistoryPly() int { return b.historyPly }

// History returns a copy of the history stack, oldest first.
func (b *Board) History() []Undo { return slices.Clone(b.history) }

// Key returns the incrementally maintained Zobrist key.
func (b *Board) Key() uint64 { return b.key }

// Hasher returns the key table this board hashes with.
func (b *Board) Hasher() *Hasher { return b.hasher }

// ComputeKey recomputes the Zobrist key from the raw state.
func (b *Board) ComputeKey() uint64 {
	return b.hasher.GenerateKey(&b.cells, b.side, b.enPassant, b.castling)
}

// PieceAt returns the content of sq (OffBoard for sentinel cells).
func (b *Board) PieceAt(sq Square) Piece { return b.cells[sq] }

// Cells returns a copy of the raw cell array, suitable for SquareAttacked.
func (b *Board) Cells() [NumCells]Piece { return b.cells }

// KingSquare returns the king location of c.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// PieceCount returns how many p are on the board.
func (b *Board) PieceCount(p Piece) int { return b.pieceCount[p] }

// PieceSquares returns the squares holding p, in piece-list order.
func (b *Board) PieceSquares(p Piece) []Square {
	return slices.Clone(b.pieceList[p][:b.pieceCount[p]])
}

// Material returns the running material sum of c, king included.
func (b *Board) Material(c Color) int { return b.material[c] }

// BigPieces counts the non-pawn pieces of c.
func (b *Board) BigPieces(c Color) int { return b.bigPieces[c] }

// MajorPieces counts rooks, queens and the king of c.
func (b *Board) MajorPieces(c Color) int { return b.majorPieces[c] }

// MinorPieces counts knights and bishops of c.
func (b *Board) MinorPieces(c Color) int { return b.minorPieces[c] }

// Pawns returns the pawn bitboard of White, Black or Both.
func (b *Board) Pawns(c Color) Bitboard { return b.pawns[c] }

// String draws the board rank 8 first, one letter per cell and '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			if file > FileA {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.cells[FileRankToSquare(file, rank)].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Describe is String followed by the state fields, for debug front ends.
func (b *Board) Describe() string {
	var sb strings.Builder
	sb.WriteString(b.String())
	fmt.Fprintf(&sb, "side: %s\n", b.side)
	fmt.Fprintf(&sb, "en passant: %s\n", b.enPassant)
	fmt.Fprintf(&sb, "castling: %s\n", b.castling)
	fmt.Fprintf(&sb, "halfmove clock: %d\n", b.halfmove)
	fmt.Fprintf(&sb, "key: %016x\n", b.key)
	return sb.String()
}
