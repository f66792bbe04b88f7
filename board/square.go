// Package board implements a mailbox chess position: a padded 10x12 cell
// array with piece lists, pawn bitboards and an incrementally maintained
// Zobrist key, together with pseudo-legal move generation and a reversible
// make/undo protocol.
package board

import "fmt"

// Square indexes the padded 120-cell board. Playable squares run from A1 (21)
// to H8 (98); everything else is a sentinel cell that always holds OffBoard.
type Square int

// Playable squares.
const (
	A1 Square = 21 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = 31 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = 41 + iota
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = 51 + iota
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = 61 + iota
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = 71 + iota
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = 81 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = 91 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare marks an absent en-passant target or king.
const NoSquare Square = 99

// NumCells is the size of the padded board.
const NumCells = 120

// Files and ranks, zero based. FileNone/RankNone are stored for sentinel cells.
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// offBoard64 is the dense index stored for every sentinel cell.
const offBoard64 = 65

var (
	sq120To64 [NumCells]int
	sq64To120 [64]Square
	fileOf    [NumCells]int
	rankOf    [NumCells]int
)

func init() {
	for i := range sq120To64 {
		sq120To64[i] = offBoard64
		fileOf[i] = FileNone
		rankOf[i] = RankNone
	}
	sq64 := 0
	for rank := Rank1; rank <= Rank8; rank++ {
		for file := FileA; file <= FileH; file++ {
			sq := FileRankToSquare(file, rank)
			sq64To120[sq64] = sq
			sq120To64[sq] = sq64
			fileOf[sq] = file
			rankOf[sq] = rank
			sq64++
		}
	}
}

// FileRankToSquare converts zero-based file and rank to a padded square.
func FileRankToSquare(file, rank int) Square { return Square(21 + file + 10*rank) }

// Sq64 returns the dense 0..63 index of a playable square, or 65 for sentinels.
func Sq64(sq Square) int { return sq120To64[sq] }

// Sq120 returns the padded square for a dense index.
func Sq120(i int) Square { return sq64To120[i] }

// OnBoard reports whether sq is a playable square.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq < NumCells && sq120To64[sq] != offBoard64
}

// File returns the zero-based file, or FileNone for sentinel cells.
func (sq Square) File() int { return fileOf[sq] }

// Rank returns the zero-based rank, or RankNone for sentinel cells.
func (sq Square) Rank() int { return rankOf[sq] }

// String returns the coordinate name ("e4"), "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	if !sq.OnBoard() {
		return fmt.Sprintf("sq(%d)", int(sq))
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare parses a coordinate such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return FileRankToSquare(int(file-'a'), int(rank-'1')), nil
}
