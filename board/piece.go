package board

// Piece is the content of a board cell.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	// OffBoard fills every sentinel cell of the padded board. It is never a
	// piece and never appears on a playable square.
	OffBoard
)

// numPieces counts Empty plus the twelve real pieces.
const numPieces = 13

// Color is a side. Both is used for Empty and for the combined pawn bitboard.
type Color uint8

const (
	White Color = iota
	Black
	Both
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "both"
	}
}

// Attribute tables, indexed by Piece. OffBoard has an entry so that attack
// scans may look a sentinel up without a separate bounds test.
var (
	pieceColor = [numPieces + 1]Color{Both, White, White, White, White, White, White,
		Black, Black, Black, Black, Black, Black, Both}
	pieceValue = [numPieces + 1]int{0, 100, 325, 325, 550, 1000, 50000,
		100, 325, 325, 550, 1000, 50000, 0}
	pieceBig = [numPieces + 1]bool{false, false, true, true, true, true, true,
		false, true, true, true, true, true, false}
	pieceMajor = [numPieces + 1]bool{false, false, false, false, true, true, true,
		false, false, false, true, true, true, false}
	pieceMinor = [numPieces + 1]bool{false, false, true, true, false, false, false,
		false, true, true, false, false, false, false}
	pieceSlides = [numPieces + 1]bool{false, false, false, true, true, true, false,
		false, false, true, true, true, false, false}
	pieceIsPawn = [numPieces + 1]bool{false, true, false, false, false, false, false,
		true, false, false, false, false, false, false}
	pieceIsKnight = [numPieces + 1]bool{false, false, true, false, false, false, false,
		false, true, false, false, false, false, false}
	pieceIsKing = [numPieces + 1]bool{false, false, false, false, false, false, true,
		false, false, false, false, false, true, false}
	pieceBishopQueen = [numPieces + 1]bool{false, false, false, true, false, true, false,
		false, false, true, false, true, false, false}
	pieceRookQueen = [numPieces + 1]bool{false, false, false, false, true, true, false,
		false, false, false, true, true, false, false}
)

// Direction vectors on the padded board.
var (
	knightDir = [8]Square{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDir   = [4]Square{-1, -10, 1, 10}
	bishopDir = [4]Square{-9, -11, 11, 9}
	kingDir   = [8]Square{-1, -10, 1, 10, -9, -11, 11, 9}
)

var pieceDir = [numPieces][8]Square{
	{},
	{},
	knightDir,
	{-9, -11, 11, 9},
	{-1, -10, 1, 10},
	kingDir,
	kingDir,
	{},
	knightDir,
	{-9, -11, 11, 9},
	{-1, -10, 1, 10},
	kingDir,
	kingDir,
}

var numDir = [numPieces]int{0, 0, 8, 4, 4, 8, 8, 0, 8, 4, 4, 8, 8}

// Generation order per side: sliders, then knight and king.
var (
	slidePieces    = [2][3]Piece{{WhiteBishop, WhiteRook, WhiteQueen}, {BlackBishop, BlackRook, BlackQueen}}
	nonSlidePieces = [2][2]Piece{{WhiteKnight, WhiteKing}, {BlackKnight, BlackKing}}
	promotionOrder = [2][4]Piece{{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}, {BlackQueen, BlackRook, BlackBishop, BlackKnight}}
	pawnOf         = [2]Piece{WhitePawn, BlackPawn}
	kingOf         = [2]Piece{WhiteKing, BlackKing}
)

// Valid reports whether p is one of the twelve real pieces.
func (p Piece) Valid() bool { return p >= WhitePawn && p <= BlackKing }

// Color returns the owner of p, or Both for Empty and OffBoard.
func (p Piece) Color() Color { return pieceColor[p] }

// Value is the material value used for the running material sums.
func (p Piece) Value() int { return pieceValue[p] }

// IsBig reports whether p is anything but a pawn.
func (p Piece) IsBig() bool { return pieceBig[p] }

// IsMajor reports rook, queen or king.
func (p Piece) IsMajor() bool { return pieceMajor[p] }

// IsMinor reports knight or bishop.
func (p Piece) IsMinor() bool { return pieceMinor[p] }

// Slides reports bishop, rook or queen.
func (p Piece) Slides() bool { return pieceSlides[p] }

func (p Piece) IsPawn() bool { return pieceIsPawn[p] }
func (p Piece) IsKing() bool { return pieceIsKing[p] }

// Directions returns the movement offsets of p on the padded board.
func (p Piece) Directions() []Square {
	if p > BlackKing {
		return nil
	}
	return pieceDir[p][:numDir[p]]
}

const pieceChars = ".PNBRQKpnbrqk"

// Char returns the FEN letter of p, '.' for Empty.
func (p Piece) Char() byte {
	if p > BlackKing {
		return ' '
	}
	return pieceChars[p]
}

func (p Piece) String() string { return string(p.Char()) }

// pieceFromChar converts a FEN letter, returning Empty when it is not a piece.
func pieceFromChar(ch byte) Piece {
	for i := 1; i < len(pieceChars); i++ {
		if pieceChars[i] == ch {
			return Piece(i)
		}
	}
	return Empty
}
