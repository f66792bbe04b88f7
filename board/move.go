package board

import "strings"

// Move packs a move into a single integer.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 7 bits
	moveToShift      = 7  // 7 bits
	moveCaptureShift = 14 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveSquareMask   = 0x7F
	movePieceMask    = 0xF
)

// Move flags and field masks.
const (
	FlagEnPassant = 0x40000
	FlagPawnStart = 0x80000
	FlagCastle    = 0x1000000
	CaptureMask   = 0x7C000
	PromotionMask = 0xF00000
	moveFlagMask  = FlagEnPassant | FlagPawnStart | FlagCastle
)

// NoMove is the zero move, also stored in history for null moves.
const NoMove Move = 0

// NewMove constructs a Move from its components. flags is any combination of
// FlagEnPassant, FlagPawnStart and FlagCastle.
func NewMove(from, to Square, captured, promoted Piece, flags uint32) Move {
	return Move(uint32(from)&moveSquareMask |
		(uint32(to)&moveSquareMask)<<moveToShift |
		(uint32(captured)&movePieceMask)<<moveCaptureShift |
		(uint32(promoted)&movePieceMask)<<movePromoteShift |
		flags&moveFlagMask)
}

// From returns the source square.
func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & moveSquareMask) }

// Captured returns the captured piece, Empty for quiet moves and en passant.
func (m Move) Captured() Piece { return Piece(uint32(m) >> moveCaptureShift & movePieceMask) }

// Promoted returns the promotion piece or Empty.
func (m Move) Promoted() Piece { return Piece(uint32(m) >> movePromoteShift & movePieceMask) }

func (m Move) IsEnPassant() bool { return m&FlagEnPassant != 0 }
func (m Move) IsPawnStart() bool { return m&FlagPawnStart != 0 }
func (m Move) IsCastle() bool    { return m&FlagCastle != 0 }

// IsCapture reports a capture, en passant included.
func (m Move) IsCapture() bool { return m&CaptureMask != 0 }

// IsPromotion reports a pawn promotion.
func (m Move) IsPromotion() bool { return m&PromotionMask != 0 }

// String returns the coordinate form used by UCI ("e2e4", "e7e8q", "0000").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if p := m.Promoted(); p != Empty {
		sb.WriteByte(promotionChar(p))
	}
	return sb.String()
}

func promotionChar(p Piece) byte {
	switch p {
	case WhiteKnight, BlackKnight:
		return 'n'
	case WhiteBishop, BlackBishop:
		return 'b'
	case WhiteRook, BlackRook:
		return 'r'
	default:
		return 'q'
	}
}

// ScoredMove is a move plus an ordering score. The generator leaves Score at
// zero; search code owns it.
type ScoredMove struct {
	Move  Move
	Score int
}

// MoveList is the generator output.
type MoveList []ScoredMove

// Moves strips the scores.
func (ml MoveList) Moves() []Move {
	out := make([]Move, len(ml))
	for i, sm := range ml {
		out[i] = sm.Move
	}
	return out
}

// Contains reports whether m is in the list.
func (ml MoveList) Contains(m Move) bool {
	for _, sm := range ml {
		if sm.Move == m {
			return true
		}
	}
	return false
}
