package board

import (
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Board from a FEN string. Placement and side to move are
// required; castling and en passant default to "-", the clocks to 0 and 1.
// Malformed input yields a *ParseError.
func ParseFEN(fen string, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, &ParseError{Field: "fen", Input: fen, Reason: "need at least placement and side to move"}
	}
	if len(fields) > 6 {
		return nil, &ParseError{Field: "fen", Input: fen, Reason: "too many fields"}
	}

	b := newEmptyBoard(opts...)

	// 1. Piece placement
	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, &ParseError{Field: "side", Input: fields[1], Reason: "must be 'w' or 'b'"}
	}

	// 3. Castling rights
	if len(fields) > 2 {
		if err := b.parseCastling(fields[2]); err != nil {
			return nil, err
		}
	}

	// 4. En passant target square
	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, &ParseError{Field: "en passant", Input: fields[3], Reason: "not a square"}
		}
		want := Rank6
		if b.side == Black {
			want = Rank3
		}
		if sq.Rank() != want {
			return nil, &ParseError{Field: "en passant", Input: fields[3], Reason: "not on the rank behind a double push"}
		}
		// The pushed pawn stands in front of the target; the target and the
		// square it came from are empty.
		pushed, origin, enemy := sq-10, sq+10, BlackPawn
		if b.side == Black {
			pushed, origin, enemy = sq+10, sq-10, WhitePawn
		}
		if b.cells[pushed] != enemy || b.cells[sq] != Empty || b.cells[origin] != Empty {
			return nil, &ParseError{Field: "en passant", Input: fields[3], Reason: "no pawn could have just pushed past " + sq.String()}
		}
		b.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &ParseError{Field: "halfmove", Input: fields[4], Reason: "not a non-negative number"}
		}
		b.halfmove = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &ParseError{Field: "fullmove", Input: fields[5], Reason: "not a positive number"}
		}
		b.fullmove = n
	}

	b.key = b.ComputeKey()
	return b, nil
}

func (b *Board) parsePlacement(s string) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: "placement", Input: s, Reason: "need 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := Rank8 - i
		file := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == Empty {
				return &ParseError{Field: "placement", Input: rankStr, Reason: "unexpected character " + strconv.QuoteRune(rune(ch))}
			}
			if file > FileH {
				return &ParseError{Field: "placement", Input: rankStr, Reason: "rank overflows 8 files"}
			}
			if pieceIsPawn[p] && (rank == Rank1 || rank == Rank8) {
				return &ParseError{Field: "placement", Input: rankStr, Reason: "pawn on first or last rank"}
			}
			if b.pieceCount[p] == maxPieceSlots {
				return &ParseError{Field: "placement", Input: s, Reason: "too many " + p.String()}
			}
			b.addPiece(FileRankToSquare(file, rank), p)
			file++
		}
		if file != FileH+1 {
			return &ParseError{Field: "placement", Input: rankStr, Reason: "rank does not have 8 files"}
		}
	}
	if b.pieceCount[WhiteKing] != 1 || b.pieceCount[BlackKing] != 1 {
		return &ParseError{Field: "placement", Input: s, Reason: "each side needs exactly one king"}
	}
	for _, c := range [2]Color{White, Black} {
		if n := b.pawnsAndPromotions(c); n > 8 {
			return &ParseError{Field: "placement", Input: s, Reason: c.String() + " has " + strconv.Itoa(n) + " pawns and promoted pieces"}
		}
	}
	return nil
}

// startCount is the number of each non-pawn, non-king piece a side begins with.
var startCount = [...]struct {
	white, black Piece
	n            int
}{
	{WhiteKnight, BlackKnight, 2},
	{WhiteBishop, BlackBishop, 2},
	{WhiteRook, BlackRook, 2},
	{WhiteQueen, BlackQueen, 1},
}

// pawnsAndPromotions counts the pawns of c plus every piece beyond the
// starting set, which can only have come from a promotion. Keeping the sum at
// eight also keeps each piece list within maxPieceSlots after any promotion.
func (b *Board) pawnsAndPromotions(c Color) int {
	n := b.pieceCount[pawnOf[c]]
	for _, sc := range startCount {
		p := sc.white
		if c == Black {
			p = sc.black
		}
		if extra := b.pieceCount[p] - sc.n; extra > 0 {
			n += extra
		}
	}
	return n
}

// castleHome lists, per right, the squares the king and rook must stand on.
var castleHome = [4]struct {
	right      CastlingRights
	letter     byte
	king, rook Square
	kingPiece  Piece
	rookPiece  Piece
}{
	{CastleWhiteKing, 'K', E1, H1, WhiteKing, WhiteRook},
	{CastleWhiteQueen, 'Q', E1, A1, WhiteKing, WhiteRook},
	{CastleBlackKing, 'k', E8, H8, BlackKing, BlackRook},
	{CastleBlackQueen, 'q', E8, A8, BlackKing, BlackRook},
}

func (b *Board) parseCastling(s string) error {
	if s == "-" {
		return nil
	}
	for i := 0; i < len(s); i++ {
		found := false
		for _, h := range castleHome {
			if s[i] != h.letter {
				continue
			}
			found = true
			if b.castling&h.right != 0 {
				return &ParseError{Field: "castling", Input: s, Reason: "repeated right " + string(h.letter)}
			}
			if b.cells[h.king] != h.kingPiece || b.cells[h.rook] != h.rookPiece {
				return &ParseError{Field: "castling", Input: s, Reason: "king or rook not on its home square for " + string(h.letter)}
			}
			b.castling |= h.right
		}
		if !found {
			return &ParseError{Field: "castling", Input: s, Reason: "unexpected character " + strconv.QuoteRune(rune(s[i]))}
		}
	}
	return nil
}

// FEN serialises the position, clocks included.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			p := b.cells[FileRankToSquare(file, rank)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
