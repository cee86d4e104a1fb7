package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position, usable for either
// variant since Atomic starts from the same array of pieces.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceLetter returns FEN's single-letter piece code: uppercase for White,
// lowercase for Black. Mirrors the teacher's charFromPiece.
func pieceLetter(p Piece) byte {
	var letters = [7]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}
	c := letters[p.Type()]
	if p.Colour() == Black {
		c += 'a' - 'A'
	}
	return c
}

// pieceFromChar parses a single FEN piece letter. Mirrors the teacher's
// pieceFromChar.
func pieceFromChar(ch byte) (Piece, error) {
	var pt PieceType
	switch ch {
	case 'P', 'p':
		pt = Pawn
	case 'N', 'n':
		pt = Knight
	case 'B', 'b':
		pt = Bishop
	case 'R', 'r':
		pt = Rook
	case 'Q', 'q':
		pt = Queen
	case 'K', 'k':
		pt = King
	default:
		return NoPiece, fmt.Errorf("chesscore: invalid FEN piece letter %q", ch)
	}
	if ch >= 'a' && ch <= 'z' {
		return MakePiece(Black, pt), nil
	}
	return MakePiece(White, pt), nil
}

// ParseFEN parses a 6-field FEN string into a new Board governed by the
// given variant. The piece placement, side-to-move, castling-rights and
// en-passant fields follow standard FEN; Atomic boards use the same
// placement grammar as Orthodox (see SPEC_FULL.md).
func ParseFEN(variant Variant, fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chesscore: FEN %q has only %d fields, need at least 4", fen, len(fields))
	}

	b := NewBoard(variant)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chesscore: FEN placement %q does not have 8 ranks", fields[0])
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return nil, fmt.Errorf("chesscore: FEN rank %q overflows 8 files", rankStr)
			}
			p, err := pieceFromChar(ch)
			if err != nil {
				return nil, err
			}
			b.addPiece(SquareOf(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("chesscore: FEN rank %q does not cover 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("chesscore: invalid FEN side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castlingRights |= CastleWhiteK
			case 'Q':
				b.castlingRights |= CastleWhiteQ
			case 'k':
				b.castlingRights |= CastleBlackK
			case 'q':
				b.castlingRights |= CastleBlackQ
			default:
				return nil, fmt.Errorf("chesscore: invalid FEN castling letter %q", ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return nil, err
		}
		b.enPassant = sq
	}

	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("chesscore: invalid FEN halfmove clock %q: %w", fields[4], err)
		}
		b.halfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("chesscore: invalid FEN fullmove number %q: %w", fields[5], err)
		}
		b.fullmoveNumber = n
	}

	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// FromFEN is the constructor most callers want: parse a FEN string into a
// ready-to-play Board of the given variant.
func FromFEN(variant Variant, fen string) (*Board, error) {
	return ParseFEN(variant, fen)
}

// MustParseFEN is a convenience wrapper for tests and CLI drivers that
// know their FEN is well-formed; it panics on a parse error rather than
// threading one through call sites that have no sensible recovery.
func MustParseFEN(variant Variant, fen string) *Board {
	b, err := ParseFEN(variant, fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN renders the board back into 6-field FEN.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[SquareOf(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastleWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastleWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastleBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastleBlackQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.enPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareName(b.enPassant))
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)

	return sb.String()
}

func parseSquareName(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("chesscore: invalid square %q", s)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, fmt.Errorf("chesscore: invalid square %q", s)
	}
	return SquareOf(int(file), int(rank)), nil
}
