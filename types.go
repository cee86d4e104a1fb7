// Package chesscore implements move generation and position maintenance
// for Orthodox and Atomic chess: bitboard position representation, shared
// pseudo-legal move generation, two variant-specific legality engines, and
// perft. FEN parsing/printing implement only the 6-field contract; PGN,
// pretty-printing and game-tree bookkeeping are out of scope.
package chesscore

import "math/bits"

// Square is a board square, 0 (a1) through 63 (h8).
type Square int

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = -1

// File returns the file (0=a .. 7=h) of the square.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank (0=1st .. 7=8th) of the square.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Bit returns the single-bit bitboard for this square.
func (sq Square) Bit() uint64 { return uint64(1) << uint(sq) }

// SquareOf builds a Square from 0-based file and rank.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// Colour is one side of the board.
type Colour uint8

const (
	White Colour = 0
	Black Colour = 1
)

// Other returns the opposing colour.
func (c Colour) Other() Colour { return c ^ 1 }

// PieceType is a colourless chess piece kind. Index 0 is reserved (None)
// so PieceType values can directly index per-type bitboard arrays sized
// [7]uint64 without an off-by-one.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece packs a PieceType (low 3 bits) with a Colour (bit 3), following the
// teacher's encoding: Black pieces are White pieces with bit 3 set, so
// Piece&7 strips colour and Piece&8 tests for Black.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// Type strips colour, returning the colourless PieceType.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Colour returns the owning side. NoPiece is conventionally White.
func (p Piece) Colour() Colour {
	if p&8 != 0 {
		return Black
	}
	return White
}

// MakePiece combines a colour and type into a concrete Piece.
func MakePiece(c Colour, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// CastlingRights is a 4-bit flag set of remaining castling privileges.
type CastlingRights uint8

const (
	CastleWhiteK CastlingRights = 1 << iota
	CastleWhiteQ
	CastleBlackK
	CastleBlackQ

	CastleAll CastlingRights = CastleWhiteK | CastleWhiteQ | CastleBlackK | CastleBlackQ
)

// Variant selects which rule set a Board is governed by.
type Variant uint8

const (
	VariantOrthodox Variant = iota
	VariantAtomic
)

func (v Variant) String() string {
	if v == VariantAtomic {
		return "atomic"
	}
	return "orthodox"
}

// popLSB clears and returns the index of the least significant set bit.
func popLSB(bb *uint64) int {
	idx := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return idx
}
