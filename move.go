package chesscore

import "strings"

// Move encodes a chess move in a 32-bit value: from/to squares, the moved
// piece, any captured piece, any promotion piece, and a small flag field.
// Layout and bit widths follow the teacher's move.go.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Move flags. Promotion is signalled by a non-zero promotion piece field,
// not a flag bit.
const (
	FlagNone      uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
)

// NewMove packs a move's components into a Move value.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	return Move(
		uint32(from&0x3F) |
			uint32(to&0x3F)<<moveToShift |
			uint32(piece&0xF)<<movePieceShift |
			uint32(captured&0xF)<<moveCaptureShift |
			uint32(promotion&0xF)<<movePromoteShift |
			uint32(flag&0x3)<<moveFlagShift,
	)
}

func (m Move) From() Square            { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square              { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) MovedPiece() Piece       { return Piece((uint32(m) >> movePieceShift) & 0xF) }
func (m Move) CapturedPiece() Piece    { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }
func (m Move) PromotionPiece() Piece   { return Piece((uint32(m) >> movePromoteShift) & 0xF) }
func (m Move) Flags() uint8            { return uint8((uint32(m) >> moveFlagShift) & 0x3) }
func (m Move) IsCastle() bool          { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool       { return m.Flags() == FlagEnPassant }
func (m Move) IsCapture() bool         { return m.CapturedPiece() != NoPiece || m.IsEnPassant() }
func (m Move) IsPromotion() bool       { return m.PromotionPiece() != NoPiece }

// String renders the move in long algebraic notation (e2e4, e7e8q).
func (m Move) String() string {
	from, to, promo := m.From(), m.To(), m.PromotionPiece()
	s := squareName(from) + squareName(to)
	if promo != NoPiece {
		s += strings.ToLower(string(pieceLetter(promo)))
	}
	return s
}

func squareName(sq Square) string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}
