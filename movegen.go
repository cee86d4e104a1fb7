package chesscore

import "math/bits"

// GeneratePseudoMoves appends every pseudo-legal move for the side to move
// into dst and returns the resulting slice. Pseudo-legal obeys piece
// movement rules, blockers and (for castling) rights plus an empty path,
// but performs no king-safety test at all — that is each variant's rule
// engine's job (legal_orthodox.go, legal_atomic.go), unlike the teacher's
// generateMovesFilteredInto, which folded Orthodox-only pruning into the
// generator itself.
func (b *Board) GeneratePseudoMoves(dst []Move) []Move {
	moves := dst[:0]
	us := b.sideToMove
	them := us.Other()

	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[them]
	allOcc := ownOcc | oppOcc

	pawns := b.pawns[us]
	for pawns != 0 {
		from := popLSB(&pawns)
		fromSq := Square(from)
		movedPiece := b.pieces[from]
		moves = genPawnMoves(moves, b, fromSq, movedPiece, us, them, allOcc, oppOcc)
	}

	moves = genSliderOrKnightMoves(moves, b, Knight, b.knights[us], allOcc, ownOcc, oppOcc)
	moves = genSliderOrKnightMoves(moves, b, Bishop, b.bishops[us], allOcc, ownOcc, oppOcc)
	moves = genSliderOrKnightMoves(moves, b, Rook, b.rooks[us], allOcc, ownOcc, oppOcc)
	moves = genSliderOrKnightMoves(moves, b, Queen, b.queens[us], allOcc, ownOcc, oppOcc)

	kbb := b.kings[us]
	if kbb != 0 {
		from := bits.TrailingZeros64(kbb)
		fromSq := Square(from)
		movedPiece := b.pieces[from]
		targets := kingAttacks[from] &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			cap := b.pieces[to]
			moves = append(moves, NewMove(fromSq, Square(to), movedPiece, cap, NoPiece, FlagNone))
		}
		moves = genCastlingCandidates(moves, b, us)
	}

	return moves
}

func genSliderOrKnightMoves(moves []Move, b *Board, pt PieceType, pieces uint64, allOcc, ownOcc, oppOcc uint64) []Move {
	for pieces != 0 {
		from := popLSB(&pieces)
		fromSq := Square(from)
		movedPiece := b.pieces[from]
		targets := pieceAttacks(pt, from, allOcc) &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			cap := NoPiece
			if (oppOcc>>uint(to))&1 != 0 {
				cap = b.pieces[to]
			}
			moves = append(moves, NewMove(fromSq, Square(to), movedPiece, cap, NoPiece, FlagNone))
		}
	}
	return moves
}

func pieceAttacks(pt PieceType, sq int, occ uint64) uint64 {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	case Queen:
		return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
	}
	return 0
}

func genPawnMoves(moves []Move, b *Board, fromSq Square, movedPiece Piece, us, them Colour, allOcc, oppOcc uint64) []Move {
	from := int(fromSq)
	forward := 8
	startRank, promoRank := 1, 7
	if us == Black {
		forward = -8
		startRank, promoRank = 6, 0
	}

	one := from + forward
	if one >= 0 && one < 64 && (allOcc>>uint(one))&1 == 0 {
		toSq := Square(one)
		if toSq.Rank() == promoRank {
			moves = appendPromotions(moves, fromSq, toSq, movedPiece, NoPiece, us)
		} else {
			moves = append(moves, NewMove(fromSq, toSq, movedPiece, NoPiece, NoPiece, FlagNone))
			if fromSq.Rank() == startRank {
				two := from + 2*forward
				if (allOcc>>uint(two))&1 == 0 {
					moves = append(moves, NewMove(fromSq, Square(two), movedPiece, NoPiece, NoPiece, FlagNone))
				}
			}
		}
	}

	caps := pawnAttacks[us][from] & oppOcc
	for caps != 0 {
		to := popLSB(&caps)
		toSq := Square(to)
		capPiece := b.pieces[to]
		if toSq.Rank() == promoRank {
			moves = appendPromotions(moves, fromSq, toSq, movedPiece, capPiece, us)
		} else {
			moves = append(moves, NewMove(fromSq, toSq, movedPiece, capPiece, NoPiece, FlagNone))
		}
	}

	if b.enPassant != NoSquare {
		ep := int(b.enPassant)
		if (pawnAttacks[us][from]>>uint(ep))&1 != 0 {
			var capturedPawn Piece
			if us == White {
				capturedPawn = BlackPawn
			} else {
				capturedPawn = WhitePawn
			}
			moves = append(moves, NewMove(fromSq, Square(ep), movedPiece, capturedPawn, NoPiece, FlagEnPassant))
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square, moved, captured Piece, us Colour) []Move {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		moves = append(moves, NewMove(from, to, moved, captured, MakePiece(us, pt), FlagNone))
	}
	return moves
}

func genCastlingCandidates(moves []Move, b *Board, us Colour) []Move {
	occupied := func(sq int) bool { return b.pieces[sq] != NoPiece }
	if us == White {
		if b.castlingRights&CastleWhiteK != 0 && !occupied(5) && !occupied(6) && b.pieces[7] == WhiteRook {
			moves = append(moves, NewMove(4, 6, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
		if b.castlingRights&CastleWhiteQ != 0 && !occupied(1) && !occupied(2) && !occupied(3) && b.pieces[0] == WhiteRook {
			moves = append(moves, NewMove(4, 2, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
	} else {
		if b.castlingRights&CastleBlackK != 0 && !occupied(61) && !occupied(62) && b.pieces[63] == BlackRook {
			moves = append(moves, NewMove(60, 62, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
		if b.castlingRights&CastleBlackQ != 0 && !occupied(57) && !occupied(58) && !occupied(59) && b.pieces[56] == BlackRook {
			moves = append(moves, NewMove(60, 58, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
	}
	return moves
}

// castleRookSquares returns the rook's from/to squares for a castling move
// landing on `to` for colour us, used by both variants' make/unmake.
func castleRookSquares(us Colour, to Square) (from, dest Square) {
	if us == White {
		if to == 6 {
			return 7, 5
		}
		return 0, 3
	}
	if to == 62 {
		return 63, 61
	}
	return 56, 59
}
