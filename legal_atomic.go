package chesscore

import "math/bits"

// atomicRules implements RuleEngine for Atomic chess: captures detonate,
// consuming the capturing piece and every non-pawn piece within one king
// step of the landing square (including the epicentre itself); a king
// caught in any blast ends the game outright. Grounded on
// original_source/atomic_move_rules.{h,cpp} and atomic_position.cpp.
type atomicRules struct{}

// isConnectedKings reports whether the two kings stand adjacent to each
// other — in that configuration neither can be in check, because any
// capture of one would detonate the other too. Grounded on
// atomic_move_rules.cpp's isConnectedKings.
func isConnectedKings(a, bsq Square) bool {
	if a == NoSquare || bsq == NoSquare {
		return false
	}
	return kingAttacks[a]&bsq.Bit() != 0
}

// atomicAttackers returns the bitboard of colour `by`'s pieces attacking
// sq, excluding king jump-attacks: kings never attack anything in Atomic
// chess, since capturing one would detonate both.
func atomicAttackers(b *Board, sq int, by Colour, occ uint64) uint64 {
	var attackers uint64
	if by == White {
		attackers |= pawnAttacks[Black][sq] & b.pawns[White]
	} else {
		attackers |= pawnAttacks[White][sq] & b.pawns[Black]
	}
	attackers |= knightAttacks[sq] & b.knights[by]
	rq := b.rooks[by] | b.queens[by]
	bq := b.bishops[by] | b.queens[by]
	attackers |= rookAttacks(sq, occ) & rq
	attackers |= bishopAttacks(sq, occ) & bq
	return attackers
}

// atomicAttacksTo reports whether sq is attacked by colour `by`.
func atomicAttacksTo(b *Board, sq int, by Colour, occ uint64) bool {
	return atomicAttackers(b, sq, by, occ) != 0
}

// isCheckAttacked is the Atomic check-attacked predicate: sq is not
// considered attacked by `by` if `by`'s own king sits next to sq, because
// connecting the kings that way cancels the check. Grounded on
// atomic_move_rules.cpp's isCheckAttacked.
func isCheckAttacked(b *Board, sq int, by Colour, occ uint64) bool {
	bySq := b.KingSquare(by)
	if bySq != NoSquare && atomicMask[sq]&bySq.Bit() != 0 {
		return false
	}
	return atomicAttacksTo(b, sq, by, occ)
}

func (atomicRules) IsInCheck(b *Board, c Colour) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return isCheckAttacked(b, int(ks), c.Other(), b.AllOccupancy())
}

// IsLegal decides legality from the pre-move bitboards, without making and
// unmaking the move, following the dispatch in
// original_source/atomic_move_rules.cpp's isLegal: a king-ghost test for
// king moves, the blast-radius predicate isCaptureLegal for captures, and
// the checker/pin predicate isQuietLegal otherwise. En passant and
// castling fall back to the naive make/unmake oracle, which is simpler and
// safe for moves too rare and fiddly to be worth a bespoke fast path.
func (atomicRules) IsLegal(b *Board, m Move) bool {
	us := b.sideToMove
	if b.kings[White] == 0 || b.kings[Black] == 0 {
		return false
	}
	if m.IsEnPassant() || m.IsCastle() {
		return legalNaive(b, m)
	}
	from, to := m.From(), m.To()
	if m.MovedPiece().Type() == King {
		return isKingMoveLegal(b, from, to, us)
	}
	if m.IsCapture() {
		return isCaptureLegal(b, from, to, us)
	}
	return isQuietLegal(b, from, to, us)
}

// GenerateLegal produces pseudo-legal moves by piece type from the shared
// enumerator, then filters them through IsLegal's predicates rather than
// trial-applying every candidate.
func (atomicRules) GenerateLegal(b *Board) []Move {
	if _, won := b.Winner(); won {
		return nil
	}
	pseudo := b.GeneratePseudoMoves(make([]Move, 0, 128))
	legal := pseudo[:0]
	for _, m := range pseudo {
		if atomicEngine.IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isKingMoveLegal handles non-castling king moves: kings can never capture
// in Atomic (so `to` must be empty), and the king "ghosts" off its origin
// square before the destination's check-attacked status is tested, so it
// doesn't block its own escape along a ray.
func isKingMoveLegal(b *Board, from, to Square, us Colour) bool {
	if b.pieces[to] != NoPiece {
		return false
	}
	them := us.Other()
	occ := b.AllOccupancy() &^ from.Bit()
	return !isCheckAttacked(b, int(to), them, occ)
}

// isCaptureLegal implements atomic_move_rules.cpp's is_capture_legal: a
// capture is judged by whether its blast radius removes every pre-move
// checker and leaves no residual attacker on the king square, never by
// making the move and looking.
func isCaptureLegal(b *Board, from, to Square, us Colour) bool {
	them := us.Other()
	ourKing := b.KingSquare(us)
	enemyKing := b.KingSquare(them)
	blast := atomicMask[to]

	if ourKing != NoSquare && blast&ourKing.Bit() != 0 {
		return false
	}
	if enemyKing != NoSquare && blast&enemyKing.Bit() != 0 {
		return true
	}
	if isConnectedKings(ourKing, enemyKing) {
		return true
	}

	occ := b.AllOccupancy()
	ksq := int(ourKing)
	checkers := atomicAttackers(b, ksq, them, occ)

	pawnsBB := b.pawns[White] | b.pawns[Black]
	exploded := (blast & occ &^ pawnsBB) | to.Bit()
	if checkers&^exploded != 0 {
		return false
	}

	occPrime := occ &^ exploded &^ from.Bit()
	if knightAttacks[ksq]&b.knights[them]&occPrime != 0 {
		return false
	}
	if pawnAttacks[us][ksq]&b.pawns[them]&occPrime != 0 {
		return false
	}
	if rookAttacks(ksq, occPrime)&occPrime&(b.rooks[them]|b.queens[them]) != 0 {
		return false
	}
	if bishopAttacks(ksq, occPrime)&occPrime&(b.bishops[them]|b.queens[them]) != 0 {
		return false
	}
	return true
}

// isQuietLegal implements atomic_move_rules.cpp's is_legal_quiet: connected
// kings make any non-capturing, non-king move legal outright; otherwise a
// single slider check demands interposition on the checker-to-king line,
// and a pinned mover must stay on its pin line.
func isQuietLegal(b *Board, from, to Square, us Colour) bool {
	them := us.Other()
	ourKing := b.KingSquare(us)
	enemyKing := b.KingSquare(them)
	if isConnectedKings(ourKing, enemyKing) {
		return true
	}

	occ := b.AllOccupancy()
	ksq := int(ourKing)
	checkers := atomicAttackers(b, ksq, them, occ)

	if checkers != 0 {
		if bits.OnesCount64(checkers) != 1 {
			return false
		}
		checkerSq := Square(bits.TrailingZeros64(checkers))
		ct := b.pieces[checkerSq].Type()
		if ct != Rook && ct != Bishop && ct != Queen {
			return false
		}
		pinned, _ := findPinned(b, us)
		if pinned&from.Bit() != 0 {
			return false
		}
		return lineBetween[int(checkerSq)][ksq]&to.Bit() != 0
	}

	pinned, pinLine := findPinned(b, us)
	if pinned&from.Bit() != 0 {
		return pinLine[from]&to.Bit() != 0
	}
	return true
}

// legalNaive is the debug/differential-testing oracle: it makes the move
// for real, tests the resulting position, and unmakes. It is never on the
// legality hot path; IsLegal/GenerateLegal use the predicate dispatch
// above, but en passant and castling still route through this oracle (see
// IsLegal), and legal_atomic_oracle_test.go cross-checks the predicate
// path against it on a battery of positions.
func legalNaive(b *Board, m Move) bool {
	if b.kings[White] == 0 || b.kings[Black] == 0 {
		return false
	}
	ok, undo := atomicEngine.MakeMove(b, m)
	if !ok {
		return false
	}
	atomicEngine.UnmakeMove(b, m, undo)
	return true
}

// explodablePieceTypes are the piece types a blast can remove. Pawns are
// immune to the radial blast (only a directly captured pawn dies).
var explodablePieceTypes = [5]PieceType{Knight, Bishop, Rook, Queen, King}

func (atomicRules) MakeMove(b *Board, m Move) (bool, UndoRecord) {
	var undo UndoRecord
	undo.prevCastling = b.castlingRights
	undo.prevEnPassant = b.enPassant
	undo.prevHalfmove = b.halfmoveClock
	undo.prevFullmove = b.fullmoveNumber
	undo.prevZobrist = b.zobristKey
	undo.prevWinnerSet = b.winnerSet
	undo.prevWinner = b.winner
	undo.rookFrom, undo.rookTo = NoSquare, NoSquare

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	us := b.sideToMove
	them := us.Other()
	isCapture := captured != NoPiece || flag == FlagEnPassant

	if b.enPassant != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassant.File()]
	}
	b.enPassant = NoSquare

	undo.movedPiece = b.pieces[from]

	blastSquares := uint64(0)
	if flag == FlagCastle {
		b.removePiece(from)
		b.addPiece(to, moved)
		rFrom, rTo := castleRookSquares(us, to)
		rook := b.removePiece(rFrom)
		b.addPiece(rTo, rook)
		undo.rookFrom, undo.rookTo = rFrom, rTo
	} else if isCapture {
		captureSq := to
		if flag == FlagEnPassant {
			if us == White {
				captureSq = to - 8
			} else {
				captureSq = to + 8
			}
		}
		undo.captured = b.removePiece(captureSq)
		b.removePiece(from)

		mask := atomicMask[to]
		blastSquares = mask
		for _, pt := range explodablePieceTypes {
			for _, c := range [2]Colour{White, Black} {
				bb := b.bitboardFor(pt, c)
				hit := *bb & mask
				for hit != 0 {
					sq := popLSB(&hit)
					b.removePiece(Square(sq))
					undo.explodedByColour[c] |= Square(sq).Bit()
					undo.explodedByType[pt] |= Square(sq).Bit()
				}
			}
		}
	} else {
		b.removePiece(from)
		if promo != NoPiece {
			b.addPiece(to, promo)
		} else {
			b.addPiece(to, moved)
		}
	}

	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastleWhiteK | CastleWhiteQ
	case BlackKing:
		newCR &^= CastleBlackK | CastleBlackQ
	}
	if moved == WhiteRook {
		if from == 0 {
			newCR &^= CastleWhiteQ
		} else if from == 7 {
			newCR &^= CastleWhiteK
		}
	} else if moved == BlackRook {
		if from == 56 {
			newCR &^= CastleBlackQ
		} else if from == 63 {
			newCR &^= CastleBlackK
		}
	}
	if isCapture {
		// A blast that reaches an original rook corner strips that
		// corner's castling right even if the rook had already moved
		// away or was not the piece destroyed, matching the original
		// engine's unconditional corner check.
		const a1, h1, a8, h8 = 0, 7, 56, 63
		if blastSquares&(uint64(1)<<a1) != 0 {
			newCR &^= CastleWhiteQ
		}
		if blastSquares&(uint64(1)<<h1) != 0 {
			newCR &^= CastleWhiteK
		}
		if blastSquares&(uint64(1)<<a8) != 0 {
			newCR &^= CastleBlackQ
		}
		if blastSquares&(uint64(1)<<h8) != 0 {
			newCR &^= CastleBlackK
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights]
		b.zobristKey ^= zobristCastle[newCR]
		b.castlingRights = newCR
	}

	if moved.Type() == Pawn && flag != FlagEnPassant {
		fromRank, toRank := from.Rank(), to.Rank()
		if toRank-fromRank == 2 || fromRank-toRank == 2 {
			var ep Square
			if us == White {
				ep = from + 8
			} else {
				ep = from - 8
			}
			b.enPassant = ep
			b.zobristKey ^= zobristEnPassant[ep.File()]
		}
	}

	b.sideToMove = them
	b.zobristKey ^= zobristSide

	theirKingGone := b.kings[them] == 0
	ourKingGone := b.kings[us] == 0

	if ourKingGone {
		atomicEngine.UnmakeMove(b, m, undo)
		return false, undo
	}

	if theirKingGone {
		b.winnerSet = true
		b.winner = us
	} else {
		ks := b.KingSquare(us)
		if isConnectedKings(ks, b.KingSquare(them)) {
			// connected kings: our king cannot be left in check
		} else if atomicAttacksTo(b, int(ks), them, b.AllOccupancy()) {
			atomicEngine.UnmakeMove(b, m, undo)
			return false, undo
		}
	}

	if moved.Type() == Pawn || isCapture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	return true, undo
}

func (atomicRules) UnmakeMove(b *Board, m Move, undo UndoRecord) {
	from, to := m.From(), m.To()
	flag := m.Flags()
	us := undo.movedPiece.Colour()

	b.sideToMove = us
	b.winnerSet = undo.prevWinnerSet
	b.winner = undo.prevWinner

	if flag == FlagCastle {
		rook := b.removePiece(undo.rookTo)
		b.addPiece(undo.rookFrom, rook)
		b.removePiece(to)
		b.addPiece(from, undo.movedPiece)
	} else if undo.captured != NoPiece || flag == FlagEnPassant {
		for _, pt := range explodablePieceTypes {
			for _, c := range [2]Colour{White, Black} {
				hit := undo.explodedByColour[c] & undo.explodedByType[pt]
				for hit != 0 {
					sq := popLSB(&hit)
					b.addPiece(Square(sq), MakePiece(c, pt))
				}
			}
		}
		b.addPiece(from, undo.movedPiece)
		if flag == FlagEnPassant {
			var capSq Square
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			b.addPiece(capSq, undo.captured)
		} else {
			b.addPiece(to, undo.captured)
		}
	} else {
		b.removePiece(to)
		b.addPiece(from, undo.movedPiece)
	}

	b.castlingRights = undo.prevCastling
	b.enPassant = undo.prevEnPassant
	b.halfmoveClock = undo.prevHalfmove
	b.fullmoveNumber = undo.prevFullmove
	b.zobristKey = undo.prevZobrist
}

// findPinned returns the set of squares holding a piece of colour us that
// is pinned to its king by an enemy slider, together with the line (pin
// ray plus pinner square) each pinned piece is confined to. Each rook and
// bishop ray from the king is scanned on the full occupancy: a friendly
// first blocker followed by an enemy slider of the matching kind is pinned.
// The scan does not look at where the enemy king stands.
func findPinned(b *Board, us Colour) (pinned uint64, pinLine [64]uint64) {
	ks := b.KingSquare(us)
	if ks == NoSquare {
		return 0, pinLine
	}
	ksq := int(ks)
	occ := b.AllOccupancy()
	them := us.Other()

	for d := 0; d < 4; d++ {
		scanPinDirection(b, rookRays[ksq], ksq, d, occ, us, them, Rook, &pinned, &pinLine)
	}
	for d := 0; d < 4; d++ {
		scanPinDirection(b, bishopRays[ksq], ksq, d, occ, us, them, Bishop, &pinned, &pinLine)
	}
	return pinned, pinLine
}

func scanPinDirection(b *Board, rays [4]uint64, ksq, d int, occ uint64, us, them Colour, kind PieceType, pinned *uint64, pinLine *[64]uint64) {
	ray := rays[d]
	blockers := ray & occ
	if blockers == 0 {
		return
	}
	var increasing bool
	if kind == Rook {
		increasing = d == 0 || d == 2 // N, E
	} else {
		increasing = d == 0 || d == 1 // NE, NW
	}
	var first int
	if increasing {
		first = bits.TrailingZeros64(blockers)
	} else {
		first = 63 - bits.LeadingZeros64(blockers)
	}
	firstBB := uint64(1) << uint(first)
	if firstBB&b.occupancy[us] == 0 {
		return
	}
	var firstRays [4]uint64
	if kind == Rook {
		firstRays = rookRays[first]
	} else {
		firstRays = bishopRays[first]
	}
	beyond := firstRays[d] & occ
	if beyond == 0 {
		return
	}
	var next int
	if increasing {
		next = bits.TrailingZeros64(beyond)
	} else {
		next = 63 - bits.LeadingZeros64(beyond)
	}
	p := b.pieces[next]
	isAttacker := p.Colour() == them && ((kind == Rook && (p.Type() == Rook || p.Type() == Queen)) ||
		(kind == Bishop && (p.Type() == Bishop || p.Type() == Queen)))
	if isAttacker {
		*pinned |= firstBB
		pinLine[first] = lineBetween[ksq][next] | (uint64(1) << uint(next))
	}
}
