package chesscore

import "math/bits"

// Precomputed jump-piece attack tables, indexed by origin square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64
var pawnAttacks [2][64]uint64 // pawnAttacks[colour][sq]

// atomicMask[sq] is the blast radius of a capture landing on sq: the
// square itself plus every one of its up-to-8 king-step neighbours.
// Grounded on original_source/atomic_capture_masks.cpp.
var atomicMask [64]uint64

// Rook ray directions: 0=N, 1=S, 2=E, 3=W. Bishop ray directions:
// 0=NE, 1=NW, 2=SE, 3=SW. Each ray excludes the origin square.
var rookRays [64][4]uint64
var bishopRays [64][4]uint64
var kingRaysUnion [64]uint64

// lineBetween[a][b] is the set of squares strictly between a and b if they
// are aligned on a rank, file or diagonal (exclusive of both endpoints);
// otherwise 0. Not present in the teacher (single-variant orthodox only
// needed ray/blocker logic inline); grounded on the Atomic legality
// engine's need for "does this move interpose between checker and king".
var lineBetween [64][64]uint64

// Software pext/pdep perfect-hash slider attack tables, identical in
// approach to the teacher's movegen.go.
var rookMask [64]uint64
var bishopMask [64]uint64
var rookAttTable [64][]uint64
var bishopAttTable [64][]uint64

func init() {
	initJumpTables()
	initRays()
	initSliderTables()
	initLineBetween()
}

func initJumpTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		var nm, km uint64
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				nm |= uint64(1) << uint(rf*8+ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				km |= uint64(1) << uint(rf*8+ff)
			}
		}
		knightAttacks[sq] = nm
		kingAttacks[sq] = km
		atomicMask[sq] = km | (uint64(1) << uint(sq))

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][3] = ray

		kingRaysUnion[sq] = rookRays[sq][0] | rookRays[sq][1] | rookRays[sq][2] | rookRays[sq][3] |
			bishopRays[sq][0] | bishopRays[sq][1] | bishopRays[sq][2] | bishopRays[sq][3]
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var rm uint64
		for r := rank + 1; r < 7; r++ {
			rm |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= 1 << uint(rank*8+f)
		}
		rookMask[sq] = rm

		var bm uint64
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		bishopMask[sq] = bm

		rBits := bits.OnesCount64(rm)
		bBits := bits.OnesCount64(bm)
		rookAttTable[sq] = make([]uint64, 1<<rBits)
		bishopAttTable[sq] = make([]uint64, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := pdep(uint64(idx), rm)
			rookAttTable[sq][idx] = rookAttacksSlow(sq, occ)
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := pdep(uint64(idx), bm)
			bishopAttTable[sq][idx] = bishopAttacksSlow(sq, occ)
		}
	}
}

// initLineBetween walks the rook and bishop rays already built and, for
// every pair of aligned squares, records the open squares between them.
func initLineBetween() {
	for a := 0; a < 64; a++ {
		for d := 0; d < 4; d++ {
			ray := rookRays[a][d]
			for ray != 0 {
				b := popLSB(&ray)
				// squares between a and b along this ray: ray from a minus
				// ray from b minus b itself (ray from a already excludes a).
				lineBetween[a][b] = rookRays[a][d] &^ rookRays[b][d] &^ (uint64(1) << uint(b))
			}
		}
		for d := 0; d < 4; d++ {
			ray := bishopRays[a][d]
			for ray != 0 {
				b := popLSB(&ray)
				lineBetween[a][b] = bishopRays[a][d] &^ bishopRays[b][d] &^ (uint64(1) << uint(b))
			}
		}
	}
}

// software pext: extract bits of x at positions where mask has 1s.
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

func rookAttacks(sq int, occ uint64) uint64 {
	idx := pext(occ, rookMask[sq])
	return rookAttTable[sq][idx]
}

func bishopAttacks(sq int, occ uint64) uint64 {
	idx := pext(occ, bishopMask[sq])
	return bishopAttTable[sq][idx]
}

// rookAttacksSlow computes rook attacks from sq given occupancy occ by
// walking each ray to its first blocker. Used only to populate the
// perfect-hash tables above.
func rookAttacksSlow(sq int, occ uint64) uint64 {
	var attacks uint64

	ray := rookRays[sq][0]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][0]
	}
	attacks |= ray

	ray = rookRays[sq][1]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][1]
	}
	attacks |= ray

	ray = rookRays[sq][2]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][2]
	}
	attacks |= ray

	ray = rookRays[sq][3]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][3]
	}
	attacks |= ray

	return attacks
}

func bishopAttacksSlow(sq int, occ uint64) uint64 {
	var attacks uint64

	ray := bishopRays[sq][0]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][0]
	}
	attacks |= ray

	ray = bishopRays[sq][1]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][1]
	}
	attacks |= ray

	ray = bishopRays[sq][2]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][2]
	}
	attacks |= ray

	ray = bishopRays[sq][3]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][3]
	}
	attacks |= ray

	return attacks
}

// isSquareAttacked reports whether sq is attacked by colour `by` given the
// supplied occupancy. Used by the Orthodox rule engine; king jump-attacks
// are included here because Orthodox kings do attack (Atomic's legality
// engine uses its own atomicAttacksTo, which deliberately omits them).
func isSquareAttacked(b *Board, sq int, by Colour, occ uint64) bool {
	byIdx := int(by)

	if by == White {
		if pawnAttacks[Black][sq]&b.pawns[byIdx] != 0 {
			return true
		}
	} else {
		if pawnAttacks[White][sq]&b.pawns[byIdx] != 0 {
			return true
		}
	}
	if knightAttacks[sq]&b.knights[byIdx] != 0 {
		return true
	}
	if kingAttacks[sq]&b.kings[byIdx] != 0 {
		return true
	}
	rq := b.rooks[byIdx] | b.queens[byIdx]
	bq := b.bishops[byIdx] | b.queens[byIdx]
	if rookAttacks(sq, occ)&rq != 0 {
		return true
	}
	if bishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	return false
}
