package chesscore

import "testing"

func TestPerftOrthodoxStartPos(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}
	b := MustParseFEN(VariantOrthodox, FENStartPos)
	for depth, w := range want {
		if got := Perft(b, depth); got != w {
			t.Errorf("Perft(start, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftOrthodoxKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{1, 48, 2039, 97862}
	b := MustParseFEN(VariantOrthodox, kiwipete)
	for depth, w := range want {
		if got := Perft(b, depth); got != w {
			t.Errorf("Perft(kiwipete, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestOrthodoxCastlingAllowedWithClearPath(t *testing.T) {
	b := MustParseFEN(VariantOrthodox, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range b.GenerateLegal() {
		if m.IsCastle() {
			return
		}
	}
	t.Fatal("expected O-O to be available with an empty, unattacked path")
}

func TestOrthodoxCastlingBlockedByAttackedSquare(t *testing.T) {
	// Black rook on f8 attacks f1, so White O-O is illegal even though the
	// path is empty and the rook itself is untouched.
	b := MustParseFEN(VariantOrthodox, "4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range b.GenerateLegal() {
		if m.IsCastle() {
			t.Fatalf("O-O should be illegal through an attacked square, got %v", m)
		}
	}
}

func TestOrthodoxEnPassantCapture(t *testing.T) {
	b := MustParseFEN(VariantOrthodox, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	found := false
	for _, m := range b.GenerateLegal() {
		if m.IsEnPassant() {
			found = true
			if m.To() != SquareOf(3, 5) {
				t.Errorf("en passant move lands on %v, want d6", m.To())
			}
		}
	}
	if !found {
		t.Fatal("expected an en passant capture among legal moves")
	}
}

func TestOrthodoxPinnedPieceCannotMove(t *testing.T) {
	// White bishop on d2 is pinned to the king on e1 by the black queen on a5.
	b := MustParseFEN(VariantOrthodox, "4k3/8/8/q7/8/8/3B4/4K3 w - - 0 1")
	for _, m := range b.GenerateLegal() {
		if m.From() == SquareOf(3, 1) && m.MovedPiece().Type() == Bishop {
			if m.To() != SquareOf(2, 2) && m.To() != SquareOf(1, 3) && m.To() != SquareOf(0, 4) {
				t.Errorf("pinned bishop made an off-pin-line move to %v", m.To())
			}
		}
	}
}

func TestComputeCheckAndPinsFindsCheckerAndPin(t *testing.T) {
	// Black queen on a5 pins the white bishop on d2 to the king on e1 and,
	// on a separate FEN, checks it directly.
	b := MustParseFEN(VariantOrthodox, "4k3/8/8/q7/8/8/3B4/4K3 w - - 0 1")
	occ := b.AllOccupancy()
	inCheck, double, _, pinLine := computeCheckAndPins(b, White, occ)
	if inCheck || double {
		t.Fatalf("king should not be in check while the bishop blocks the pin, got inCheck=%v double=%v", inCheck, double)
	}
	d2 := SquareOf(3, 1)
	if pinLine[d2] == 0 {
		t.Error("expected a pin line recorded for the bishop on d2")
	}

	checkFEN := MustParseFEN(VariantOrthodox, "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1")
	inCheck, double, checkMask, _ := computeCheckAndPins(checkFEN, White, checkFEN.AllOccupancy())
	if !inCheck || double {
		t.Fatalf("king should be in single check from the queen, got inCheck=%v double=%v", inCheck, double)
	}
	if checkMask&SquareOf(4, 1).Bit() == 0 {
		t.Error("check mask should include the checking queen's square")
	}
}

func TestInCheckmateDetection(t *testing.T) {
	// Fool's mate final position, white to move and mated by ...Qh4#.
	b := MustParseFEN(VariantOrthodox, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !b.InCheckmate() {
		t.Fatal("expected checkmate")
	}
}
