package chesscore

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// These tests cross-check this package's Orthodox move generator against
// dylhunn/dragontoothmg, an independent bitboard move generator, rather
// than delegating move generation itself to it. Any mismatch points at a
// bug in one generator or the other.

func legalMoveStrings(b *Board) []string {
	out := make([]string, 0, 32)
	for _, m := range b.GenerateLegal() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragontoothLegalMoveStrings(fen string) []string {
	ref := dragontoothmg.ParseFen(fen)
	moves := ref.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragontoothPerft(ref *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := ref.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := ref.Apply(m)
		nodes += dragontoothPerft(ref, depth-1)
		unapply()
	}
	return nodes
}

func assertSameLegalMoves(t *testing.T, fen string) {
	t.Helper()
	ours := legalMoveStrings(MustParseFEN(VariantOrthodox, fen))
	theirs := dragontoothLegalMoveStrings(fen)
	if len(ours) != len(theirs) {
		t.Fatalf("legal move count mismatch for %q: ours=%d theirs=%d\nours=%v\ntheirs=%v", fen, len(ours), len(theirs), ours, theirs)
	}
	for i := range ours {
		if ours[i] != theirs[i] {
			t.Fatalf("legal move sets diverge for %q at index %d: ours=%q theirs=%q", fen, i, ours[i], theirs[i])
		}
	}
}

func TestDragontoothAgreesOnLegalMovesStartPos(t *testing.T) {
	assertSameLegalMoves(t, FENStartPos)
}

func TestDragontoothAgreesOnLegalMovesKiwipete(t *testing.T) {
	assertSameLegalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func TestDragontoothAgreesOnLegalMovesEnPassantPosition(t *testing.T) {
	assertSameLegalMoves(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
}

func TestDragontoothAgreesOnPerftStartPos(t *testing.T) {
	ref := dragontoothmg.ParseFen(FENStartPos)
	ours := MustParseFEN(VariantOrthodox, FENStartPos)
	for depth := 1; depth <= 3; depth++ {
		want := dragontoothPerft(&ref, depth)
		got := Perft(ours, depth)
		if got != want {
			t.Errorf("Perft depth %d: ours=%d dragontoothmg=%d", depth, got, want)
		}
	}
}
