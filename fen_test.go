package chesscore

import "testing"

func TestParseFENStartPosRoundTrip(t *testing.T) {
	b, err := ParseFEN(VariantOrthodox, FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.ToFEN(); got != FENStartPos {
		t.Errorf("ToFEN() = %q, want %q", got, FENStartPos)
	}
	if b.SideToMove() != White {
		t.Errorf("SideToMove() = %v, want White", b.SideToMove())
	}
	if b.CastlingRights() != CastleAll {
		t.Errorf("CastlingRights() = %v, want CastleAll", b.CastlingRights())
	}
	if b.EnPassant() != NoSquare {
		t.Errorf("EnPassant() = %v, want NoSquare", b.EnPassant())
	}
	if !b.Verify(DiscardLogger()) {
		t.Error("Verify() = false on freshly parsed start position")
	}
}

func TestParseFENEnPassantField(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	b, err := ParseFEN(VariantOrthodox, fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := SquareOf(3, 5)
	if b.EnPassant() != want {
		t.Errorf("EnPassant() = %v, want %v", b.EnPassant(), want)
	}
}

func TestParseFENRejectsMalformedPlacement(t *testing.T) {
	_, err := ParseFEN(VariantOrthodox, "bad fen string")
	if err == nil {
		t.Fatal("expected error for malformed FEN")
	}
}

func TestMustParseFENPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from MustParseFEN on bad input")
		}
	}()
	MustParseFEN(VariantOrthodox, "not a fen")
}
