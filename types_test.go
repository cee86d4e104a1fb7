package chesscore

import "testing"

func TestSquareFileRank(t *testing.T) {
	cases := []struct {
		sq         Square
		file, rank int
	}{
		{0, 0, 0},
		{7, 7, 0},
		{8, 0, 1},
		{63, 7, 7},
	}
	for _, c := range cases {
		if got := c.sq.File(); got != c.file {
			t.Errorf("Square(%d).File() = %d, want %d", c.sq, got, c.file)
		}
		if got := c.sq.Rank(); got != c.rank {
			t.Errorf("Square(%d).Rank() = %d, want %d", c.sq, got, c.rank)
		}
	}
	if got := SquareOf(4, 0); got != 4 {
		t.Errorf("SquareOf(4,0) = %d, want 4", got)
	}
}

func TestPieceRoundTrip(t *testing.T) {
	for _, c := range [2]Colour{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			if p.Type() != pt {
				t.Errorf("MakePiece(%v,%v).Type() = %v", c, pt, p.Type())
			}
			if p.Colour() != c {
				t.Errorf("MakePiece(%v,%v).Colour() = %v", c, pt, p.Colour())
			}
		}
	}
}

func TestColourOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Fatal("Other() does not swap colours")
	}
}
