package chesscore

// UndoRecord carries everything a rule engine's UnmakeMove needs to
// restore the position after MakeMove. Orthodox only ever populates the
// first group of fields; Atomic additionally populates movedPiece and the
// explosion bitboards (see SPEC_FULL.md §5). A single struct, rather than
// two, keeps RuleEngine variant-agnostic.
type UndoRecord struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square
	rookTo        Square

	prevWinnerSet bool
	prevWinner    Colour

	// Atomic-only explosion bookkeeping.
	movedPiece       Piece
	explodedByColour [2]uint64
	explodedByType   [7]uint64
}

// RuleEngine is the variant dispatch contract: given a Board already
// tagged with a Variant, a RuleEngine implements that variant's legality
// semantics and make/unmake mechanics.
type RuleEngine interface {
	IsLegal(b *Board, m Move) bool
	IsInCheck(b *Board, c Colour) bool
	GenerateLegal(b *Board) []Move
	MakeMove(b *Board, m Move) (ok bool, undo UndoRecord)
	UnmakeMove(b *Board, m Move, undo UndoRecord)
}

var orthodoxEngine RuleEngine = orthodoxRules{}
var atomicEngine RuleEngine = atomicRules{}

// EngineFor returns the RuleEngine implementing v.
func EngineFor(v Variant) RuleEngine {
	if v == VariantAtomic {
		return atomicEngine
	}
	return orthodoxEngine
}

// Engine returns the RuleEngine bound to this board's own variant, for
// callers that would rather not look the variant up themselves.
func (b *Board) Engine() RuleEngine { return EngineFor(b.variant) }

// IsLegal, IsInCheck, GenerateLegal, MakeMove and UnmakeMove forward to the
// board's own variant engine, so most callers never need EngineFor at all.
func (b *Board) IsLegal(m Move) bool            { return b.Engine().IsLegal(b, m) }
func (b *Board) IsInCheck(c Colour) bool        { return b.Engine().IsInCheck(b, c) }
func (b *Board) GenerateLegal() []Move          { return b.Engine().GenerateLegal(b) }
func (b *Board) MakeMove(m Move) (bool, UndoRecord) { return b.Engine().MakeMove(b, m) }
func (b *Board) UnmakeMove(m Move, u UndoRecord)    { b.Engine().UnmakeMove(b, m, u) }

// HasLegalMoves, InCheckmate and InStalemate are convenience wrappers for
// callers and tests; Perft does not use them.
func (b *Board) HasLegalMoves() bool { return len(b.GenerateLegal()) > 0 }

func (b *Board) InCheckmate() bool {
	if b.variant == VariantAtomic {
		if _, won := b.Winner(); won {
			return false // the game already ended by explosion, not checkmate
		}
	}
	return b.IsInCheck(b.sideToMove) && !b.HasLegalMoves()
}

func (b *Board) InStalemate() bool {
	if _, won := b.Winner(); won {
		return false
	}
	return !b.IsInCheck(b.sideToMove) && !b.HasLegalMoves()
}

func (b *Board) IsDrawByFiftyMoves() bool { return b.halfmoveClock >= 100 }
