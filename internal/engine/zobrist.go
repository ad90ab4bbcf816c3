package engine

import "math/rand"

// Zobrist key tables: 12 piece-kind/color combinations times 64 squares,
// one side-to-move key, 16 castle-rights combinations and 8 en passant
// files. Seeded deterministically (not from a random source) so that two
// processes — or a test and the engine under test — compute identical
// hashes for identical positions, matching the original's std::hash<Board>
// incremental/full-recompute parity requirement.
var (
	zobristPieces     [12][64]uint64
	zobristSideToMove uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [8]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5D4E3C2B1A))
	for pc := 0; pc < 12; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieces[pc][sq] = rng.Uint64()
		}
	}
	zobristSideToMove = rng.Uint64()
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
}

// pieceZobristIndex maps a piece to one of the 12 piece-square table rows:
// white pawn..king = 0..5, black pawn..king = 6..11.
func pieceZobristIndex(p Piece) int {
	idx := int(p.Kind) - int(Pawn)
	if p.Color == Black {
		idx += 6
	}
	return idx
}

func hashPieceAt(inner int, p Piece) uint64 {
	if p.Kind == KindEmpty || p.Kind == KindUnknown {
		return 0
	}
	return zobristPieces[pieceZobristIndex(p)][inner]
}

// ComputeHash recomputes the Zobrist hash from scratch by scanning every
// square, rather than relying on incremental updates. Used to seed a new
// Position's Hash field and, under DebugAssertions, to verify that
// incremental updates in MakeMove/UnmakeMove kept Hash in sync.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		h ^= hashPieceAt(inner, p.PieceAtInner(inner))
	}
	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[p.CastleRights]
	if p.EnPassantSq != noSquare {
		h ^= zobristEnPassant[p.EnPassantSq%innerBoardSize]
	}
	return h
}

// assertHashConsistent is a no-op unless DebugAssertions is set, in which
// case it recomputes the hash from scratch and panics on any mismatch with
// the incrementally maintained Position.Hash.
func (p *Position) assertHashConsistent(where string) {
	if !DebugAssertions {
		return
	}
	if got, want := p.Hash, p.ComputeHash(); got != want {
		assertf(false, "%s: incremental hash %#x != recomputed hash %#x", where, got, want)
	}
}
