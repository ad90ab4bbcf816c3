package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			pos := NewPosition()
			require.Equal(t, tt.want, Perft(pos, tt.depth))
		})
	}
}

func TestPerftKiwipeteDepth1(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, uint64(48), Perft(pos, 1))
}

func TestEnPassantCaptureAvailable(t *testing.T) {
	pos, err := FromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)
	found := false
	for _, mv := range GenerateLegalMoves(pos) {
		if mv.IsEnPassant {
			found = true
		}
	}
	require.True(t, found, "expected an en passant capture to be legal")
}

func TestCastleBlockedThroughCheckIsIllegal(t *testing.T) {
	// White king e1, rook h1, rights intact, but f1 is attacked by a black
	// rook on f7 down the open f-file: castling kingside must be rejected.
	pos, err := FromFEN("4k2r/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	// The h8 rook above does not bear on f1; give black a rook on the
	// f-file instead: use 4k3/5r2.
	pos, err = FromFEN("4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	for _, mv := range GenerateLegalMoves(pos) {
		if mv.IsCastle && mv.To == 62 {
			t.Fatalf("kingside castle through an attacked square must be illegal, got %v", mv)
		}
	}
}

func TestMirrorProducesARealReversal(t *testing.T) {
	tbl := [64]int{}
	for i := range tbl {
		tbl[i] = i
	}
	got := mirror(tbl)
	for row := 0; row < innerBoardSize; row++ {
		for col := 0; col < innerBoardSize; col++ {
			require.Equal(t, tbl[(7-row)*innerBoardSize+col], got[row*innerBoardSize+col])
		}
	}
	require.NotEqual(t, tbl, got, "mirror of a non-palindromic table must differ from the input")
}
