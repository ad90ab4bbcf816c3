package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range positions {
		t.Run(fen, func(t *testing.T) {
			pos, err := FromFEN(fen)
			require.NoError(t, err)
			before := pos.ToFEN()
			beforeHash := pos.Hash

			for _, mv := range GenerateLegalMoves(pos) {
				mv := mv
				pos.MakeMove(&mv)
				pos.UnmakeMove(&mv)
				require.Equal(t, before, pos.ToFEN(), "unmake must restore FEN exactly for move %v", mv)
				require.Equal(t, beforeHash, pos.Hash, "unmake must restore hash exactly for move %v", mv)
			}
		})
	}
}

func TestHashConsistentAfterMove(t *testing.T) {
	pos, err := FromFEN(StartingFEN)
	require.NoError(t, err)

	moves := GenerateLegalMoves(pos)
	require.NotEmpty(t, moves)
	mv := moves[0]
	pos.MakeMove(&mv)
	require.Equal(t, pos.ComputeHash(), pos.Hash)
}

func TestStartingPositionLegalMoveCount(t *testing.T) {
	pos := NewPosition()
	require.Len(t, GenerateLegalMoves(pos), 20)
}

func TestCastleRightsMonotonicallyDecrease(t *testing.T) {
	pos, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		moves := GenerateLegalMoves(pos)
		require.NotEmpty(t, moves)
		before := pos.CastleRights
		mv := moves[0]
		pos.MakeMove(&mv)
		require.Zero(t, pos.CastleRights&^before, "rights bits must only clear, never set")
		require.Equal(t, before&pos.CastleRights, pos.CastleRights, "castle rights must be a subset of the previous rights")
	}
}

func TestInsufficientMaterialIsDrawn(t *testing.T) {
	pos, err := FromFEN("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.DrawByMaterial())
	require.Equal(t, Drawn, pos.GameState())
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	pos := NewPosition()
	moves := []struct{ from, to string }{
		{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"},
	}
	for _, mv := range moves {
		from, to, err := ParseCoordinateMove(mv.from + mv.to)
		require.NoError(t, err)
		_, err = pos.Make(from, to, Queen)
		require.NoError(t, err)
	}
	require.Equal(t, WhiteMated, pos.GameState())
}
