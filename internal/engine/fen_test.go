package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 5 10",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := FromFEN(fen)
			require.NoError(t, err)
			require.Equal(t, fen, pos.ToFEN())
		})
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	_, err := FromFEN("not a fen string")
	require.Error(t, err)
}

func TestParseCoordinateMove(t *testing.T) {
	from, to, err := ParseCoordinateMove("e2e4")
	require.NoError(t, err)
	wantFrom := coordToInner(4, 2)
	wantTo := coordToInner(4, 4)
	require.Equal(t, wantFrom, from)
	require.Equal(t, wantTo, to)

	_, _, err = ParseCoordinateMove("z9z9")
	require.ErrorIs(t, err, ErrBadMoveSyntax)
}
