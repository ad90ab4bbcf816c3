package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chessplusplus/corechess/internal/cache"
	"github.com/chessplusplus/corechess/internal/engine"
)

func TestSelectMoveReturnsALegalMove(t *testing.T) {
	pos := engine.NewPosition()
	c := cache.New(context.Background(), 1)
	s := NewSearcher(c, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result := s.SelectMove(ctx, pos)
	legal := engine.GenerateLegalMoves(pos)
	found := false
	for _, mv := range legal {
		if mv.From == result.Move.From && mv.To == result.Move.To {
			found = true
		}
	}
	require.True(t, found, "SelectMove must return one of the position's legal moves")
	require.GreaterOrEqual(t, result.Depth, 1)
}

func TestSelectMoveRespectsCancellation(t *testing.T) {
	pos := engine.NewPosition()
	c := cache.New(context.Background(), 1)
	s := NewSearcher(c, 64) // deep enough that it cannot finish before the deadline

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := s.SelectMove(ctx, pos)
	require.NotZero(t, result.Move.MovingKind, "must still return a move from whatever depth completed")
}

func TestFindsMateInOne(t *testing.T) {
	// White to move: Qh5-f7# is not available here; use a simple forced
	// back-rank mate instead. White rook a1 mates with Ra8, white king safe
	// on h1, black king on g8 hemmed in by its own pawns on f7/g7/h7.
	pos, err := engine.FromFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	c := cache.New(context.Background(), 1)
	s := NewSearcher(c, 3)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result := s.SelectMove(ctx, pos)
	pos.MakeMove(&result.Move)
	require.Equal(t, engine.BlackMated, pos.GameState())
}
