// Package search implements iterative deepening over MTD(f) — repeated
// null-window alpha-beta passes narrowing a [lower, upper] score bracket —
// the way AI::iterativeDeepening/AI::MTD/AI::AlphaBeta do in the original
// engine. Search is single-threaded and cooperatively cancellable via
// context.Context, following the functional-options/context-cancellation
// idiom the teacher repo's internal/bot package uses for its own engine
// interface, adapted here to the padded-grid engine package instead of
// operating on board copies.
package search

import (
	"context"
	"math"

	"github.com/seekerror/logw"

	"github.com/chessplusplus/corechess/internal/cache"
	"github.com/chessplusplus/corechess/internal/engine"
)

const infinity = math.MaxInt32 / 2

// Searcher drives one search at a time over a shared transposition cache.
// Only the cache (internal/cache.Cache) is safe for concurrent access
// across Searchers; a single Searcher's counter-move table and node count
// are not (§1: no multithreaded search).
type Searcher struct {
	Cache       *cache.Cache
	MaxDepth    int
	counterMove map[counterKey]engine.Move
	Nodes       uint64
}

// NewSearcher builds a Searcher over an existing cache. maxDepth <= 0
// defaults to 7, matching the original's DEPTH constant.
func NewSearcher(c *cache.Cache, maxDepth int) *Searcher {
	if maxDepth <= 0 {
		maxDepth = 7
	}
	return &Searcher{Cache: c, MaxDepth: maxDepth, counterMove: make(map[counterKey]engine.Move)}
}

// Result reports the move iterative deepening settled on, its score at the
// deepest completed iteration, and that depth.
type Result struct {
	Move  engine.Move
	Score int
	Depth int
}

// SelectMove runs iterative deepening from depth 1 up to s.MaxDepth,
// driving one MTD(f) pass per depth, until ctx is cancelled or its
// deadline passes. A search cancelled mid-iteration is not an error: the
// best move and score from the last iteration that ran to completion is
// returned, same as the original's cooperative-cancellation contract (§5).
func (s *Searcher) SelectMove(ctx context.Context, pos *engine.Position) Result {
	legal := engine.GenerateLegalMoves(pos)
	if len(legal) == 0 {
		return Result{}
	}
	best := Result{Move: legal[0]}
	guess := engine.Evaluate(pos)

	for depth := 1; depth <= s.MaxDepth; depth++ {
		select {
		case <-ctx.Done():
			logw.Debugf(ctx, "search cancelled before depth %d, returning depth %d result", depth, best.Depth)
			return best
		default:
		}

		mv, score, cancelled := s.mtdf(ctx, pos, depth, guess)
		if cancelled {
			logw.Debugf(ctx, "search cancelled mid-depth %d, returning depth %d result", depth, best.Depth)
			return best
		}
		guess = score
		best = Result{Move: mv, Score: score, Depth: depth}
	}
	return best
}

// mtdf narrows [lower, upper] with repeated null-window alpha-beta calls
// until they meet, per AI::MTD.
func (s *Searcher) mtdf(ctx context.Context, pos *engine.Position, depth, firstGuess int) (engine.Move, int, bool) {
	upper, lower := infinity, -infinity
	guessMove, guessScore := engine.Move{}, firstGuess

	for upper > lower {
		beta := guessScore
		if lower+1 > beta {
			beta = lower + 1
		}
		mv, score, cancelled := s.alphaBeta(ctx, pos, beta-1, beta, depth, engine.Move{}, false)
		if cancelled {
			return guessMove, guessScore, true
		}
		guessMove, guessScore = mv, score
		if guessScore < beta {
			upper = guessScore
		} else {
			lower = guessScore
		}
	}
	return guessMove, guessScore, false
}

// alphaBeta searches depth plies below pos within [alpha, beta], returning
// the best move found, its score, and whether ctx was cancelled partway
// through. White maximizes, Black minimizes — following the original's
// explicit per-side branches rather than a negamax formulation — because
// Evaluate always scores from White's perspective.
func (s *Searcher) alphaBeta(ctx context.Context, pos *engine.Position, alpha, beta, depth int, prev engine.Move, havePrev bool) (engine.Move, int, bool) {
	select {
	case <-ctx.Done():
		return engine.Move{}, 0, true
	default:
	}
	s.Nodes++

	origAlpha, origBeta := alpha, beta

	var pvMove engine.Move
	havePV := false
	if entry, ok := s.Cache.Probe(pos.Hash); ok {
		havePV = true
		pvMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case cache.Exact:
				return entry.Move, entry.Score, false
			case cache.Lower:
				if entry.Score >= beta {
					return entry.Move, entry.Score, false
				}
			case cache.Upper:
				if entry.Score <= alpha {
					return entry.Move, entry.Score, false
				}
			}
		}
	}

	if depth == 0 {
		return engine.Move{}, engine.Evaluate(pos), false
	}

	moves := engine.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return engine.Move{}, engine.Evaluate(pos), false
	}
	moves = orderMoves(moves, pvMove, havePV, prev, havePrev, s.counterMove)

	maximizing := pos.SideToMove == engine.White
	bestMove := moves[0]
	bestScore := -infinity
	if !maximizing {
		bestScore = infinity
	}

	for _, mv := range moves {
		pos.MakeMove(&mv)
		_, childScore, cancelled := s.alphaBeta(ctx, pos, alpha, beta, depth-1, mv, true)
		pos.UnmakeMove(&mv)
		if cancelled {
			return engine.Move{}, 0, true
		}

		if maximizing {
			if childScore > bestScore {
				bestScore, bestMove = childScore, mv
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if childScore < bestScore {
				bestScore, bestMove = childScore, mv
			}
			if bestScore < beta {
				beta = bestScore
			}
		}

		if alpha >= beta {
			if havePrev && !mv.IsCapture() {
				s.counterMove[keyFor(prev)] = mv
			}
			break
		}
	}

	bound := cache.Exact
	switch {
	case bestScore <= origAlpha:
		bound = cache.Upper
	case bestScore >= origBeta:
		bound = cache.Lower
	}
	s.Cache.Store(pos.Hash, cache.Entry{Depth: depth, Score: bestScore, Bound: bound, Move: bestMove})

	return bestMove, bestScore, false
}
