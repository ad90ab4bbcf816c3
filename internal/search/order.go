package search

import (
	"sort"

	"github.com/chessplusplus/corechess/internal/engine"
)

// counterKey indexes the counter-move table by the piece kind that just
// moved and the inner square it landed on — ported from AI::orderMoveList,
// which keys on (pieceLookupTable[prev.fromPieceType] * 64) +
// convertOuterBoardIndex(prev.toSq, corner); using (kind, to-square)
// directly is the same key, without the multiply-and-pack.
type counterKey struct {
	kind engine.PieceKind
	to   int
}

func keyFor(prev engine.Move) counterKey {
	return counterKey{kind: prev.MovingKind, to: prev.To}
}

// orderMoves arranges moves for search: the cached principal-variation
// move first (if it's actually one of the legal candidates), then captures
// sorted by MVV-LVA (most valuable victim first, ties broken by least
// valuable attacker — matching the original's ascending-attacker-value
// tiebreak), then the counter-move to the opponent's previous move (if
// quiet and present), then every remaining quiet move in generation order.
func orderMoves(moves []engine.Move, pv engine.Move, havePV bool, prev engine.Move, havePrev bool, counter map[counterKey]engine.Move) []engine.Move {
	ordered := make([]engine.Move, 0, len(moves))
	used := make([]bool, len(moves))

	take := func(pred func(engine.Move) bool) {
		for i, mv := range moves {
			if used[i] {
				continue
			}
			if pred(mv) {
				ordered = append(ordered, mv)
				used[i] = true
				return
			}
		}
	}

	if havePV {
		take(func(mv engine.Move) bool { return mv.From == pv.From && mv.To == pv.To && mv.Promotion == pv.Promotion })
	}

	var captureIdx []int
	for i, mv := range moves {
		if !used[i] && mv.IsCapture() {
			captureIdx = append(captureIdx, i)
		}
	}
	sort.SliceStable(captureIdx, func(a, b int) bool {
		ma, mb := moves[captureIdx[a]], moves[captureIdx[b]]
		va := (engine.Piece{Kind: ma.CapturedKind}).Value()
		vb := (engine.Piece{Kind: mb.CapturedKind}).Value()
		if va != vb {
			return va > vb
		}
		return (engine.Piece{Kind: ma.MovingKind}).Value() < (engine.Piece{Kind: mb.MovingKind}).Value()
	})
	for _, i := range captureIdx {
		ordered = append(ordered, moves[i])
		used[i] = true
	}

	if havePrev {
		if cm, ok := counter[keyFor(prev)]; ok {
			take(func(mv engine.Move) bool { return mv.From == cm.From && mv.To == cm.To })
		}
	}

	for i, mv := range moves {
		if !used[i] {
			ordered = append(ordered, mv)
			used[i] = true
		}
	}
	return ordered
}
