package engine

// castleSpec describes one of the four castling options: the squares the
// king and rook start and land on (inner indices), the squares that must
// be empty, and the squares (including the king's start) that must not be
// attacked for the move to be legal.
type castleSpec struct {
	right                    uint8
	kingFrom, kingTo         int
	rookFrom, rookTo         int
	mustBeEmpty, mustBeSafe  []int
}

var castleSpecs = []castleSpec{
	{ // White kingside
		right: CastleWhiteKing, kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61,
		mustBeEmpty: []int{61, 62}, mustBeSafe: []int{60, 61, 62},
	},
	{ // White queenside
		right: CastleWhiteQueen, kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59,
		mustBeEmpty: []int{57, 58, 59}, mustBeSafe: []int{58, 59, 60},
	},
	{ // Black kingside
		right: CastleBlackKing, kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5,
		mustBeEmpty: []int{5, 6}, mustBeSafe: []int{4, 5, 6},
	},
	{ // Black queenside
		right: CastleBlackQueen, kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3,
		mustBeEmpty: []int{1, 2, 3}, mustBeSafe: []int{2, 3, 4},
	},
}

// pseudoLegalMoves generates every move obeying piece movement rules
// without filtering for the mover's own king being left in check. It is
// the basis for both GenerateLegalMoves and the illegal-move diagnostics in
// makeunmake.go.
func pseudoLegalMoves(p *Position) []Move {
	var moves []Move
	color := p.SideToMove
	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		piece := p.PieceAtInner(inner)
		if piece.Color != color || piece.IsEmpty() || piece.IsSentinel() {
			continue
		}
		if piece.Kind == Pawn {
			moves = append(moves, pawnMoves(p, inner, piece)...)
			continue
		}
		moves = append(moves, rayMoves(p, inner, piece)...)
		if piece.Kind == King {
			moves = append(moves, castleMoves(p, color)...)
		}
	}
	return moves
}

// rayMoves generates moves for a non-pawn piece sitting at inner by
// temporarily shifting it to the zero location and walking its direction
// set with offsetIndex. The king's own vector set also carries the ±2
// castling offsets (§4.D), but those are only ever legal under castleMoves'
// full rights/path/attacked-square check, so they are skipped here to avoid
// generating an unvalidated "king jump" as an ordinary quiet move.
func rayMoves(p *Position, inner int, piece Piece) []Move {
	scratch, corner := p.shiftPieceToZero(inner)
	var moves []Move
	for _, d := range vectorSet(piece.Kind, piece.Color) {
		if piece.Kind == King && (d == 2 || d == -2) {
			continue
		}
		for step := 1; step < rayLength(piece.Kind); step++ {
			t := offsetIndex(d, zeroLocationIdx, step)
			if !inBoundsIdx(t) {
				break
			}
			target := scratch.grid[t]
			if target.IsSentinel() {
				break
			}
			if target.IsEmpty() {
				moves = append(moves, Move{From: inner, To: innerIndex(t, corner), MovingKind: piece.Kind, MovingColor: piece.Color})
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, Move{From: inner, To: innerIndex(t, corner), MovingKind: piece.Kind, MovingColor: piece.Color, CapturedKind: target.Kind, CapturedColor: target.Color})
			}
			break
		}
	}
	return moves
}

var promotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

func pawnPromotionRank(color Color) int {
	if color == White {
		return 0 // board row 0 == rank 8
	}
	return 7 // board row 7 == rank 1
}

func pawnStartRow(color Color) int {
	if color == White {
		return 6 // rank 2
	}
	return 1 // rank 7
}

func appendPawnMove(moves []Move, mv Move) []Move {
	toRow := mv.To / innerBoardSize
	if toRow == pawnPromotionRank(mv.MovingColor) {
		for _, k := range promotionKinds {
			withPromo := mv
			withPromo.Promotion = k
			moves = append(moves, withPromo)
		}
		return moves
	}
	return append(moves, mv)
}

// pawnMoves generates straight pushes, the double push, diagonal captures,
// en passant and promotion expansion for the pawn at inner.
func pawnMoves(p *Position, inner int, piece Piece) []Move {
	scratch, corner := p.shiftPieceToZero(inner)
	var moves []Move

	pushDir, diagDirs, doubleDir := 15, []int{14, 16}, 30
	if piece.Color == Black {
		pushDir, diagDirs, doubleDir = -15, []int{-14, -16}, -30
	}

	// straight push
	if t := offsetIndex(pushDir, zeroLocationIdx, 1); inBoundsIdx(t) && scratch.grid[t].IsEmpty() {
		moves = appendPawnMove(moves, Move{From: inner, To: innerIndex(t, corner), MovingKind: Pawn, MovingColor: piece.Color})

		// double push: only from the starting rank, and only if both
		// squares ahead are empty.
		if inner/innerBoardSize == pawnStartRow(piece.Color) {
			if t2 := offsetIndex(doubleDir, zeroLocationIdx, 1); inBoundsIdx(t2) && scratch.grid[t2].IsEmpty() {
				moves = append(moves, Move{From: inner, To: innerIndex(t2, corner), MovingKind: Pawn, MovingColor: piece.Color, IsDoublePush: true})
			}
		}
	}

	for _, d := range diagDirs {
		t := offsetIndex(d, zeroLocationIdx, 1)
		if !inBoundsIdx(t) {
			continue
		}
		target := scratch.grid[t]
		toInner := innerIndex(t, corner)
		if target.IsSentinel() {
			continue
		}
		if !target.IsEmpty() && target.Color != piece.Color {
			moves = appendPawnMove(moves, Move{From: inner, To: toInner, MovingKind: Pawn, MovingColor: piece.Color, CapturedKind: target.Kind, CapturedColor: target.Color})
			continue
		}
		if target.IsEmpty() && p.EnPassantSq == toInner {
			moves = append(moves, Move{From: inner, To: toInner, MovingKind: Pawn, MovingColor: piece.Color, IsEnPassant: true, CapturedKind: Pawn, CapturedColor: piece.Color.Opponent()})
		}
	}
	return moves
}

// castleMoves generates the (up to two) castling moves available to color,
// checking the rights bit, the empty-path requirement and that the king
// does not start, pass through, or land on an attacked square. §4.D.
func castleMoves(p *Position, color Color) []Move {
	var moves []Move
	for _, spec := range castleSpecs {
		isWhiteSpec := spec.right == CastleWhiteKing || spec.right == CastleWhiteQueen
		if isWhiteSpec != (color == White) {
			continue
		}
		if p.CastleRights&spec.right == 0 {
			continue
		}
		blocked := false
		for _, sq := range spec.mustBeEmpty {
			if !p.PieceAtInner(sq).IsEmpty() {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		attacked := false
		for _, sq := range spec.mustBeSafe {
			if p.squareAttacked(outerIndex(sq, p.corner), color.Opponent()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		moves = append(moves, Move{From: spec.kingFrom, To: spec.kingTo, MovingKind: King, MovingColor: color, IsCastle: true})
	}
	return moves
}

// GenerateLegalMoves returns every move available to the side to move in
// p, excluding any that would leave that side's own king in check. The
// legality filter is implemented by actually making and unmaking each
// pseudo-legal candidate rather than the original's temporary
// from/to-square swap, which is simpler and cannot leave stray aliasing
// behind (see DESIGN.md).
func GenerateLegalMoves(p *Position) []Move {
	candidates := pseudoLegalMoves(p)
	legal := make([]Move, 0, len(candidates))
	mover := p.SideToMove
	for _, mv := range candidates {
		p.MakeMove(&mv)
		if !p.kingInCheck(mover) {
			legal = append(legal, mv)
		}
		p.UnmakeMove(&mv)
	}
	return legal
}
