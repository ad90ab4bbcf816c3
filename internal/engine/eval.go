package engine

// Evaluation weights and piece-square tables, ported from AI::evaluate and
// AI::initializeMap in the original source. Scores are centipawns from
// White's perspective for either side to move; Evaluate never negates
// for Black, and the search maximizes for White and minimizes for Black.
const (
	mobilityVal   = 1
	castledBonus  = 50
	rookOnSeventh = 10
	pawnOnSixth   = 70
	pawnOnSeventh = 100
	doubledPawnPenalty  = -40
	isolatedPawnPenalty = -50
	openFileBonus       = 20
	halfOpenFileBonus   = 10

	// MateScore is what Evaluate returns (negated when White is mated) for
	// a checkmated position, overriding any static score. It is the same at
	// every ply, so the search does not prefer a shorter mate over a longer
	// one.
	MateScore = 1_000_000
)

// pawnTable, knightTable etc. are indexed by inner index (row 0 == rank 8,
// row 7 == rank 1) and give White's positional bonus for a piece of that
// kind on that square. Black's table is the rank-mirror, computed by
// mirror().
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// kingMiddlegameTable is the only king table ever consulted by evaluate.
// The original source (AI::initializeMap) builds a king endgame table too
// and inserts it into the same std::unordered_multimap key as the
// middlegame table; every lookup uses equal_range(King).first, which is
// always the middlegame entry, so the endgame table is dead code in the
// original engine. Preserved here the same way: kingEndgameTable exists
// (§9 says reproduce the bug, not silently fix it) but nothing reads it.
var kingMiddlegameTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

//lint:ignore U1000 intentionally unused, see kingMiddlegameTable's comment.
var kingEndgameTable = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// mirror returns the rank-reversal of tbl (row i <-> row 7-i) written into
// a fresh array. The original's equivalent step,
// std::reverse_copy(begin(v), end(v), begin(v)), reverses a range into
// itself; since reverse_copy reads front-to-back while writing
// front-to-back into the very same buffer, it overwrites source elements
// before they are read and the result is not a reversal at all. §9 calls
// this out as a bug to fix rather than reproduce: mirror always targets a
// new array distinct from its input.
func mirror(tbl [64]int) [64]int {
	var out [64]int
	for row := 0; row < innerBoardSize; row++ {
		for col := 0; col < innerBoardSize; col++ {
			out[row*innerBoardSize+col] = tbl[(7-row)*innerBoardSize+col]
		}
	}
	return out
}

func pstValue(kind PieceKind, color Color, inner int) int {
	var tbl [64]int
	switch kind {
	case Pawn:
		tbl = pawnTable
	case Knight:
		tbl = knightTable
	case Bishop:
		tbl = bishopTable
	case Rook:
		tbl = rookTable
	case Queen:
		tbl = queenTable
	case King:
		tbl = kingMiddlegameTable
	default:
		return 0
	}
	if color == Black {
		tbl = mirror(tbl)
	}
	return tbl[inner]
}

// Evaluate scores p from White's perspective: positive favors White. It
// first checks terminal conditions (mate/stalemate/draw), which override
// any static score, then sums material, piece-square placement, mobility,
// castled bonus, rook/pawn advancement bonuses and pawn-structure
// penalties.
func Evaluate(p *Position) int {
	switch p.GameState() {
	case WhiteMated:
		return -MateScore
	case BlackMated:
		return MateScore
	case Drawn:
		return 0
	}

	score := 0
	filePawnCount := [2][innerBoardSize]int{} // [color][file]

	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		piece := p.PieceAtInner(inner)
		if piece.IsEmpty() || piece.IsSentinel() {
			continue
		}
		sign := 1
		if piece.Color == Black {
			sign = -1
		}
		score += sign * piece.Value()
		score += sign * pstValue(piece.Kind, piece.Color, inner)

		if piece.Kind == Pawn {
			file := inner % innerBoardSize
			colorIdx := 0
			if piece.Color == Black {
				colorIdx = 1
			}
			filePawnCount[colorIdx][file]++
			score += sign * pawnAdvancementBonus(piece.Color, inner)
		}
	}

	// Rook file bonuses need every pawn counted first, so they are scored
	// in a second pass once filePawnCount is complete.
	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		piece := p.PieceAtInner(inner)
		if piece.Kind != Rook {
			continue
		}
		sign := 1
		if piece.Color == Black {
			sign = -1
		}
		score += sign * rookFileBonus(p, inner, piece.Color, filePawnCount)
	}

	score += pawnStructurePenalty(filePawnCount)
	score += mobilityScore(p)

	if p.WhiteCastled {
		score += castledBonus
	}
	if p.BlackCastled {
		score -= castledBonus
	}

	return score
}

// pawnAdvancementBonus rewards pawns on the 6th/7th rank (White) or
// 3rd/2nd rank (Black's mirror), matching AI::evaluate's explicit
// per-color rank checks.
func pawnAdvancementBonus(color Color, inner int) int {
	row := inner / innerBoardSize
	if color == White {
		switch row {
		case 2: // rank 6
			return pawnOnSixth
		case 1: // rank 7
			return pawnOnSeventh
		}
		return 0
	}
	switch row {
	case 5: // rank 3, Black's mirror of the 6th
		return pawnOnSixth
	case 6: // rank 2, Black's mirror of the 7th
		return pawnOnSeventh
	}
	return 0
}

// rookFileBonus rewards a rook on the 7th (White)/2nd (Black) rank and on
// an open or half-open file.
func rookFileBonus(p *Position, inner int, color Color, filePawnCount [2][innerBoardSize]int) int {
	bonus := 0
	row := inner / innerBoardSize
	if (color == White && row == 1) || (color == Black && row == 6) {
		bonus += rookOnSeventh
	}
	file := inner % innerBoardSize
	own, enemy := 0, 1
	if color == Black {
		own, enemy = 1, 0
	}
	switch {
	case filePawnCount[own][file] == 0 && filePawnCount[enemy][file] == 0:
		bonus += openFileBonus
	case filePawnCount[own][file] == 0:
		bonus += halfOpenFileBonus
	}
	return bonus
}

// pawnStructurePenalty charges doubled and isolated pawns per file, for
// both colors, returning a White-perspective delta.
func pawnStructurePenalty(filePawnCount [2][innerBoardSize]int) int {
	score := 0
	for color := 0; color < 2; color++ {
		sign := 1
		if color == 1 {
			sign = -1
		}
		for file := 0; file < innerBoardSize; file++ {
			count := filePawnCount[color][file]
			if count > 1 {
				score += sign * doubledPawnPenalty * (count - 1)
			}
			if count > 0 {
				leftEmpty := file == 0 || filePawnCount[color][file-1] == 0
				rightEmpty := file == innerBoardSize-1 || filePawnCount[color][file+1] == 0
				if leftEmpty && rightEmpty {
					score += sign * isolatedPawnPenalty
				}
			}
		}
	}
	return score
}

// mobilityScore counts each side's pseudo-legal move count, reduced for
// knights whose destination square is attacked by an enemy pawn
// (reduceKnightMobilityScore in the original: a knight that can be
// recaptured immediately by a pawn is worth less mobility).
func mobilityScore(p *Position) int {
	white := pseudoMobility(p, White)
	black := pseudoMobility(p, Black)
	return mobilityVal * (white - black)
}

func pseudoMobility(p *Position, color Color) int {
	scratch := p.clone()
	scratch.SideToMove = color
	count := 0
	for _, mv := range pseudoLegalMoves(scratch) {
		count++
		if mv.MovingKind == Knight && knightMobilityPenalty(scratch, mv.To, color) {
			count--
		}
	}
	return count
}

// knightMobilityPenalty reports whether a knight landing on to would be
// attacked by an enemy pawn there, ported from reduceKnightMobilityScore's
// walk of the four pawn-attack offsets from the destination square.
func knightMobilityPenalty(p *Position, to int, color Color) bool {
	enemy := color.Opponent()
	idx := outerIndex(to, p.corner)
	for _, d := range pawnCaptureDirs(enemy) {
		t := offsetIndex(-d, idx, 1)
		if !inBoundsIdx(t) {
			continue
		}
		if pc := p.grid[t]; pc.Color == enemy && pc.Kind == Pawn {
			return true
		}
	}
	return false
}
