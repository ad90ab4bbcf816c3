package engine

import "fmt"

const (
	innerBoardSize = 8
	outerBoardSize = 15
	totalBoardSize = outerBoardSize * outerBoardSize

	// zeroLocationRow/Col is the dead center of the padded frame. The
	// generator temporarily shifts whichever piece it is processing onto
	// this square so that every ray offset has a full innerBoardSize-1
	// squares of clearance in every direction, regardless of where the
	// piece actually sits on the real 8x8 board.
	zeroLocationRow = 7
	zeroLocationCol = 7
	zeroLocationIdx = zeroLocationRow*outerBoardSize + zeroLocationCol

	noSquare = -1
)

const (
	// CastleWhiteKing and friends are bits of Position.CastleRights.
	CastleWhiteKing uint8 = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
	castleAll = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// GameState classifies a position as still being played or already decided.
type GameState uint8

const (
	Active GameState = iota
	Drawn
	WhiteMated
	BlackMated
)

// Position is the mutable game state: a padded 15x15 mailbox plus the game
// bookkeeping (side to move, castling rights, en passant target, move
// clocks, Zobrist hash and repetition history) needed to make, unmake and
// score moves. All "identity" fields that must survive a board Shift —
// EnPassantSq, king locations looked up on demand — are stored as
// shift-invariant inner indices (0..63); only Position.grid is addressed by
// outer (padded) index.
type Position struct {
	grid   [totalBoardSize]Piece
	corner int // outer index of inner square 0 (board row 0, file 0)

	SideToMove    Color
	CastleRights  uint8
	EnPassantSq   int // inner index (0..63) or noSquare
	HalfMoveClock int
	FullMoveNum   int
	Hash          uint64

	WhiteCastled bool
	BlackCastled bool

	repetition [9]uint64
	repFilled  int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	pos, err := FromFEN(StartingFEN)
	if err != nil {
		panic(fmt.Sprintf("engine: starting FEN must parse: %v", err))
	}
	return pos
}

// newEmptyPosition allocates a Position with every cell sentinel-filled
// except a centered inner 8x8 window, ready for pieces to be placed by a
// FEN parser or test fixture.
func newEmptyPosition() *Position {
	p := &Position{}
	for i := range p.grid {
		p.grid[i] = sentinelPiece
	}
	// Center the inner board: outerBoardSize-innerBoardSize = 7 spare rows
	// and columns, split 3 above/left and 4 below/right.
	p.corner = 3*outerBoardSize + 3
	for r := 0; r < innerBoardSize; r++ {
		for c := 0; c < innerBoardSize; c++ {
			p.grid[p.corner+r*outerBoardSize+c] = emptyPiece
		}
	}
	p.EnPassantSq = noSquare
	return p
}

// Corner returns the padded-grid index of the inner board's top-left square
// (board row 0, file 0) under the position's current shift state.
func (p *Position) Corner() int { return p.corner }

// innerIndex converts a padded-grid (outer) index into the shift-invariant
// inner index (0..63) of the same logical square, given the corner the
// outer index was read under. Ported directly from the original's
// Board::convertOuterBoardIndex.
func innerIndex(outer, corner int) int {
	return ((outer-corner)/outerBoardSize)*innerBoardSize + (outer % outerBoardSize) - (corner % outerBoardSize)
}

// outerIndex is innerIndex's inverse: given a corner, it returns the
// padded-grid address of the logical square identified by inner.
func outerIndex(inner, corner int) int {
	return corner + (inner/innerBoardSize)*outerBoardSize + inner%innerBoardSize
}

// PieceAtInner returns the piece on the logical square identified by inner
// (0..63), under the position's current shift state.
func (p *Position) PieceAtInner(inner int) Piece {
	return p.grid[outerIndex(inner, p.corner)]
}

// setInner places piece on the logical square identified by inner.
func (p *Position) setInner(inner int, piece Piece) {
	p.grid[outerIndex(inner, p.corner)] = piece
}

// clone returns a deep value copy suitable for the generator's scratch
// shifting: grid is a plain array, so this is an ordinary struct copy, no
// aliasing with the receiver.
func (p *Position) clone() *Position {
	cp := *p
	return &cp
}

// Shift translates the inner 8x8 window within the padded frame by
// (colDelta, rowDelta) board cells, relocating every piece so each keeps
// its logical (file, board-row) identity, and refilling every cell that
// falls outside the new window with the sentinel piece. It is the
// generator's mechanism for placing whichever piece it is currently
// scanning onto the zero location so ray offsets have uniform clearance;
// it is exposed on Position because it is part of the documented, testable
// position API, not because make/unmake ever call it.
func (p *Position) Shift(colDelta, rowDelta int) {
	var saved [innerBoardSize * innerBoardSize]Piece
	for r := 0; r < innerBoardSize; r++ {
		for c := 0; c < innerBoardSize; c++ {
			saved[r*innerBoardSize+c] = p.grid[p.corner+r*outerBoardSize+c]
		}
	}
	newCornerRow := p.corner/outerBoardSize + rowDelta
	newCornerCol := p.corner%outerBoardSize + colDelta
	assertf(newCornerRow >= 0 && newCornerRow+innerBoardSize <= outerBoardSize, "shift: row out of padded frame")
	assertf(newCornerCol >= 0 && newCornerCol+innerBoardSize <= outerBoardSize, "shift: col out of padded frame")

	for i := range p.grid {
		p.grid[i] = sentinelPiece
	}
	p.corner = newCornerRow*outerBoardSize + newCornerCol
	for r := 0; r < innerBoardSize; r++ {
		for c := 0; c < innerBoardSize; c++ {
			p.grid[p.corner+r*outerBoardSize+c] = saved[r*innerBoardSize+c]
		}
	}
}

// shiftPieceToZero returns a scratch clone shifted so the piece at inner
// index `at` sits on the zero location, along with that scratch's new
// corner (needed by callers to convert candidate outer indices back to
// inner identities).
func (p *Position) shiftPieceToZero(at int) (*Position, int) {
	scratch := p.clone()
	row, col := at/innerBoardSize, at%innerBoardSize
	cornerRow, cornerCol := p.corner/outerBoardSize, p.corner%outerBoardSize
	scratch.Shift(zeroLocationCol-(cornerCol+col), zeroLocationRow-(cornerRow+row))
	return scratch, scratch.corner
}

// KingInner returns the inner-index location of color's king. Invariant
// B-1 (exactly one king per side, always) means this never fails for a
// reachable position; it panics via assertf otherwise.
func (p *Position) KingInner(color Color) int {
	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		pc := p.PieceAtInner(inner)
		if pc.Kind == King && pc.Color == color {
			return inner
		}
	}
	assertf(false, "no %s king on board", color)
	return noSquare
}

// DrawByMaterial reports whether neither side has enough material left to
// deliver checkmate: king vs king, king+minor vs king, or king+bishop vs
// king+bishop on like-colored squares.
func (p *Position) DrawByMaterial() bool {
	var others int
	var minors [2]int   // indexed by side: 0 = White, 1 = Black
	var isBishop [2]bool
	var bishopLight [2]bool
	for inner := 0; inner < innerBoardSize*innerBoardSize; inner++ {
		pc := p.PieceAtInner(inner)
		if pc.Kind == KindEmpty || pc.Kind == King {
			continue
		}
		side := 0
		if pc.Color == Black {
			side = 1
		}
		switch pc.Kind {
		case Knight:
			minors[side]++
		case Bishop:
			minors[side]++
			isBishop[side] = true
			rank, file := inner/innerBoardSize, inner%innerBoardSize
			bishopLight[side] = (rank+file)%2 == 0
		default:
			others++
		}
	}
	if others > 0 {
		return false
	}
	if minors[0]+minors[1] <= 1 {
		return true
	}
	if minors[0] == 1 && minors[1] == 1 && isBishop[0] && isBishop[1] && bishopLight[0] == bishopLight[1] {
		return true
	}
	return false
}

// GameState classifies the position using the terminal-detection order
// from §4.F: checkmate/stalemate first (they require legal move
// generation), then the drawing rules that do not.
func (p *Position) GameState() GameState {
	legal := GenerateLegalMoves(p)
	if len(legal) == 0 {
		if p.kingInCheck(p.SideToMove) {
			if p.SideToMove == White {
				return WhiteMated
			}
			return BlackMated
		}
		return Drawn
	}
	if p.HalfMoveClock >= 100 {
		return Drawn
	}
	if p.repFilled >= 9 && p.repetition[0] == p.repetition[4] && p.repetition[4] == p.repetition[8] {
		return Drawn
	}
	if p.DrawByMaterial() {
		return Drawn
	}
	return Active
}

func (p *Position) pushRepetition(h uint64) {
	copy(p.repetition[1:], p.repetition[:8])
	p.repetition[0] = h
	p.repFilled++
}

func (p *Position) popRepetition(prev [9]uint64, prevFilled int) {
	p.repetition = prev
	p.repFilled = prevFilled
}
