package engine

import (
	"errors"
	"fmt"
	"regexp"
)

// Move is a value record describing one ply: the logical (shift-invariant)
// from/to squares plus enough snapshot state to make unmake an exact
// inverse. Using plain inner-index integers instead of references into the
// padded grid (as the original's Move held raw Square pointers) sidesteps
// the aliasing the padded grid's physical shifting would otherwise create:
// a Move's From/To stay meaningful no matter how many times the board has
// been shifted since the move was generated.
type Move struct {
	From, To int // inner indices, 0..63

	MovingKind  PieceKind
	MovingColor Color

	CapturedKind  PieceKind
	CapturedColor Color

	Promotion PieceKind // KindEmpty if not a promotion

	IsCastle    bool
	IsEnPassant bool
	IsDoublePush bool

	// snapshot fields, restored verbatim by UnmakeMove
	prevCastleRights  uint8
	prevEnPassantSq   int
	prevHalfMoveClock int
	prevFullMoveNum   int
	prevHash          uint64
	prevWhiteCastled  bool
	prevBlackCastled  bool
	prevRepetition    [9]uint64
	prevRepFilled     int
}

// IsCapture reports whether the move removes an enemy piece, including en
// passant.
func (m Move) IsCapture() bool {
	return m.CapturedKind != KindEmpty || m.IsEnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != KindEmpty
}

func innerToCoord(inner int) string {
	rank := 8 - inner/innerBoardSize
	file := inner % innerBoardSize
	return fmt.Sprintf("%c%d", 'a'+file, rank)
}

func coordToInner(file, rank int) int {
	return (8-rank)*innerBoardSize + file
}

func (m Move) String() string {
	s := innerToCoord(m.From) + innerToCoord(m.To)
	switch m.Promotion {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}

// coordinateMoveRE is the exact grammar the original CLI validates user
// input against before attempting to parse it: two algebraic squares, or
// four raw digits (file/rank/file/rank, 1-indexed).
var coordinateMoveRE = regexp.MustCompile(`^(?:[a-h][1-8]){2}$|^[1-8]{4}$`)

// ErrBadMoveSyntax is returned by ParseCoordinateMove for input that does
// not match the accepted grammar at all (not merely illegal on the board).
var ErrBadMoveSyntax = errors.New("engine: move text does not match the accepted grammar")

// ParseCoordinateMove parses a user-supplied move string in either
// algebraic ("e2e4") or raw-digit ("5254") form into a from/to pair of
// inner indices. It does not consult the board: promotion, capture,
// castling and en passant detail is filled in once the move is checked for
// legality against a Position.
func ParseCoordinateMove(s string) (from, to int, err error) {
	if !coordinateMoveRE.MatchString(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadMoveSyntax, s)
	}
	parseSquare := func(fileCh, rankCh byte) int {
		file := int(fileCh - 'a')
		rank := int(rankCh - '0')
		return coordToInner(file, rank)
	}
	if s[0] >= '1' && s[0] <= '8' && len(s) == 4 && s[1] >= '1' && s[1] <= '8' {
		// four raw digits: file,rank,file,rank
		f1, r1, f2, r2 := int(s[0]-'1'), int(s[1]-'0'), int(s[2]-'1'), int(s[3]-'0')
		return coordToInner(f1, r1), coordToInner(f2, r2), nil
	}
	from = parseSquare(s[0], s[1])
	to = parseSquare(s[2], s[3])
	return from, to, nil
}

// offsetIndex computes the padded-grid index reached by walking `step`
// multiples of `offset` from `start`, ported directly from the original's
// Board::MoveGenerator::getOffsetIndex. Offsets use the original's
// encoding, in which a positive offset with a vertical component points
// toward board row 0 (rank 8); the formula turns such an offset into the
// real index delta on the 15-wide padded grid (15 becomes -15, 14 becomes
// -16, 16 becomes -14, while 1 stays +1), multiplied by step.
func offsetIndex(offset, start, step int) int {
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	base := step * (2*outerBoardSize*((abs+innerBoardSize-1)/outerBoardSize) - abs)
	if offset > 0 {
		return start - base
	}
	return start + base
}
