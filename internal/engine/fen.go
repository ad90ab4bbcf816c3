package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceLetters = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// FromFEN parses Forsyth-Edwards Notation into a fresh Position. Only the
// six standard fields are accepted; this is a thin parsing contract for
// test harnesses and the CLI, not a user-facing interface (§1 places FEN
// parsing out of scope beyond that contract).
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("engine: FEN %q: want 6 space-separated fields, got %d", fen, len(fields))
	}

	p := newEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != innerBoardSize {
		return nil, fmt.Errorf("engine: FEN %q: want %d ranks, got %d", fen, innerBoardSize, len(ranks))
	}
	for rankIdx, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := fenPieceLetters[lower(ch)]
			if !ok {
				return nil, fmt.Errorf("engine: FEN %q: bad piece letter %q", fen, ch)
			}
			if file >= innerBoardSize {
				return nil, fmt.Errorf("engine: FEN %q: rank %d overflows the board", fen, rankIdx+1)
			}
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
			}
			p.setInner(rankIdx*innerBoardSize+file, Piece{Kind: kind, Color: color})
			file++
		}
		if file != innerBoardSize {
			return nil, fmt.Errorf("engine: FEN %q: rank %d has %d files, want %d", fen, rankIdx+1, file, innerBoardSize)
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("engine: FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastleRights |= CastleWhiteKing
			case 'Q':
				p.CastleRights |= CastleWhiteQueen
			case 'k':
				p.CastleRights |= CastleBlackKing
			case 'q':
				p.CastleRights |= CastleBlackQueen
			default:
				return nil, fmt.Errorf("engine: FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	p.EnPassantSq = noSquare
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, fmt.Errorf("engine: FEN %q: bad en passant field %q", fen, fields[3])
		}
		file := int(fields[3][0] - 'a')
		rank := int(fields[3][1] - '0')
		p.EnPassantSq = coordToInner(file, rank)
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("engine: FEN %q: bad half-move clock: %w", fen, err)
	}
	p.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("engine: FEN %q: bad full-move number: %w", fen, err)
	}
	p.FullMoveNum = fullMove

	p.Hash = p.ComputeHash()
	p.pushRepetition(p.Hash)
	return p, nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ToFEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 0; rank < innerBoardSize; rank++ {
		empties := 0
		for file := 0; file < innerBoardSize; file++ {
			pc := p.PieceAtInner(rank*innerBoardSize + file)
			if pc.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(pc.String())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if rank != innerBoardSize-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.CastleRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.CastleRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if p.CastleRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if p.CastleRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if p.CastleRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassantSq == noSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(innerToCoord(p.EnPassantSq))
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfMoveClock, p.FullMoveNum)
	return sb.String()
}
