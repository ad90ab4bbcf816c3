package engine

// castleSpecFor returns the castleSpec matching a castling Move's king
// from/to squares. Panics via assertf if mv.IsCastle is set but no spec
// matches, which would indicate a corrupt Move.
func castleSpecFor(mv Move) castleSpec {
	for _, s := range castleSpecs {
		if s.kingFrom == mv.From && s.kingTo == mv.To {
			return s
		}
	}
	assertf(false, "no castle spec for move %v", mv)
	return castleSpec{}
}

func updateCastleRightsAfterMove(rights uint8, mv Move) uint8 {
	if mv.MovingKind == King {
		if mv.MovingColor == White {
			rights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			rights &^= CastleBlackKing | CastleBlackQueen
		}
	}
	clearIfTouched := func(sq int, right uint8) {
		if mv.From == sq || mv.To == sq {
			rights &^= right
		}
	}
	clearIfTouched(56, CastleWhiteQueen) // a1
	clearIfTouched(63, CastleWhiteKing)  // h1
	clearIfTouched(0, CastleBlackQueen)  // a8
	clearIfTouched(7, CastleBlackKing)   // h8
	return rights
}

// enPassantCapturedInner returns the inner index of the pawn actually
// removed by an en passant capture: same file as the destination, same
// rank as the capturing pawn's origin.
func enPassantCapturedInner(mv Move) int {
	return (mv.From/innerBoardSize)*innerBoardSize + mv.To%innerBoardSize
}

// MakeMove applies mv unconditionally, filling in its snapshot fields so a
// later UnmakeMove(mv) is an exact inverse. It trusts mv to already be
// legal (as GenerateLegalMoves guarantees); user-facing input goes through
// Make instead, which validates first.
func (p *Position) MakeMove(mv *Move) {
	mv.prevCastleRights = p.CastleRights
	mv.prevEnPassantSq = p.EnPassantSq
	mv.prevHalfMoveClock = p.HalfMoveClock
	mv.prevFullMoveNum = p.FullMoveNum
	mv.prevHash = p.Hash
	mv.prevWhiteCastled = p.WhiteCastled
	mv.prevBlackCastled = p.BlackCastled
	mv.prevRepetition = p.repetition
	mv.prevRepFilled = p.repFilled

	moving := Piece{Kind: mv.MovingKind, Color: mv.MovingColor}

	p.Hash ^= hashPieceAt(mv.From, moving)
	p.setInner(mv.From, emptyPiece)

	if mv.IsCapture() {
		capturedInner := mv.To
		if mv.IsEnPassant {
			capturedInner = enPassantCapturedInner(*mv)
		}
		captured := Piece{Kind: mv.CapturedKind, Color: mv.CapturedColor}
		p.Hash ^= hashPieceAt(capturedInner, captured)
		p.setInner(capturedInner, emptyPiece)
	}

	placed := moving
	if mv.IsPromotion() {
		placed = Piece{Kind: mv.Promotion, Color: mv.MovingColor}
	}
	p.setInner(mv.To, placed)
	p.Hash ^= hashPieceAt(mv.To, placed)

	if mv.IsCastle {
		spec := castleSpecFor(*mv)
		rook := p.PieceAtInner(spec.rookFrom)
		p.Hash ^= hashPieceAt(spec.rookFrom, rook)
		p.setInner(spec.rookFrom, emptyPiece)
		p.setInner(spec.rookTo, rook)
		p.Hash ^= hashPieceAt(spec.rookTo, rook)
		if mv.MovingColor == White {
			p.WhiteCastled = true
		} else {
			p.BlackCastled = true
		}
	}

	p.Hash ^= zobristCastling[p.CastleRights]
	p.CastleRights = updateCastleRightsAfterMove(p.CastleRights, *mv)
	p.Hash ^= zobristCastling[p.CastleRights]

	if p.EnPassantSq != noSquare {
		p.Hash ^= zobristEnPassant[p.EnPassantSq%innerBoardSize]
	}
	if mv.IsDoublePush {
		p.EnPassantSq = (mv.From + mv.To) / 2
		p.Hash ^= zobristEnPassant[p.EnPassantSq%innerBoardSize]
	} else {
		p.EnPassantSq = noSquare
	}

	if mv.MovingKind == Pawn || mv.IsCapture() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if p.SideToMove == Black {
		p.FullMoveNum++
	}

	p.Hash ^= zobristSideToMove
	p.SideToMove = p.SideToMove.Opponent()

	p.pushRepetition(p.Hash)
	p.assertHashConsistent("MakeMove")
}

// UnmakeMove reverses the most recent MakeMove(mv) exactly, restoring every
// snapshot field captured at make time. Calling it with any Move other
// than the one just made is undefined (guarded by assertf under
// DebugAssertions via the post-restore hash check).
func (p *Position) UnmakeMove(mv *Move) {
	p.popRepetition(mv.prevRepetition, mv.prevRepFilled)
	p.SideToMove = mv.MovingColor
	p.FullMoveNum = mv.prevFullMoveNum
	p.HalfMoveClock = mv.prevHalfMoveClock
	p.EnPassantSq = mv.prevEnPassantSq
	p.CastleRights = mv.prevCastleRights
	p.WhiteCastled = mv.prevWhiteCastled
	p.BlackCastled = mv.prevBlackCastled
	p.Hash = mv.prevHash

	if mv.IsCastle {
		spec := castleSpecFor(*mv)
		rook := p.PieceAtInner(spec.rookTo)
		p.setInner(spec.rookTo, emptyPiece)
		p.setInner(spec.rookFrom, rook)
	}

	p.setInner(mv.From, Piece{Kind: mv.MovingKind, Color: mv.MovingColor})
	p.setInner(mv.To, emptyPiece)

	if mv.IsCapture() {
		capturedInner := mv.To
		if mv.IsEnPassant {
			capturedInner = enPassantCapturedInner(*mv)
		}
		p.setInner(capturedInner, Piece{Kind: mv.CapturedKind, Color: mv.CapturedColor})
	}

	p.assertHashConsistent("UnmakeMove")
}

// Make validates (from, to, promotion) against GenerateLegalMoves and, if
// legal, applies it and returns the fully-detailed Move. On rejection the
// position is left completely unchanged and the error wraps ErrIllegalMove
// with a best-effort IllegalMoveReason.
func (p *Position) Make(from, to int, promotion PieceKind) (Move, error) {
	legal := GenerateLegalMoves(p)
	for _, mv := range legal {
		if mv.From == from && mv.To == to && (!mv.IsPromotion() || mv.Promotion == promotion) {
			p.MakeMove(&mv)
			return mv, nil
		}
	}
	return Move{}, &IllegalMoveError{Reason: diagnoseIllegal(p, legal, from, to)}
}

// diagnoseIllegal produces a best-effort IllegalMoveReason for a rejected
// (from, to) pair, used only for error messages; it never changes which
// moves Make accepts.
func diagnoseIllegal(p *Position, legal []Move, from, to int) IllegalMoveReason {
	mover := p.PieceAtInner(from)
	if mover.IsEmpty() || mover.IsSentinel() {
		return ReasonNoPieceOnFrom
	}
	if mover.Color != p.SideToMove {
		return ReasonWrongColorToMove
	}
	dest := p.PieceAtInner(to)
	if !dest.IsEmpty() && dest.Color == mover.Color {
		return ReasonOwnColorOnDestination
	}
	if dest.Kind == King {
		return ReasonKingCaptureAttempted
	}
	for _, mv := range pseudoLegalMoves(p) {
		if mv.From == from && mv.To == to {
			if mv.IsCastle {
				return ReasonCastleThroughCheck
			}
			return ReasonWouldLeaveKingInCheck
		}
	}
	if mover.Kind == Pawn {
		return ReasonPawnMisuse
	}
	return ReasonBlockedRay
}
