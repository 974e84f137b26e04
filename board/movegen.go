package board

import (
	"github.com/chossdev/choss/position"
)

// knightOffsets keeps a fixed generation order so candidate lists, and
// therefore search ordering and ranked output, are reproducible.
var knightOffsets = []position.Pos{
	{X: -2, Y: -1}, {X: -1, Y: -2},
	{X: -2, Y: 1}, {X: 1, Y: -2},
	{X: 2, Y: -1}, {X: -1, Y: 2},
	{X: 2, Y: 1}, {X: 1, Y: 2},
}

// Moves generates the pseudo-legal moves for the piece on sq at pos:
// destinations reachable capturing or not. King safety is not
// considered here; see Board.FilterSafeMoves.
func (sq Square) Moves(b *Board, pos position.Pos) []Move {
	switch sq.Piece {
	case PiecePawn:
		return pawnMoves(b, pos, sq.Side, sq.Orientation, sq.Status)
	case PieceKnight:
		return knightMoves(b, pos, sq.Side)
	case PieceBishop:
		return losMoves(b, pos, sq.Side, position.Diagonals)
	case PieceRook:
		return losMoves(b, pos, sq.Side, position.Lines)
	case PieceQueen:
		return losMoves(b, pos, sq.Side, position.LinesOfSight)
	case PieceKing:
		return kingMoves(b, pos, sq.Side)
	default:
		return nil
	}
}

// Takes generates the capturing subset of Moves. Used for check
// detection and quiescence.
func (sq Square) Takes(b *Board, pos position.Pos) []Move {
	switch sq.Piece {
	case PiecePawn:
		return pawnTakes(b, pos, sq.Side, sq.Orientation)
	case PieceKnight:
		return knightTakes(b, pos, sq.Side)
	case PieceBishop:
		return losTakes(b, pos, sq.Side, position.Diagonals)
	case PieceRook:
		return losTakes(b, pos, sq.Side, position.Lines)
	case PieceQueen:
		return losTakes(b, pos, sq.Side, position.LinesOfSight)
	case PieceKing:
		return kingTakes(b, pos, sq.Side)
	default:
		return nil
	}
}

// pawnPromotions expands every move whose destination sits on the last
// rank along orientation into a Queen and a Knight promotion variant.
func pawnPromotions(b *Board, pos, orientation position.Pos, moves []Move) []Move {
	res := make([]Move, 0, len(moves))
	for _, mv := range moves {
		lastPos := pos
		for _, a := range mv {
			if a.Type == ActionGo {
				lastPos = a.Pos
			}
		}
		if _, ok := b.Get(lastPos.Add(orientation)); !ok {
			// one more step forward would leave the board
			for _, prom := range PawnPromoteCandidates {
				promoted := make(Move, len(mv), len(mv)+1)
				copy(promoted, mv)
				res = append(res, append(promoted, Promote(prom)))
			}
		} else {
			res = append(res, mv)
		}
	}
	return res
}

func pawnTakes(b *Board, pos position.Pos, s Side, orientation position.Pos) []Move {
	var res []Move
	for _, diagDir := range orientation.Neighbors() {
		diagPos := pos.Add(diagDir)
		diag, ok := b.Get(diagPos)
		if !ok {
			continue
		}
		if !diag.IsEmpty() {
			if diag.Side != s {
				res = append(res, Move{Go(diagPos)})
			}
			continue
		}
		// empty capture square: en passant if the square it passes
		// over holds an enemy pawn that just leaped
		passedPos := diagPos.Add(orientation.Mul(-1))
		passed, ok := b.Get(passedPos)
		if ok && !passed.IsEmpty() && passed.Side != s &&
			passed.Piece == PiecePawn && passed.Status == PawnJustLeaped {
			res = append(res, Move{Go(diagPos), Take(passedPos)})
		}
	}
	return pawnPromotions(b, pos, orientation, res)
}

func pawnMoves(b *Board, pos position.Pos, s Side, orientation position.Pos, status PawnStatus) []Move {
	var res []Move
	forwardPos := pos.Add(orientation)
	if forward, ok := b.Get(forwardPos); ok && forward.IsEmpty() {
		res = append(res, Move{Go(forwardPos)})
		if status == PawnCanLeap {
			leapPos := pos.Add(orientation.Mul(2))
			if leap, ok := b.Get(leapPos); ok && leap.IsEmpty() {
				res = append(res, Move{Go(leapPos)})
			}
		}
	}
	res = pawnPromotions(b, pos, orientation, res)
	return append(res, pawnTakes(b, pos, s, orientation)...)
}

func knightMoves(b *Board, pos position.Pos, s Side) []Move {
	var res []Move
	for _, off := range knightOffsets {
		to := pos.Add(off)
		sq, ok := b.Get(to)
		if !ok || (!sq.IsEmpty() && sq.Side == s) {
			continue
		}
		res = append(res, Move{Go(to)})
	}
	return res
}

func knightTakes(b *Board, pos position.Pos, s Side) []Move {
	var res []Move
	for _, off := range knightOffsets {
		to := pos.Add(off)
		sq, ok := b.Get(to)
		if !ok || sq.IsEmpty() || sq.Side == s {
			continue
		}
		res = append(res, Move{Go(to)})
	}
	return res
}

// losMoves slides along each direction until blocked; the blocker is
// included only when enemy-occupied.
func losMoves(b *Board, pos position.Pos, s Side, dirs []position.Pos) []Move {
	var res []Move
	for _, dir := range dirs {
		for cur := pos.Add(dir); ; cur = cur.Add(dir) {
			sq, ok := b.Get(cur)
			if !ok {
				break
			}
			if !sq.IsEmpty() {
				if sq.Side != s {
					res = append(res, Move{Go(cur)})
				}
				break
			}
			res = append(res, Move{Go(cur)})
		}
	}
	return res
}

func losTakes(b *Board, pos position.Pos, s Side, dirs []position.Pos) []Move {
	var res []Move
	for _, dir := range dirs {
		for cur := pos.Add(dir); ; cur = cur.Add(dir) {
			sq, ok := b.Get(cur)
			if !ok {
				break
			}
			if !sq.IsEmpty() {
				if sq.Side != s {
					res = append(res, Move{Go(cur)})
				}
				break
			}
		}
	}
	return res
}

func kingMoves(b *Board, pos position.Pos, s Side) []Move {
	var res []Move
	for _, dir := range position.LinesOfSight {
		to := pos.Add(dir)
		sq, ok := b.Get(to)
		if !ok || (!sq.IsEmpty() && sq.Side == s) {
			continue
		}
		res = append(res, Move{Go(to)})
	}
	return res
}

func kingTakes(b *Board, pos position.Pos, s Side) []Move {
	var res []Move
	for _, dir := range position.LinesOfSight {
		to := pos.Add(dir)
		sq, ok := b.Get(to)
		if !ok || sq.IsEmpty() || sq.Side == s {
			continue
		}
		res = append(res, Move{Go(to)})
	}
	return res
}
