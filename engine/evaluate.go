package engine

import (
	"sort"

	"github.com/chossdev/choss/board"
	"github.com/chossdev/choss/position"
)

// retaliationLossFactor discounts a material-winning move by most of
// the mover's own value, assuming the mover is lost to a recapture at
// 90%. Ordering heuristic only, never a reported score.
const retaliationLossFactor = 0.9

var materialPieceValue = [6 + 1]float64{
	board.PiecePawn:   1,
	board.PieceKnight: 3,
	board.PieceBishop: 3.5,
	board.PieceRook:   5,
	board.PieceQueen:  9,
	board.PieceKing:   1000,
}

func PieceValue(p board.Piece) float64 {
	return materialPieceValue[p]
}

// MaterialScore sums piece values over the board, positive for White
// and negative for Black.
func MaterialScore(b *board.Board) float64 {
	var score float64
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sq, _ := b.Get(position.Pos{X: x, Y: y})
			if sq.IsEmpty() {
				continue
			}
			if sq.Side == board.SideWhite {
				score += materialPieceValue[sq.Piece]
			} else {
				score -= materialPieceValue[sq.Piece]
			}
		}
	}
	return score
}

// sideScore is MaterialScore from s's perspective.
func sideScore(b *board.Board, s board.Side) float64 {
	if s == board.SideWhite {
		return MaterialScore(b)
	}
	return -MaterialScore(b)
}

// moveValue estimates a candidate's material delta, discounted by the
// expected retaliation when material is won.
func moveValue(b *board.Board, c board.Candidate) float64 {
	mover, _ := b.Get(c.From)
	var value float64
	for _, a := range c.Move {
		switch a.Type {
		case board.ActionGo, board.ActionTake:
			sq, ok := b.Get(a.Pos)
			if !ok || sq.IsEmpty() {
				continue
			}
			if sq.Side == mover.Side {
				value -= materialPieceValue[sq.Piece]
			} else {
				value += materialPieceValue[sq.Piece]
			}
		case board.ActionPromote:
			value += materialPieceValue[a.Promote]
		}
	}
	if value > 0 {
		value -= materialPieceValue[mover.Piece] * retaliationLossFactor
	}
	return value
}

// orderByMoveValue sorts candidates best-guess first. The sort is
// stable so equal-valued candidates keep generation order, keeping
// search results reproducible.
func orderByMoveValue(b *board.Board, cands []board.Candidate) []board.Candidate {
	type valued struct {
		cand  board.Candidate
		value float64
	}
	vs := make([]valued, len(cands))
	for i, c := range cands {
		vs[i] = valued{cand: c, value: moveValue(b, c)}
	}
	sort.SliceStable(vs, func(i, j int) bool {
		return vs[i].value > vs[j].value
	})
	for i, v := range vs {
		cands[i] = v.cand
	}
	return cands
}
