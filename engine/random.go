package engine

import (
	"github.com/chossdev/choss/board"
)

// RandomMove returns s's legal candidates shuffled, all scored zero.
// Same list shape as Search so callers can swap the two movers.
func (e *Engine) RandomMove(b *board.Board, s board.Side) []board.ScoredCandidate {
	cands := b.Moves(s, true)
	e.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
	res := make([]board.ScoredCandidate, 0, len(cands))
	for _, c := range cands {
		res = append(res, board.ScoredCandidate{From: c.From, Move: c.Move})
	}
	return res
}
