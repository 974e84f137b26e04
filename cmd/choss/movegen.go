package main

import (
	"fmt"

	"github.com/chossdev/choss/bench"
	"github.com/chossdev/choss/board"
	"github.com/chossdev/choss/position"
)

func movegen(from string, depth int, parallel bool) error {
	b := newBoard()
	fmt.Println(draw(b))
	fmt.Println()

	if from != "" {
		pos, err := position.NewPosFromNotation(from)
		if err != nil {
			return fmt.Errorf("parse square %q: %w", from, err)
		}
		sq, ok := b.Get(pos)
		if !ok {
			return fmt.Errorf("square %s is out of bounds", pos)
		}
		if sq.IsEmpty() {
			return fmt.Errorf("no piece on %s", pos)
		}
		mvs := b.FilterSafeMoves(sq.Side, pos, sq.Moves(b, pos))
		for _, mv := range mvs {
			fmt.Println(board.Candidate{From: pos, Move: mv})
		}
		fmt.Printf("%d legal moves for the %s %s on %s\n", len(mvs), sq.Side, sq.Piece, pos)
		return nil
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			fmt.Println(s)
		}
		close(done)
	}()
	bench.Perft(b, board.SideWhite, depth, parallel, true, out)
	close(out)
	<-done
	return nil
}
