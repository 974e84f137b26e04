package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/chossdev/choss/board"
	"github.com/chossdev/choss/engine"
)

func search(depth, moveCap int, vsRandom, debug bool) error {
	b := newBoard()
	e := engine.NewEngine(&engine.Config{Debug: debug})
	s := board.SideWhite
	fmt.Println(draw(b))

	var moveLog []string
	for turn := 0; turn < moveCap; turn++ {
		var ranked []board.ScoredCandidate
		if vsRandom && s == board.SideBlack {
			ranked = e.RandomMove(b, s)
		} else {
			ranked = e.Search(b, s, depth)
		}
		if len(ranked) == 0 {
			if b.IsChecked(s) {
				log.Printf("=============== %s is checkmated", s)
			} else {
				log.Println("=============== stalemate")
			}
			break
		}

		best := ranked[0]
		cand := board.Candidate{From: best.From, Move: best.Move}
		moveLog = append(moveLog, cand.Notation())
		b = b.Play(s, best.From, best.Move)

		fmt.Printf("\n>>> [#%d] %s: %s (%.2f)\n", turn/2+1, s, cand, best.Score)
		fmt.Println(draw(b))

		s = s.Opposite()
	}

	log.Println("=============== game ended")
	fmt.Println(strings.Join(moveLog, " "))
	return nil
}
