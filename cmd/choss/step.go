package main

import (
	"fmt"
	"log"
	"time"

	"github.com/chossdev/choss/board"
	"github.com/chossdev/choss/engine"
)

func step(plies int, seed int64) error {
	log.Println("============ step")
	var (
		timesMoves []time.Duration
		timesPlay  []time.Duration
	)
	b := newBoard()
	e := engine.NewEngine(&engine.Config{Seed: seed})
	s := board.SideWhite
	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		mvs := e.RandomMove(b, s)
		timesMoves = append(timesMoves, time.Since(t1))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[0]

		t1 = time.Now()
		b = b.Play(s, mv.From, mv.Move)
		timesPlay = append(timesPlay, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, s, board.Candidate{From: mv.From, Move: mv.Move})
		fmt.Println(draw(b))

		s = s.Opposite()
		if !b.State(s).IsRunning() {
			break
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var sum time.Duration
		for _, d := range ds {
			sum += d
		}
		if len(ds) == 0 {
			return 0
		}
		return sum / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.State(s))
	fmt.Println("moves:", avg(timesMoves))
	fmt.Println("play: ", avg(timesPlay))
	return nil
}
