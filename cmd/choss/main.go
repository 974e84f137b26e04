package main

import (
	"flag"
	"log"
	"os"

	"github.com/chossdev/choss/board"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	halved = flag.Bool("halved", false, "use the 5-wide halved layout")

	movegenRun      = flag.Bool("movegen", false, "run movegen mode")
	movegenFrom     = flag.String("movegen.from", "", "only list legal moves from this square (e.g. e6)")
	movegenDepth    = flag.Int("movegen.depth", 3, "statistics walk depth in movegen mode")
	movegenParallel = flag.Bool("movegen.parallel", true, "walk in parallel in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode (random walk)")
	stepPlies = flag.Int("step.plies", 200, "ply cap in step mode")
	stepSeed  = flag.Int64("step.seed", 0, "random seed in step mode")

	searchRun    = flag.Bool("search", false, "run search mode (engine self-play)")
	searchDepth  = flag.Int("search.depth", 3, "search depth in plies")
	searchMoves  = flag.Int("search.moves", 100, "move cap in search mode")
	searchRandom = flag.Bool("search.random", false, "play the random mover as Black")
	searchDebug  = flag.Bool("search.debug", false, "log search statistics")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	switch {
	case *movegenRun:
		return movegen(*movegenFrom, *movegenDepth, *movegenParallel)
	case *stepRun:
		return step(*stepPlies, *stepSeed)
	case *searchRun:
		return search(*searchDepth, *searchMoves, *searchRandom, *searchDebug)
	}
	flag.Usage()
	return nil
}

func newBoard() *board.Board {
	if *halved {
		return board.NewHalvedBoard()
	}
	return board.NewStandardBoard()
}
