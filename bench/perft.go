package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chossdev/choss/board"
)

// Counters aggregates walk statistics. Capture, en passant, promotion
// and check counts classify the deepest-ply moves only, node counts
// cover leaf positions.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Promotions uint64
	Checks     uint64
}

// Perft walks every legal line from b to the given depth, counting
// leaf nodes and last-ply move classes, and reports a stat line on
// out.
func Perft(b *board.Board, s board.Side, depth int, parallel, verbose bool, out chan string) Counters {
	var c Counters

	var run perftFunc = runPerft
	if parallel {
		run = runPerftParallel
	}

	start := time.Now()
	run(b, s, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()), c.Captures, c.EnPassants, c.Promotions, c.Checks, elapsed.Seconds())
	}

	return c
}

type perftFunc func(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, c *Counters) uint64

func runPerft(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, cand := range b.Moves(s, true) {
		var child uint64
		bb := b.Play(s, cand.From, cand.Move)
		if d == 1 {
			child = 1
			c.Nodes++
			classify(b, bb, s, cand, c, false)
		} else {
			child = runPerft(bb, s.Opposite(), d-1, false, verbose, out, c)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", cand, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, cand := range b.Moves(s, true) {
		cand := cand
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Play(s, cand.From, cand.Move)
			if d == 1 {
				child = 1
				atomic.AddUint64(&c.Nodes, 1)
				classify(b, bb, s, cand, c, true)
			} else {
				child = runPerftParallel(bb, s.Opposite(), d-1, false, verbose, out, c)
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", cand, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// classify inspects a last-ply candidate: before is the position it
// was generated in, after the position it produced.
func classify(before, after *board.Board, s board.Side, cand board.Candidate, c *Counters, atomically bool) {
	var captures, enPassants, promotions, checks uint64

	if dst, ok := cand.Move.Destination(); ok {
		if sq, ok := before.Get(dst); ok && !sq.IsEmpty() {
			captures++
		}
	}
	if cand.Move.IsEnPassant() {
		captures++
		enPassants++
	}
	if cand.Move.Promotion() != board.PieceUnknown {
		promotions++
	}
	if after.IsChecked(s.Opposite()) {
		checks++
	}

	if atomically {
		atomic.AddUint64(&c.Captures, captures)
		atomic.AddUint64(&c.EnPassants, enPassants)
		atomic.AddUint64(&c.Promotions, promotions)
		atomic.AddUint64(&c.Checks, checks)
		return
	}
	c.Captures += captures
	c.EnPassants += enPassants
	c.Promotions += promotions
	c.Checks += checks
}
