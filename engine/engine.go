package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chossdev/choss/board"
)

const (
	// maxQuiescenceDepth is the hard floor of the capture-only
	// extension below depth 0. The extension normally ends earlier by
	// running out of captures.
	maxQuiescenceDepth = -16
)

// ScoreInfinite marks a forced win at the root.
var ScoreInfinite = math.Inf(1)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type Config struct {
	Logger func(...any)
	Debug  bool

	// Seed drives RandomMove's shuffle. Zero seeds from the wall clock.
	Seed int64
}

// Engine is a synchronous, CPU-bound move searcher. It holds no board
// state; a call that should not block the caller belongs on a
// background goroutine of the caller's own.
type Engine struct {
	logger func(...any)
	debug  bool
	rng    *rand.Rand

	nodes       uint64
	elapsedTime time.Duration
}

func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = DefaultLogger
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		logger: logger,
		debug:  cfg.Debug,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Nodes reports the node count of the last Search call.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// Search runs a depth-limited negamax with alpha-beta pruning and a
// capture-only quiescence extension, returning every legal move for s
// ranked best first. The list is empty exactly when s has no legal
// moves; Board.IsChecked then tells checkmate from stalemate.
//
// Root candidates are scored with a full window so the ranking is
// exact, then adjusted: a move leaving the opponent without legal
// replies scores +Inf when the opponent is checked and 0 on
// stalemate; otherwise a mobility bonus of at most one pawn,
// (own-opponent)/100 safe-move counts, is added.
func (e *Engine) Search(b *board.Board, s board.Side, depth int) []board.ScoredCandidate {
	e.nodes = 0
	start := time.Now()

	cands := orderByMoveValue(b, b.Moves(s, true))
	ranked := make([]board.ScoredCandidate, 0, len(cands))
	for _, c := range cands {
		next := b.Play(s, c.From, c.Move)
		score := -e.searchFrom(next, depth-1, -ScoreInfinite, ScoreInfinite, s.Opposite())

		ownCount := len(next.Moves(s, true))
		oppCount := len(next.Moves(s.Opposite(), true))
		if oppCount == 0 {
			if next.IsChecked(s.Opposite()) {
				score = ScoreInfinite
			} else {
				score = 0
			}
		} else {
			score += min(float64(ownCount)/100-float64(oppCount)/100, 1)
		}
		ranked = append(ranked, board.ScoredCandidate{Score: score, From: c.From, Move: c.Move})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	e.elapsedTime = time.Since(start)
	if e.debug {
		best := "-"
		if len(ranked) > 0 {
			best = fmt.Sprintf("%s (%s)", board.Candidate{From: ranked[0].From, Move: ranked[0].Move}, formatScore(ranked[0].Score))
		}
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d nodes:%d (%.0fn/s) t:%s best:%s",
				depth, e.nodes, float64(e.nodes)/(e.elapsedTime.Seconds()+1e-9), e.elapsedTime, best))
	}
	return ranked
}

// searchFrom evaluates the position for the side to move s. At
// positive depth it explores pseudo-legal moves; king safety is not
// re-checked below the root, a lost King surfaces through its
// material value instead. At depth zero and below only captures are
// explored, floored by the static evaluation since a side can always
// decline an exchange.
func (e *Engine) searchFrom(b *board.Board, depth int, alpha, beta float64, s board.Side) float64 {
	e.nodes++

	if depth <= maxQuiescenceDepth {
		return sideScore(b, s)
	}

	var cands []board.Candidate
	if depth <= 0 {
		cands = b.Takes(s, false)
	} else {
		cands = b.Moves(s, false)
	}
	cands = orderByMoveValue(b, cands)

	best := math.Inf(-1)
	for _, c := range cands {
		score := -e.searchFrom(b.Play(s, c.From, c.Move), depth-1, -beta, -alpha, s.Opposite())
		best = max(best, score)
		alpha = max(alpha, best)
		if alpha >= beta {
			return alpha
		}
	}
	if depth <= 0 {
		return max(best, sideScore(b, s))
	}
	return best
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func formatScore(s float64) string {
	if s == ScoreInfinite {
		return "+inf"
	}
	if s == -ScoreInfinite {
		return "-inf"
	}
	return fmt.Sprintf("%+.2f", s)
}
