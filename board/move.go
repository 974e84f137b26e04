package board

import (
	"strings"

	"github.com/chossdev/choss/position"
)

type ActionType uint8

const (
	ActionUnknown ActionType = iota

	// ActionGo relocates the moving piece to Pos.
	ActionGo

	// ActionTake clears Pos without moving the moving piece. Used when
	// the captured square differs from the destination (en passant).
	ActionTake

	// ActionPromote replaces the moving piece with Promote in place.
	ActionPromote
)

type Action struct {
	Type    ActionType
	Pos     position.Pos
	Promote Piece
}

func Go(to position.Pos) Action {
	return Action{Type: ActionGo, Pos: to}
}

func Take(at position.Pos) Action {
	return Action{Type: ActionTake, Pos: at}
}

func Promote(p Piece) Action {
	return Action{Type: ActionPromote, Promote: p}
}

// Move is a non-empty ordered action sequence. Order is load-bearing:
// en passant is [Go(diagonal), Take(passed)], promotion is
// [Go(destination), Promote(kind)].
type Move []Action

// Destination returns the last Go target, i.e. where the moving piece
// ends up.
func (m Move) Destination() (position.Pos, bool) {
	var dst position.Pos
	var ok bool
	for _, a := range m {
		if a.Type == ActionGo {
			dst, ok = a.Pos, true
		}
	}
	return dst, ok
}

// Promotion returns the promoted-to piece, or PieceUnknown.
func (m Move) Promotion() Piece {
	for _, a := range m {
		if a.Type == ActionPromote {
			return a.Promote
		}
	}
	return PieceUnknown
}

func (m Move) IsEnPassant() bool {
	for _, a := range m {
		if a.Type == ActionTake {
			return true
		}
	}
	return false
}

func (m Move) Equal(o Move) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Candidate is a move together with its origin square.
type Candidate struct {
	From position.Pos
	Move Move
}

func (c Candidate) String() string {
	return c.Notation()
}

// Notation serializes the candidate as coordinate text: each Go action
// contributes origin+destination, each promotion appends "=<letter>",
// Take actions contribute nothing. Ranks use the raw index convention
// of position.Pos.
func (c Candidate) Notation() string {
	builder := strings.Builder{}
	for _, a := range c.Move {
		switch a.Type {
		case ActionGo:
			_, _ = builder.WriteString(c.From.Notation())
			_, _ = builder.WriteString(a.Pos.Notation())
		case ActionPromote:
			_, _ = builder.WriteString("=")
			_, _ = builder.WriteString(a.Promote.SymbolAlgebra())
		}
	}
	return builder.String()
}

// ScoredCandidate is a search result entry, ranked descending by Score.
type ScoredCandidate struct {
	Score float64
	From  position.Pos
	Move  Move
}
