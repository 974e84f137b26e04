package board

import (
	"fmt"
	"strings"

	"github.com/chossdev/choss/position"
)

// Square is a single cell: empty, or holding one piece. Orientation
// and Status are only meaningful for pawns.
type Square struct {
	Side        Side
	Piece       Piece
	Orientation position.Pos
	Status      PawnStatus
}

func (sq Square) IsEmpty() bool {
	return sq.Piece == PieceUnknown
}

// Board is a width x height grid indexed by x + y*width. Play returns
// a fresh Board, so values already handed out never mutate under a
// caller or a concurrent search branch.
type Board struct {
	width, height int
	squares       []Square
}

func New(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		squares: make([]Square, width*height),
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) InBound(pos position.Pos) bool {
	return 0 <= pos.X && pos.X < b.width && 0 <= pos.Y && pos.Y < b.height
}

// Get returns the square at pos. The second return is false when pos
// is out of bounds; an in-bounds square may still be empty.
func (b *Board) Get(pos position.Pos) (Square, bool) {
	if !b.InBound(pos) {
		return Square{}, false
	}
	return b.squares[b.index(pos)], true
}

func (b *Board) Set(pos position.Pos, sq Square) {
	b.squares[b.index(pos)] = sq
}

func (b *Board) index(pos position.Pos) int {
	return pos.X + pos.Y*b.width
}

func (b *Board) posAt(i int) position.Pos {
	return position.Pos{X: i % b.width, Y: i / b.width}
}

func (b *Board) KingPos(s Side) (position.Pos, bool) {
	for i, sq := range b.squares {
		if sq.Side == s && sq.Piece == PieceKing {
			return b.posAt(i), true
		}
	}
	return position.Pos{}, false
}

// IsChecked reports whether s's King is attacked. A board with no King
// for s violates the caller's setup invariant and panics.
func (b *Board) IsChecked(s Side) bool {
	kingPos, ok := b.KingPos(s)
	if !ok {
		panic(fmt.Sprintf("board: no %s King on board", s))
	}
	for _, c := range b.Takes(s.Opposite(), false) {
		for _, a := range c.Move {
			switch a.Type {
			case ActionGo, ActionTake:
				if a.Pos == kingPos {
					return true
				}
			}
		}
	}
	return false
}

// FilterSafeMoves keeps only the candidate moves from pos that do not
// leave s's own King in check. This is what turns pseudo-legal into
// legal.
func (b *Board) FilterSafeMoves(s Side, pos position.Pos, moves []Move) []Move {
	safe := moves[:0:0]
	for _, mv := range moves {
		if !b.Play(s, pos, mv).IsChecked(s) {
			safe = append(safe, mv)
		}
	}
	return safe
}

// Takes enumerates every capture-only candidate for s. With safe set,
// candidates are filtered through FilterSafeMoves.
func (b *Board) Takes(s Side, safe bool) []Candidate {
	var res []Candidate
	for i, sq := range b.squares {
		if sq.IsEmpty() || sq.Side != s {
			continue
		}
		pos := b.posAt(i)
		moves := sq.Takes(b, pos)
		if safe {
			moves = b.FilterSafeMoves(s, pos, moves)
		}
		for _, mv := range moves {
			res = append(res, Candidate{From: pos, Move: mv})
		}
	}
	return res
}

// Moves enumerates every candidate for s, capturing or not.
func (b *Board) Moves(s Side, safe bool) []Candidate {
	var res []Candidate
	for i, sq := range b.squares {
		if sq.IsEmpty() || sq.Side != s {
			continue
		}
		pos := b.posAt(i)
		moves := sq.Moves(b, pos)
		if safe {
			moves = b.FilterSafeMoves(s, pos, moves)
		}
		for _, mv := range moves {
			res = append(res, Candidate{From: pos, Move: mv})
		}
	}
	return res
}

// beginTurn expires en passant eligibility: a pawn of s that leaped on
// s's previous move stops being capturable en passant now.
func (b *Board) beginTurn(s Side) {
	for i, sq := range b.squares {
		if sq.Side == s && sq.Piece == PiecePawn && sq.Status == PawnJustLeaped {
			sq.Status = PawnCannotLeap
			b.squares[i] = sq
		}
	}
}

// moved updates the piece state at target after a relocation from
// start. A pawn that advanced exactly two squares along its
// orientation becomes JustLeaped; any other pawn move forfeits
// leaping. Non-pawns are unaffected.
func (b *Board) moved(start, target position.Pos) {
	sq := b.squares[b.index(target)]
	if sq.Piece != PiecePawn {
		return
	}
	if start.Add(sq.Orientation.Mul(2)) == target {
		sq.Status = PawnJustLeaped
	} else {
		sq.Status = PawnCannotLeap
	}
	b.squares[b.index(target)] = sq
}

// Play applies mv for s from pos and returns the resulting Board. The
// receiver is left untouched. Playing from an empty square is a
// caller precondition violation and panics; candidates produced by
// Moves/Takes are always playable.
func (b *Board) Play(s Side, pos position.Pos, mv Move) *Board {
	mover, ok := b.Get(pos)
	if !ok || mover.IsEmpty() {
		panic(fmt.Sprintf("board: play from empty square %s", pos))
	}
	res := b.Clone()
	res.beginTurn(s)
	lastPos := pos
	for _, a := range mv {
		switch a.Type {
		case ActionGo:
			res.Set(lastPos, Square{})
			res.Set(a.Pos, mover)
			res.moved(lastPos, a.Pos)
			lastPos = a.Pos
		case ActionTake:
			res.Set(a.Pos, Square{})
		case ActionPromote:
			res.Set(lastPos, Square{Side: mover.Side, Piece: a.Promote})
		}
	}
	return res
}

func (b *Board) Clone() *Board {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)
	return &Board{
		width:   b.width,
		height:  b.height,
		squares: squares,
	}
}

// Dump renders a plain-text grid, rank 0 on top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for i, sq := range b.squares {
		if i%b.width == 0 && i != 0 {
			_, _ = builder.WriteRune('\n')
		}
		if sq.IsEmpty() {
			_, _ = builder.WriteString("· ")
		} else {
			_, _ = builder.WriteString(sq.Piece.SymbolUnicode(sq.Side) + " ")
		}
	}
	return builder.String()
}
