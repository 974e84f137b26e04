package position

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// Lines are the four orthogonal unit directions.
	Lines = []Pos{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	// Diagonals are the four diagonal unit directions.
	Diagonals = []Pos{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	// LinesOfSight are all eight principal unit directions.
	LinesOfSight = []Pos{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
)

// Pos is a file/rank coordinate pair. It doubles as a direction vector.
type Pos struct {
	X, Y int
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Pos{}, ErrInvalidNotation
	}
	x := int(n[0] - 'a')
	if x < 0 || x >= 26 {
		return Pos{}, ErrInvalidNotation
	}
	y := int(n[1] - '0')
	if y < 0 || y > 9 {
		return Pos{}, ErrInvalidNotation
	}
	return Pos{x, y}, nil
}

func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y}
}

func (p Pos) Mul(k int) Pos {
	return Pos{p.X * k, p.Y * k}
}

// Neighbors returns the two diagonal directions adjacent to a purely
// orthogonal or purely diagonal unit direction. For a pawn's forward
// orientation these are its two capture directions.
func (p Pos) Neighbors() [2]Pos {
	switch {
	case p.X == 0: // vertical
		return [2]Pos{{1, p.Y}, {-1, p.Y}}
	case p.Y == 0: // horizontal
		return [2]Pos{{p.X, 1}, {p.X, -1}}
	default: // diagonal
		return [2]Pos{{p.X, 0}, {0, p.Y}}
	}
}

func (p Pos) String() string {
	return p.Notation()
}

// Notation renders the file as a letter and the rank as its raw index.
// Ranks are deliberately not 1-indexed.
func (p Pos) Notation() string {
	return p.NotationComponentX() + p.NotationComponentY()
}

func (p Pos) NotationComponentX() string {
	if p.X < 0 || p.X >= 26 {
		return ""
	}
	return string(rune('a' + p.X))
}

func (p Pos) NotationComponentY() string {
	if p.Y < 0 {
		return ""
	}
	return strconv.Itoa(p.Y)
}
