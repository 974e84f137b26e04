package board

import (
	"github.com/chossdev/choss/position"
)

// StandardBackRank is the classic eight-piece back rank.
var StandardBackRank = []Piece{
	PieceRook, PieceKnight, PieceBishop, PieceQueen,
	PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// HalvedBackRank is the reduced five-wide back rank.
var HalvedBackRank = []Piece{
	PieceRook, PieceKnight, PieceBishop, PieceKing, PieceQueen,
}

// NewBoardFromBackRank builds a len(backRank) x 8 board with the back
// rank mirrored for both sides: Black on ranks 0-1 (pawns oriented
// down-board, towards growing y), White on the last two ranks (pawns
// oriented up-board). All pawns start able to leap.
func NewBoardFromBackRank(backRank []Piece) *Board {
	width := len(backRank)
	b := New(width, 8)
	for x, p := range backRank {
		b.Set(position.Pos{X: x, Y: 0}, Square{Side: SideBlack, Piece: p})
		b.Set(position.Pos{X: x, Y: 1}, Square{
			Side:        SideBlack,
			Piece:       PiecePawn,
			Orientation: position.Pos{X: 0, Y: 1},
			Status:      PawnCanLeap,
		})
		b.Set(position.Pos{X: x, Y: b.height - 1}, Square{Side: SideWhite, Piece: p})
		b.Set(position.Pos{X: x, Y: b.height - 2}, Square{
			Side:        SideWhite,
			Piece:       PiecePawn,
			Orientation: position.Pos{X: 0, Y: -1},
			Status:      PawnCanLeap,
		})
	}
	return b
}

// NewStandardBoard builds the full 8-wide starting layout.
func NewStandardBoard() *Board {
	return NewBoardFromBackRank(StandardBackRank)
}

// NewHalvedBoard builds the reduced 5-wide starting layout.
func NewHalvedBoard() *Board {
	return NewBoardFromBackRank(HalvedBackRank)
}

// InvertSides mirrors the board vertically and swaps piece ownership,
// producing the same position with the colors exchanged. Pawn
// orientation flips with the mirror; leap status is preserved.
func InvertSides(b *Board) *Board {
	res := New(b.width, b.height)
	for i, sq := range b.squares {
		if sq.IsEmpty() {
			continue
		}
		pos := b.posAt(i)
		sq.Side = sq.Side.Opposite()
		sq.Orientation = position.Pos{X: sq.Orientation.X, Y: -sq.Orientation.Y}
		res.Set(position.Pos{X: pos.X, Y: b.height - 1 - pos.Y}, sq)
	}
	return res
}
