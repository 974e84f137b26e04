package board

import (
	"testing"

	"github.com/chossdev/choss/position"
)

func TestStandardBoardOpeningMoves(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	for _, s := range []Side{SideWhite, SideBlack} {
		// 16 pawn single/double steps + 4 knight moves
		if got := len(b.Moves(s, true)); got != 20 {
			t.Errorf("unexpected move count for %s: got=%d want=%d", s, got, 20)
		}
		if got := len(b.Takes(s, true)); got != 0 {
			t.Errorf("unexpected take count for %s: got=%d want=%d", s, got, 0)
		}
		if b.IsChecked(s) {
			t.Errorf("unexpected check for %s", s)
		}
	}
}

func TestGetBounds(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	tests := []struct {
		name    string
		pos     position.Pos
		inBound bool
	}{
		{name: "inside", pos: position.Pos{X: 0, Y: 0}, inBound: true},
		{name: "last cell", pos: position.Pos{X: 7, Y: 7}, inBound: true},
		{name: "negative x", pos: position.Pos{X: -1, Y: 0}, inBound: false},
		{name: "negative y", pos: position.Pos{X: 0, Y: -1}, inBound: false},
		{name: "x too large", pos: position.Pos{X: 8, Y: 0}, inBound: false},
		{name: "y too large", pos: position.Pos{X: 0, Y: 8}, inBound: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := b.InBound(tt.pos); got != tt.inBound {
				t.Errorf("unexpected InBound: got=%v want=%v", got, tt.inBound)
			}
			if _, ok := b.Get(tt.pos); ok != tt.inBound {
				t.Errorf("unexpected Get ok: got=%v want=%v", ok, tt.inBound)
			}
		})
	}
}

func TestPlayLeapStatus(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()

	leaped := b.Play(SideWhite, position.Pos{X: 4, Y: 6}, Move{Go(position.Pos{X: 4, Y: 4})})
	sq, _ := leaped.Get(position.Pos{X: 4, Y: 4})
	if sq.Status != PawnJustLeaped {
		t.Errorf("unexpected status after leap: got=%s want=%s", sq.Status, PawnJustLeaped)
	}

	stepped := b.Play(SideWhite, position.Pos{X: 4, Y: 6}, Move{Go(position.Pos{X: 4, Y: 5})})
	sq, _ = stepped.Get(position.Pos{X: 4, Y: 5})
	if sq.Status != PawnCannotLeap {
		t.Errorf("unexpected status after step: got=%s want=%s", sq.Status, PawnCannotLeap)
	}

	// the original board is untouched
	sq, _ = b.Get(position.Pos{X: 4, Y: 6})
	if sq.IsEmpty() || sq.Status != PawnCanLeap {
		t.Errorf("receiver board mutated: got=%+v", sq)
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	b = b.Play(SideWhite, position.Pos{X: 4, Y: 6}, Move{Go(position.Pos{X: 4, Y: 4})})
	b = b.Play(SideBlack, position.Pos{X: 0, Y: 1}, Move{Go(position.Pos{X: 0, Y: 2})})
	b = b.Play(SideWhite, position.Pos{X: 4, Y: 4}, Move{Go(position.Pos{X: 4, Y: 3})})
	b = b.Play(SideBlack, position.Pos{X: 3, Y: 1}, Move{Go(position.Pos{X: 3, Y: 3})})

	want := Move{Go(position.Pos{X: 3, Y: 2}), Take(position.Pos{X: 3, Y: 3})}
	if !hasCandidate(b.Moves(SideWhite, true), position.Pos{X: 4, Y: 3}, want) {
		t.Fatalf("en passant candidate missing: want=%v", Candidate{From: position.Pos{X: 4, Y: 3}, Move: want})
	}
	if !hasCandidate(b.Takes(SideWhite, true), position.Pos{X: 4, Y: 3}, want) {
		t.Fatalf("en passant take missing: want=%v", Candidate{From: position.Pos{X: 4, Y: 3}, Move: want})
	}

	captured := b.Play(SideWhite, position.Pos{X: 4, Y: 3}, want)
	if sq, _ := captured.Get(position.Pos{X: 3, Y: 3}); !sq.IsEmpty() {
		t.Errorf("passed pawn not removed: got=%+v", sq)
	}
	if sq, _ := captured.Get(position.Pos{X: 3, Y: 2}); sq.Side != SideWhite || sq.Piece != PiecePawn {
		t.Errorf("capturing pawn misplaced: got=%+v", sq)
	}
	if sq, _ := captured.Get(position.Pos{X: 4, Y: 3}); !sq.IsEmpty() {
		t.Errorf("origin square not cleared: got=%+v", sq)
	}

	// declining the capture for one ply expires it
	declined := b.Play(SideWhite, position.Pos{X: 7, Y: 6}, Move{Go(position.Pos{X: 7, Y: 5})})
	declined = declined.Play(SideBlack, position.Pos{X: 0, Y: 2}, Move{Go(position.Pos{X: 0, Y: 3})})
	if sq, _ := declined.Get(position.Pos{X: 3, Y: 3}); sq.Status != PawnCannotLeap {
		t.Errorf("unexpected status after opponent ply: got=%s want=%s", sq.Status, PawnCannotLeap)
	}
	if hasCandidate(declined.Moves(SideWhite, true), position.Pos{X: 4, Y: 3}, want) {
		t.Error("en passant candidate still offered after expiry")
	}
}

func TestPromotionVariants(t *testing.T) {
	t.Parallel()
	b := New(8, 8)
	b.Set(position.Pos{X: 7, Y: 7}, Square{Side: SideWhite, Piece: PieceKing})
	b.Set(position.Pos{X: 7, Y: 0}, Square{Side: SideBlack, Piece: PieceKing})
	b.Set(position.Pos{X: 0, Y: 1}, Square{
		Side:        SideWhite,
		Piece:       PiecePawn,
		Orientation: position.Pos{X: 0, Y: -1},
		Status:      PawnCannotLeap,
	})
	b.Set(position.Pos{X: 1, Y: 0}, Square{Side: SideBlack, Piece: PieceRook})

	sq, _ := b.Get(position.Pos{X: 0, Y: 1})
	mvs := sq.Moves(b, position.Pos{X: 0, Y: 1})
	if len(mvs) != 4 {
		t.Fatalf("unexpected variant count: got=%d want=%d (%v)", len(mvs), 4, mvs)
	}
	wantAdvance := [2]Move{
		{Go(position.Pos{X: 0, Y: 0}), Promote(PieceQueen)},
		{Go(position.Pos{X: 0, Y: 0}), Promote(PieceKnight)},
	}
	wantCapture := [2]Move{
		{Go(position.Pos{X: 1, Y: 0}), Promote(PieceQueen)},
		{Go(position.Pos{X: 1, Y: 0}), Promote(PieceKnight)},
	}
	for i, want := range wantAdvance {
		if !mvs[i].Equal(want) {
			t.Errorf("unexpected advance variant %d: got=%v want=%v", i, mvs[i], want)
		}
	}
	for i, want := range wantCapture {
		if !mvs[2+i].Equal(want) {
			t.Errorf("unexpected capture variant %d: got=%v want=%v", i, mvs[2+i], want)
		}
	}
	for _, mv := range mvs {
		switch p := mv.Promotion(); p {
		case PieceQueen, PieceKnight:
		default:
			t.Errorf("unexpected promotion piece: got=%s", p)
		}
	}

	promoted := b.Play(SideWhite, position.Pos{X: 0, Y: 1}, wantAdvance[0])
	if sq, _ := promoted.Get(position.Pos{X: 0, Y: 0}); sq.Side != SideWhite || sq.Piece != PieceQueen {
		t.Errorf("unexpected promoted square: got=%+v", sq)
	}
}

func TestIsCheckedDetectsAttack(t *testing.T) {
	t.Parallel()
	b := New(8, 8)
	b.Set(position.Pos{X: 0, Y: 0}, Square{Side: SideBlack, Piece: PieceKing})
	b.Set(position.Pos{X: 7, Y: 7}, Square{Side: SideWhite, Piece: PieceKing})
	b.Set(position.Pos{X: 0, Y: 5}, Square{Side: SideWhite, Piece: PieceRook})

	if !b.IsChecked(SideBlack) {
		t.Error("expected Black to be checked by the rook")
	}
	if b.IsChecked(SideWhite) {
		t.Error("unexpected check on White")
	}
}

func TestFilterSafeMovesKeepsKingSafe(t *testing.T) {
	t.Parallel()
	// Black bishop pinned against its king by a rook on the same file.
	b := New(8, 8)
	b.Set(position.Pos{X: 4, Y: 0}, Square{Side: SideBlack, Piece: PieceKing})
	b.Set(position.Pos{X: 4, Y: 2}, Square{Side: SideBlack, Piece: PieceBishop})
	b.Set(position.Pos{X: 4, Y: 6}, Square{Side: SideWhite, Piece: PieceRook})
	b.Set(position.Pos{X: 0, Y: 7}, Square{Side: SideWhite, Piece: PieceKing})

	pos := position.Pos{X: 4, Y: 2}
	sq, _ := b.Get(pos)
	if got := b.FilterSafeMoves(SideBlack, pos, sq.Moves(b, pos)); len(got) != 0 {
		t.Errorf("pinned bishop has safe moves: got=%v", got)
	}
}

func TestStateCheckmate(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	b = b.Play(SideWhite, position.Pos{X: 5, Y: 6}, Move{Go(position.Pos{X: 5, Y: 5})})
	b = b.Play(SideBlack, position.Pos{X: 4, Y: 1}, Move{Go(position.Pos{X: 4, Y: 3})})
	b = b.Play(SideWhite, position.Pos{X: 6, Y: 6}, Move{Go(position.Pos{X: 6, Y: 4})})
	b = b.Play(SideBlack, position.Pos{X: 3, Y: 0}, Move{Go(position.Pos{X: 7, Y: 4})})

	if !b.IsChecked(SideWhite) {
		t.Fatal("expected White to be checked")
	}
	if got := len(b.Moves(SideWhite, true)); got != 0 {
		t.Fatalf("unexpected legal moves: got=%d want=%d", got, 0)
	}
	if got := b.State(SideWhite); got != StateCheckmate {
		t.Errorf("unexpected state: got=%s want=%s", got, StateCheckmate)
	}
}

func TestStateStalemate(t *testing.T) {
	t.Parallel()
	b := New(8, 8)
	b.Set(position.Pos{X: 0, Y: 0}, Square{Side: SideBlack, Piece: PieceKing})
	b.Set(position.Pos{X: 2, Y: 1}, Square{Side: SideWhite, Piece: PieceQueen})
	b.Set(position.Pos{X: 4, Y: 4}, Square{Side: SideWhite, Piece: PieceKing})

	if b.IsChecked(SideBlack) {
		t.Fatal("unexpected check on Black")
	}
	if got := len(b.Moves(SideBlack, true)); got != 0 {
		t.Fatalf("unexpected legal moves: got=%d want=%d", got, 0)
	}
	if got := b.State(SideBlack); got != StateStalemate {
		t.Errorf("unexpected state: got=%s want=%s", got, StateStalemate)
	}
}

func TestStateRunning(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	if got := b.State(SideWhite); got != StateRunning {
		t.Errorf("unexpected state: got=%s want=%s", got, StateRunning)
	}
}

func TestIsCheckedPanicsWithoutKing(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(8, 8).IsChecked(SideWhite)
}

func TestPlayPanicsOnEmptyOrigin(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewStandardBoard().Play(SideWhite, position.Pos{X: 4, Y: 4}, Move{Go(position.Pos{X: 4, Y: 3})})
}

func hasCandidate(cands []Candidate, from position.Pos, mv Move) bool {
	for _, c := range cands {
		if c.From == from && c.Move.Equal(mv) {
			return true
		}
	}
	return false
}
