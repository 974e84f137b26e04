package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
// Rook and Bishop promotions are not offered.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceKnight}

// PawnStatus tracks a pawn's leap eligibility. Transitions are
// monotonic: CanLeap -> JustLeaped -> CannotLeap, never back.
type PawnStatus uint8

const (
	PawnCanLeap PawnStatus = iota
	PawnJustLeaped
	PawnCannotLeap
)

func (ps PawnStatus) String() string {
	switch ps {
	case PawnCanLeap:
		return "CanLeap"
	case PawnJustLeaped:
		return "JustLeaped"
	case PawnCannotLeap:
		return "CannotLeap"
	default:
		return ""
	}
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra() string {
	switch p {
	case PiecePawn:
		return "p"
	case PieceKnight:
		return "N"
	case PieceBishop:
		return "B"
	case PieceRook:
		return "R"
	case PieceQueen:
		return "Q"
	case PieceKing:
		return "K"
	default:
		return ""
	}
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	default:
		return ""
	}
}
