package board

// State classifies the game from the perspective of the side to move.
type State uint8

const (
	StateUnknown State = iota

	// StateRunning is when the side to move has legal moves and is not in check.
	StateRunning

	// StateCheck is when the side to move is in check but has legal moves.
	StateCheck

	// StateCheckmate is when the side to move is in check with no legal moves.
	StateCheckmate

	// StateStalemate is when the side to move has no legal moves and is not in check.
	StateStalemate
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheck:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}

// State derives the game state for the side about to move.
func (b *Board) State(s Side) State {
	hasMoves := len(b.Moves(s, true)) > 0
	if b.IsChecked(s) {
		if !hasMoves {
			return StateCheckmate
		}
		return StateCheck
	}
	if !hasMoves {
		return StateStalemate
	}
	return StateRunning
}
