package game

// Outcome is the terminal result of a round.
type Outcome int

const (
	PlayerBlackjack Outcome = iota
	DealerBlackjack
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	Push
)

// String returns the outcome identifier, used in structured logs.
func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "player_blackjack"
	case DealerBlackjack:
		return "dealer_blackjack"
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Banner returns the line announced to the player when the round ends.
func (o Outcome) Banner() string {
	switch o {
	case PlayerBlackjack:
		return "BLACKJACK! YOU WIN!"
	case DealerBlackjack:
		return "BLACKJACK! DEALER WINS!"
	case PlayerBust:
		return "BUST! DEALER WINS!"
	case DealerBust:
		return "DEALER BUSTS! YOU WIN!"
	case PlayerWin:
		return "YOU WIN!"
	case DealerWin:
		return "DEALER WINS!"
	case Push:
		return "PUSH!"
	default:
		return ""
	}
}

// PlayerWon reports whether the round went to the player.
func (o Outcome) PlayerWon() bool {
	return o == PlayerBlackjack || o == DealerBust || o == PlayerWin
}
