package game

// Score holds a player's trick points plus pending marriage points. Pending
// points only count once the player wins a trick.
type Score struct {
	Direct  int
	Pending int
}

// Add returns the sum of two scores, direct and pending separately.
func (s Score) Add(o Score) Score {
	return Score{Direct: s.Direct + o.Direct, Pending: s.Pending + o.Pending}
}

// RedeemPending folds the pending points into the direct points.
func (s Score) RedeemPending() Score {
	return Score{Direct: s.Direct + s.Pending}
}

// marriageScore returns the pending points a marriage declaration is worth:
// 40 for the royal (trump) marriage, 20 otherwise.
func marriageScore(s, trump Suit) Score {
	if s == trump {
		return Score{Pending: 40}
	}
	return Score{Pending: 20}
}

// WinPoints is the threshold of direct points that ends the game.
const WinPoints = 66

// gamePointsFor returns the game points the winner scores given the loser's
// direct points and whether the loser took any trick at all.
func gamePointsFor(loserPoints int, loserTookTrick bool) int {
	switch {
	case !loserTookTrick:
		return 3
	case loserPoints < 33:
		return 2
	default:
		return 1
	}
}

// leaderWinsTrick resolves a regular trick: true if the led card beats the
// follower's card under the given trump suit.
func leaderWinsTrick(led, followed Card, trump Suit) bool {
	if led.Suit() == followed.Suit() {
		return led.Points() > followed.Points()
	}
	if led.Suit() == trump {
		return true
	}
	if followed.Suit() == trump {
		return false
	}
	// Follower neither followed suit nor trumped.
	return true
}
