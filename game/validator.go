package game

// legalLeaderMoves returns every move the leader may play: any card in
// hand, a trump exchange while the talon is open, and any marriage held.
func legalLeaderMoves(g *GameState) []Move {
	hand := g.Leader.Hand
	moves := make([]Move, 0, len(hand)+2)
	for _, c := range hand {
		moves = append(moves, Regular(c))
	}
	if len(g.Talon) > 0 {
		trumpJack := NewCard(g.Trump, Jack)
		if containsCard(hand, trumpJack) {
			moves = append(moves, TrumpExchange(trumpJack))
		}
	}
	for _, c := range hand {
		if c.Rank() == Queen && containsCard(hand, NewCard(c.Suit(), King)) {
			moves = append(moves, MarriageOf(c.Suit()))
		}
	}
	return moves
}

// legalFollowerMoves returns the follower's options against the led card.
// In phase one any card goes. In phase two the follower must beat the led
// card in suit if possible, else follow suit low, else trump, else anything.
func legalFollowerMoves(g *GameState, leaderMove Move) []Move {
	hand := g.Follower.Hand
	led, ok := leaderMove.LedCard()
	if !ok {
		// A trump exchange ends the trick; the follower is never asked.
		return nil
	}
	if g.Phase() == PhaseOne {
		return regularMoves(hand)
	}

	if sameSuit := filterSuit(hand, led.Suit()); len(sameSuit) > 0 {
		var higher, lower []Card
		for _, c := range sameSuit {
			if c.Points() > led.Points() {
				higher = append(higher, c)
			} else {
				lower = append(lower, c)
			}
		}
		if len(higher) > 0 {
			return regularMoves(higher)
		}
		return regularMoves(lower)
	}
	if trumps := filterSuit(hand, g.Trump); led.Suit() != g.Trump && len(trumps) > 0 {
		return regularMoves(trumps)
	}
	return regularMoves(hand)
}

func regularMoves(cards []Card) []Move {
	moves := make([]Move, len(cards))
	for i, c := range cards {
		moves[i] = Regular(c)
	}
	return moves
}

func moveIn(moves []Move, m Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
