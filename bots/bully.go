package bots

import (
	"schnapsen/game"

	"golang.org/x/exp/rand"
)

// Bully plays aggressively: a random trump move if it holds one, else —
// when following — a random card of the led suit, else its highest-point
// card.
type Bully struct {
	rng *rand.Rand
}

func NewBully(seed uint64) *Bully {
	return &Bully{rng: rand.New(rand.NewSource(seed))}
}

func (b *Bully) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	moves := p.ValidMoves()

	var trumps []game.Move
	for _, m := range moves {
		if moveSuit(m) == p.TrumpSuit() {
			trumps = append(trumps, m)
		}
	}
	if len(trumps) > 0 {
		return trumps[b.rng.Intn(len(trumps))], nil
	}

	if !p.AmILeader() {
		if led, ok := leaderMove.LedCard(); ok {
			var sameSuit []game.Move
			for _, m := range moves {
				if moveSuit(m) == led.Suit() {
					sameSuit = append(sameSuit, m)
				}
			}
			if len(sameSuit) > 0 {
				return sameSuit[b.rng.Intn(len(sameSuit))], nil
			}
		}
	}

	best := moves[0]
	bestPoints := -1
	for _, m := range moves {
		if pts := movePoints(m); pts > bestPoints {
			best, bestPoints = m, pts
		}
	}
	return best, nil
}

// moveSuit returns the suit a move commits to: the exchanged jack's suit
// for an exchange, the led card's suit otherwise.
func moveSuit(m game.Move) game.Suit {
	if m.IsTrumpExchange() {
		return m.Card.Suit()
	}
	led, _ := m.LedCard()
	return led.Suit()
}

// movePoints returns the points of the card a move plays: the queen for a
// marriage, the jack for an exchange.
func movePoints(m game.Move) int {
	if m.IsTrumpExchange() {
		return m.Card.Points()
	}
	led, _ := m.LedCard()
	return led.Points()
}
