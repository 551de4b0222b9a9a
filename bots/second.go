package bots

import (
	"schnapsen/game"

	"golang.org/x/exp/rand"
)

// Second is a heuristic policy: behind on points it chases marriages and
// trump exchanges; otherwise it repeats the suit of its previous move with
// the cheapest card; failing both it plays a random regular move.
type Second struct {
	rng      *rand.Rand
	lastSuit *game.Suit
}

func NewSecond(seed uint64) *Second {
	return &Second{rng: rand.New(rand.NewSource(seed))}
}

func (b *Second) ChooseMove(p *game.PlayerPerspective, _ *game.Move) (game.Move, error) {
	moves := p.ValidMoves()
	var choices []game.Move

	if p.MyScore().Direct < p.OpponentScore().Direct {
		for _, m := range moves {
			if m.IsTrumpExchange() || m.IsMarriage() {
				choices = append(choices, m)
			}
		}
	} else if b.lastSuit != nil {
		// Cheapest move that repeats the previous suit. An exchange
		// counts as zero points since no card enters the trick.
		lowest := -1
		var lowestMove *game.Move
		for _, m := range moves {
			if moveSuit(m) != *b.lastSuit {
				continue
			}
			pts := 0
			if !m.IsTrumpExchange() {
				led, _ := m.LedCard()
				pts = led.Points()
			}
			if lowestMove == nil || pts <= lowest {
				mm := m
				lowest, lowestMove = pts, &mm
			}
		}
		if lowestMove != nil {
			choices = []game.Move{*lowestMove}
		}
	}

	if len(choices) == 0 {
		for _, m := range moves {
			if m.IsRegular() {
				choices = append(choices, m)
			}
		}
	}

	chosen := choices[b.rng.Intn(len(choices))]
	suit := moveSuit(chosen)
	b.lastSuit = &suit
	return chosen, nil
}
