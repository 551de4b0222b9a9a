// Package bots contains the fixed schnapsen strategies: one implementation
// of game.Bot per policy, with no shared state between them.
package bots

import (
	"schnapsen/game"

	"golang.org/x/exp/rand"
)

// Rand plays a uniformly random valid move.
type Rand struct {
	rng *rand.Rand
}

func NewRand(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (b *Rand) ChooseMove(p *game.PlayerPerspective, _ *game.Move) (game.Move, error) {
	moves := p.ValidMoves()
	return moves[b.rng.Intn(len(moves))], nil
}
