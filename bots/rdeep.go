package bots

import (
	"fmt"

	"schnapsen/game"

	"golang.org/x/exp/rand"
)

// Rdeep evaluates each candidate move by sampling determinizations of the
// hidden cards and playing a bounded number of tricks ahead with random
// continuation, averaging the resulting point share.
type Rdeep struct {
	samples int
	depth   int
	rng     *rand.Rand
	engine  *game.Engine
}

type RdeepOption func(*Rdeep)

// WithSamples sets how many determinizations are evaluated per move.
func WithSamples(samples int) RdeepOption {
	return func(b *Rdeep) { b.samples = samples }
}

// WithDepth sets how many tricks each rollout plays ahead.
func WithDepth(depth int) RdeepOption {
	return func(b *Rdeep) { b.depth = depth }
}

func NewRdeep(seed uint64, options ...RdeepOption) *Rdeep {
	b := &Rdeep{
		samples: 8,
		depth:   6,
		rng:     rand.New(rand.NewSource(seed)),
		engine:  game.NewEngine(),
	}
	for _, option := range options {
		option(b)
	}
	if b.samples < 1 || b.depth < 1 {
		panic(fmt.Sprintf("rdeep needs samples >= 1 and depth >= 1, got %d and %d", b.samples, b.depth))
	}
	return b
}

func (b *Rdeep) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	moves := p.ValidMoves()
	b.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var best game.Move
	bestScore := -1.0
	for _, move := range moves {
		sum := 0.0
		for s := 0; s < b.samples; s++ {
			assumed := p.MakeAssumption(b.rng)
			value, err := b.evaluate(assumed, p.AmILeader(), leaderMove, move)
			if err != nil {
				return game.Move{}, fmt.Errorf("rdeep rollout for %s: %w", move, err)
			}
			sum += value
		}
		if avg := sum / float64(b.samples); avg > bestScore {
			bestScore, best = avg, move
		}
	}
	return best, nil
}

// evaluate replays the assumed state from the top of the current trick,
// forcing myMove for this bot, and returns this bot's share of the points
// after at most depth tricks.
func (b *Rdeep) evaluate(assumed *game.GameState, amLeader bool, leaderMove *game.Move, myMove game.Move) (float64, error) {
	var me game.Bot
	var leader, follower game.Bot
	if amLeader {
		me = newFirstFixedThen(myMove, NewRand(b.rng.Uint64()))
		leader = me
		follower = NewRand(b.rng.Uint64())
	} else {
		// The leader already committed its move; replay it.
		leader = newFirstFixedThen(*leaderMove, NewRand(b.rng.Uint64()))
		me = newFirstFixedThen(myMove, NewRand(b.rng.Uint64()))
		follower = me
	}

	final, _, err := b.engine.PlayAtMostNTricks(assumed, leader, follower, b.depth)
	if err != nil {
		return 0, err
	}

	myScore, oppScore := final.Follower.Score.Direct, final.Leader.Score.Direct
	if final.Leader.Bot == me {
		myScore, oppScore = oppScore, myScore
	}
	if myScore+oppScore == 0 {
		return 0.5, nil
	}
	return float64(myScore) / float64(myScore+oppScore), nil
}
