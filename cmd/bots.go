package cmd

import (
	"fmt"

	"schnapsen/bots"
	"schnapsen/game"
	"schnapsen/ml"
)

var (
	rdeepSamples int
	rdeepDepth   int
)

// newBot builds the bot playing the named strategy, seeded for
// reproducibility.
func newBot(name string, seed uint64) (game.Bot, error) {
	strategy, err := ml.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case ml.StrategyRand:
		return bots.NewRand(seed), nil
	case ml.StrategyBully:
		return bots.NewBully(seed), nil
	case ml.StrategyRdeep:
		return bots.NewRdeep(seed, bots.WithSamples(rdeepSamples), bots.WithDepth(rdeepDepth)), nil
	case ml.StrategySecond:
		return bots.NewSecond(seed), nil
	}
	return nil, fmt.Errorf("no bot for strategy %s", strategy)
}
