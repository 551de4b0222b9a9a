// Package ml implements the two observation pipelines: recording labeled
// feature vectors from simulated games, and assembling them into a dataset
// to fit and evaluate a k-nearest-neighbor strategy classifier.
package ml

import "fmt"

// Strategy identifies one of the fixed agent policies. It is the label the
// classifier learns to predict. The numeric values are part of recorded
// datasets and must not be reordered.
type Strategy int

const (
	StrategyRand Strategy = iota
	StrategyBully
	StrategyRdeep
	StrategySecond
)

var strategyNames = map[Strategy]string{
	StrategyRand:   "rand",
	StrategyBully:  "bully",
	StrategyRdeep:  "rdeep",
	StrategySecond: "second",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to its Strategy tag.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Strategies returns all known strategy tags in label order.
func Strategies() []Strategy {
	return []Strategy{StrategyRand, StrategyBully, StrategyRdeep, StrategySecond}
}
