package ml

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// SplitConfig controls the train/holdout partition.
type SplitConfig struct {
	HoldoutFraction float64
	Seed            uint64
}

// Split shuffles record indices with the configured seed and carves off the
// last holdout share. Every record lands in exactly one side.
func Split(ds *Dataset, cfg SplitConfig) (train, holdout *Dataset, err error) {
	if cfg.HoldoutFraction < 0 || cfg.HoldoutFraction > 1 {
		return nil, nil, fmt.Errorf("holdout fraction must be in [0,1], got %g", cfg.HoldoutFraction)
	}
	n := ds.Len()
	holdoutN := int(math.Round(cfg.HoldoutFraction * float64(n)))

	rng := rand.New(rand.NewSource(cfg.Seed))
	perm := rng.Perm(n)

	train = take(ds, perm[:n-holdoutN])
	holdout = take(ds, perm[n-holdoutN:])
	return train, holdout, nil
}

func take(ds *Dataset, idx []int) *Dataset {
	out := &Dataset{
		Vectors: make([][]float64, len(idx)),
		Labels:  make([]Strategy, len(idx)),
	}
	for i, j := range idx {
		out.Vectors[i] = ds.Vectors[j]
		out.Labels[i] = ds.Labels[j]
	}
	return out
}
