package experiments

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TestResult holds the outcome of a significance test.
type TestResult struct {
	Name      string
	Statistic float64
	PValue    float64
}

// BinomialTest runs a one-sided exact binomial test: the probability of
// observing at least wins successes in games trials when the true win
// probability is p0. A small p-value means the observed win rate is
// unlikely under p0.
func BinomialTest(wins, games int, p0 float64) (TestResult, error) {
	if games <= 0 || wins < 0 || wins > games {
		return TestResult{}, fmt.Errorf("invalid binomial test inputs: %d wins in %d games", wins, games)
	}
	if p0 <= 0 || p0 >= 1 {
		return TestResult{}, fmt.Errorf("null win probability must be in (0,1), got %g", p0)
	}
	dist := distuv.Binomial{N: float64(games), P: p0}
	// P(X >= wins) = 1 - P(X <= wins-1)
	pValue := 1.0
	if wins > 0 {
		pValue = 1 - dist.CDF(float64(wins-1))
	}
	return TestResult{
		Name:      "binomial",
		Statistic: float64(wins) / float64(games),
		PValue:    pValue,
	}, nil
}

// ProportionsZTest compares two win counts with a one-sided pooled
// two-proportion z-test. The alternative hypothesis is that the first
// proportion is larger.
func ProportionsZTest(wins1, games1, wins2, games2 int) (TestResult, error) {
	if games1 <= 0 || games2 <= 0 || wins1 < 0 || wins1 > games1 || wins2 < 0 || wins2 > games2 {
		return TestResult{}, fmt.Errorf("invalid z-test inputs: %d/%d vs %d/%d", wins1, games1, wins2, games2)
	}
	p1 := float64(wins1) / float64(games1)
	p2 := float64(wins2) / float64(games2)
	pooled := float64(wins1+wins2) / float64(games1+games2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(games1) + 1/float64(games2)))
	if se == 0 {
		return TestResult{}, fmt.Errorf("z-test undefined: pooled proportion is degenerate")
	}
	z := (p1 - p2) / se
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	return TestResult{
		Name:      "proportions_ztest",
		Statistic: z,
		PValue:    normal.Survival(z),
	}, nil
}
