package ml

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultNeighbors is the neighborhood size used when none is configured.
const DefaultNeighbors = 5

// KNN is a k-nearest-neighbor classifier over labeled feature vectors.
// Prediction measures Euclidean distance to every training vector and takes
// a majority vote among the k closest.
type KNN struct {
	K       int
	Dim     int
	Vectors [][]float64
	Labels  []Strategy
}

// FitKNN stores the training data. k is clamped to the training size.
func FitKNN(train *Dataset, k int) (*KNN, error) {
	if train.Len() == 0 {
		return nil, fmt.Errorf("cannot fit classifier on an empty training set")
	}
	if k <= 0 {
		k = DefaultNeighbors
	}
	if k > train.Len() {
		k = train.Len()
	}
	return &KNN{K: k, Dim: train.Dim(), Vectors: train.Vectors, Labels: train.Labels}, nil
}

// Predict classifies a single feature vector. Vote ties break toward the
// class of the nearest neighbor among the tied classes.
func (m *KNN) Predict(x []float64) (Strategy, error) {
	if len(x) != m.Dim {
		return 0, &DimensionMismatchError{Want: m.Dim, Got: len(x)}
	}

	type neighbor struct {
		dist float64
		idx  int
	}
	neighbors := make([]neighbor, len(m.Vectors))
	for i, v := range m.Vectors {
		neighbors[i] = neighbor{dist: floats.Distance(x, v, 2), idx: i}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].dist != neighbors[j].dist {
			return neighbors[i].dist < neighbors[j].dist
		}
		return neighbors[i].idx < neighbors[j].idx
	})

	votes := make(map[Strategy]int)
	for _, nb := range neighbors[:m.K] {
		votes[m.Labels[nb.idx]]++
	}
	best := 0
	for _, c := range votes {
		if c > best {
			best = c
		}
	}
	for _, nb := range neighbors[:m.K] {
		if votes[m.Labels[nb.idx]] == best {
			return m.Labels[nb.idx], nil
		}
	}
	// Unreachable: K >= 1 guarantees a winner above.
	return m.Labels[neighbors[0].idx], nil
}

// ClassMetrics holds per-strategy evaluation results.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	Support   int
}

// Report summarizes classifier performance on a holdout set.
type Report struct {
	Accuracy float64
	PerClass map[Strategy]ClassMetrics
}

// Evaluate predicts every holdout record and tallies accuracy plus
// per-class precision and recall.
func (m *KNN) Evaluate(holdout *Dataset) (*Report, error) {
	if holdout.Len() == 0 {
		return nil, fmt.Errorf("cannot evaluate on an empty holdout set")
	}

	correct := 0
	truePos := make(map[Strategy]int)
	predicted := make(map[Strategy]int)
	actual := make(map[Strategy]int)
	for i, vec := range holdout.Vectors {
		pred, err := m.Predict(vec)
		if err != nil {
			return nil, fmt.Errorf("holdout record %d: %w", i, err)
		}
		truth := holdout.Labels[i]
		predicted[pred]++
		actual[truth]++
		if pred == truth {
			correct++
			truePos[truth]++
		}
	}

	report := &Report{
		Accuracy: float64(correct) / float64(holdout.Len()),
		PerClass: make(map[Strategy]ClassMetrics),
	}
	for _, s := range Strategies() {
		if actual[s] == 0 && predicted[s] == 0 {
			continue
		}
		var metrics ClassMetrics
		metrics.Support = actual[s]
		if predicted[s] > 0 {
			metrics.Precision = float64(truePos[s]) / float64(predicted[s])
		}
		if actual[s] > 0 {
			metrics.Recall = float64(truePos[s]) / float64(actual[s])
		}
		report.PerClass[s] = metrics
	}
	return report, nil
}
