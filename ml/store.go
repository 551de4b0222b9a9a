package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// StoreIOError reports a failure reading or writing a persisted model.
type StoreIOError struct {
	Path string
	Err  error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("model store %s: %v", e.Path, e.Err)
}

func (e *StoreIOError) Unwrap() error { return e.Err }

const storedMetric = "euclidean"

type storedModel struct {
	Metric  string      `json:"metric"`
	K       int         `json:"k"`
	Dim     int         `json:"dim"`
	Vectors [][]float64 `json:"vectors"`
	Labels  []Strategy  `json:"labels"`
}

// SaveModel writes the fitted classifier to path as JSON.
func SaveModel(path string, m *KNN) error {
	sm := storedModel{
		Metric:  storedMetric,
		K:       m.K,
		Dim:     m.Dim,
		Vectors: m.Vectors,
		Labels:  m.Labels,
	}
	data, err := json.Marshal(sm)
	if err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	return nil
}

// LoadModel reads a classifier saved by SaveModel. A loaded model predicts
// identically to the one that was saved.
func LoadModel(path string) (*KNN, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StoreIOError{Path: path, Err: err}
	}
	var sm storedModel
	if err := json.Unmarshal(data, &sm); err != nil {
		return nil, &StoreIOError{Path: path, Err: err}
	}
	if sm.Metric != storedMetric {
		return nil, &StoreIOError{Path: path, Err: fmt.Errorf("unsupported distance metric %q", sm.Metric)}
	}
	if len(sm.Vectors) != len(sm.Labels) {
		return nil, &StoreIOError{Path: path, Err: fmt.Errorf("%d vectors but %d labels", len(sm.Vectors), len(sm.Labels))}
	}
	return &KNN{K: sm.K, Dim: sm.Dim, Vectors: sm.Vectors, Labels: sm.Labels}, nil
}
