package ml

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MalformedRecordError reports an observation-log line that does not parse.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed observation record: %s", e.Path, e.Line, e.Reason)
}

// DimensionMismatchError reports a feature vector whose length disagrees
// with the rest of the dataset.
type DimensionMismatchError struct {
	Path string
	Line int
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("feature vector has %d values, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("%s:%d: feature vector has %d values, want %d", e.Path, e.Line, e.Got, e.Want)
}

// Dataset holds parallel slices of feature vectors and strategy labels.
type Dataset struct {
	Vectors [][]float64
	Labels  []Strategy
}

func (d *Dataset) Len() int { return len(d.Vectors) }

// Dim returns the feature dimensionality, or 0 for an empty dataset.
func (d *Dataset) Dim() int {
	if len(d.Vectors) == 0 {
		return 0
	}
	return len(d.Vectors[0])
}

// Source binds a strategy label to the observation logs recorded from it.
type Source struct {
	Strategy Strategy
	Paths    []string
}

// Assemble reads every source's logs and produces one labeled dataset.
// Every record from a source's files inherits that source's strategy label;
// the recorded game outcome on the line is parsed for validation and then
// discarded. The first vector read fixes the dimensionality for the whole
// dataset.
func Assemble(sources []Source) (*Dataset, error) {
	ds := &Dataset{}
	dim := -1
	for _, src := range sources {
		for _, path := range src.Paths {
			var err error
			dim, err = appendLog(ds, path, src.Strategy, dim)
			if err != nil {
				return nil, err
			}
		}
	}
	return ds, nil
}

func appendLog(ds *Dataset, path string, label Strategy, dim int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return dim, fmt.Errorf("open observation log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		vec, err := parseRecord(path, line, text)
		if err != nil {
			return dim, err
		}
		if dim < 0 {
			dim = len(vec)
		} else if len(vec) != dim {
			return dim, &DimensionMismatchError{Path: path, Line: line, Want: dim, Got: len(vec)}
		}
		ds.Vectors = append(ds.Vectors, vec)
		ds.Labels = append(ds.Labels, label)
	}
	if err := scanner.Err(); err != nil {
		return dim, fmt.Errorf("read observation log %s: %w", path, err)
	}
	return dim, nil
}

func parseRecord(path string, line int, text string) ([]float64, error) {
	parts := strings.Split(text, outcomeSeparator)
	if len(parts) != 2 {
		return nil, &MalformedRecordError{
			Path: path, Line: line,
			Reason: fmt.Sprintf("want exactly one %q separator, found %d", outcomeSeparator, len(parts)-1),
		}
	}
	if parts[1] != "0" && parts[1] != "1" {
		return nil, &MalformedRecordError{
			Path: path, Line: line,
			Reason: fmt.Sprintf("outcome indicator must be 0 or 1, got %q", parts[1]),
		}
	}
	fields := strings.Split(parts[0], featureDelimiter)
	vec := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &MalformedRecordError{
				Path: path, Line: line,
				Reason: fmt.Sprintf("feature %d: %v", i, err),
			}
		}
		vec[i] = v
	}
	return vec, nil
}
