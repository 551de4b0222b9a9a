package ml

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"schnapsen/game"
)

// Observation log line format: comma-separated feature values, the literal
// separator, and the game-outcome indicator.
const (
	featureDelimiter = ","
	outcomeSeparator = "||"
)

// ObservationLog appends labeled observation records to a file. One game's
// records are written in a single call, so a crash mid-game never leaves
// partially labeled lines behind.
type ObservationLog struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// OpenObservationLog opens the file at path for appending, creating it if
// needed. The caller owns the parent directory.
func OpenObservationLog(path string) (*ObservationLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open observation log %s: %w", path, err)
	}
	return &ObservationLog{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// AppendGame writes one line per vector, all carrying the same outcome
// indicator, and flushes.
func (l *ObservationLog) AppendGame(vectors [][]float64, won bool) error {
	outcome := "0"
	if won {
		outcome = "1"
	}
	var sb strings.Builder
	for _, vec := range vectors {
		sb.Reset()
		for i, f := range vec {
			if i > 0 {
				sb.WriteString(featureDelimiter)
			}
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
		sb.WriteString(outcomeSeparator)
		sb.WriteString(outcome)
		sb.WriteByte('\n')
		if _, err := l.w.WriteString(sb.String()); err != nil {
			return fmt.Errorf("append to observation log %s: %w", l.path, err)
		}
	}
	if err := l.w.Flush(); err != nil {
		return fmt.Errorf("flush observation log %s: %w", l.path, err)
	}
	return nil
}

func (l *ObservationLog) Close() error {
	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return fmt.Errorf("flush observation log %s: %w", l.path, err)
	}
	return l.f.Close()
}

// DataBot wraps a real bot and records one feature vector per decision
// point, without altering play. Vectors are buffered for the duration of
// the game and appended with the outcome indicator once the game ends.
type DataBot struct {
	inner  game.Bot
	log    *ObservationLog
	buffer [][]float64
	err    error
}

func NewDataBot(inner game.Bot, log *ObservationLog) *DataBot {
	return &DataBot{inner: inner, log: log}
}

func (b *DataBot) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	b.buffer = append(b.buffer, ExtractFeatures(p, leaderMove))
	return b.inner.ChooseMove(p, leaderMove)
}

// NotifyGameEnd back-fills the game outcome onto every buffered vector and
// flushes them as one batch. Write failures are held for Err.
func (b *DataBot) NotifyGameEnd(won bool, p *game.PlayerPerspective) {
	if obs, ok := b.inner.(game.GameEndObserver); ok {
		obs.NotifyGameEnd(won, p)
	}
	if err := b.log.AppendGame(b.buffer, won); err != nil && b.err == nil {
		b.err = err
	}
	b.buffer = b.buffer[:0]
}

func (b *DataBot) NotifyTrumpExchange(m game.Move) {
	if obs, ok := b.inner.(game.TrumpExchangeObserver); ok {
		obs.NotifyTrumpExchange(m)
	}
}

// Err returns the first write failure, if any. The driver checks it after
// every game.
func (b *DataBot) Err() error { return b.err }
