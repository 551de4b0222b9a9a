package ml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"schnapsen/bots"
	"schnapsen/game"
)

// notifyCounter records the notifications the engine forwards through a
// DataBot to the wrapped bot.
type notifyCounter struct {
	game.Bot
	gameEnds int
}

func (b *notifyCounter) NotifyGameEnd(won bool, p *game.PlayerPerspective) { b.gameEnds++ }

func TestDataBotBuffersUntilGameEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	obsLog, err := OpenObservationLog(path)
	require.NoError(t, err)
	defer obsLog.Close()

	recorder := NewDataBot(bots.NewRand(1), obsLog)
	decisions := 0
	probe := &probeBot{
		inner: bots.NewRand(2),
		check: func(p *game.PlayerPerspective, leaderMove *game.Move) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Empty(t, data, "nothing may reach the log before the game ends")
			decisions++
		},
	}

	// The probe observes the opponent's decision points; while the game is
	// in flight the recorder must not have flushed anything.
	_, err = game.NewEngine().PlayGame(recorder, probe, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.NoError(t, recorder.Err())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.NotEmpty(t, lines)
	outcome := strings.Split(lines[0], outcomeSeparator)[1]
	for i, line := range lines {
		require.True(t, strings.HasSuffix(line, outcomeSeparator+outcome),
			"line %d must carry the same back-filled outcome as the rest of the game", i)
	}
}

func TestDataBotClearsBufferBetweenGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	obsLog, err := OpenObservationLog(path)
	require.NoError(t, err)
	defer obsLog.Close()

	recorder := NewDataBot(bots.NewRand(1), obsLog)
	engine := game.NewEngine()
	_, err = engine.PlayGame(recorder, bots.NewRand(2), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Empty(t, recorder.buffer, "the per-game buffer must be cleared after flushing")

	_, err = engine.PlayGame(recorder, bots.NewRand(3), rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.NoError(t, recorder.Err())
	require.Empty(t, recorder.buffer)
}

func TestDataBotForwardsNotifications(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	obsLog, err := OpenObservationLog(path)
	require.NoError(t, err)
	defer obsLog.Close()

	inner := &notifyCounter{Bot: bots.NewRand(1)}
	recorder := NewDataBot(inner, obsLog)
	for seed := uint64(0); seed < 5; seed++ {
		_, err := game.NewEngine().PlayGame(recorder, bots.NewRand(seed+10), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
	}
	require.Equal(t, 5, inner.gameEnds, "the wrapped bot must hear every game end")
}
