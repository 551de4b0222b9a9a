package bots

import (
	"testing"

	"schnapsen/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// checkedBot fails the test if the wrapped bot ever returns an invalid move.
type checkedBot struct {
	t     *testing.T
	inner game.Bot
}

func (b *checkedBot) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	move, err := b.inner.ChooseMove(p, leaderMove)
	require.NoError(b.t, err)
	require.Contains(b.t, p.ValidMoves(), move, "%T returned an invalid move", b.inner)
	return move, nil
}

func playCheckedGames(t *testing.T, games int, make1, make2 func(seed uint64) game.Bot) {
	t.Helper()
	e := game.NewEngine()
	for i := 0; i < games; i++ {
		seed := uint64(i)
		bot1 := &checkedBot{t: t, inner: make1(seed + 100)}
		bot2 := &checkedBot{t: t, inner: make2(seed + 200)}
		_, err := e.PlayGame(bot1, bot2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "game %d", i)
	}
}

func TestBotsPlayOnlyValidMoves(t *testing.T) {
	t.Run("rand vs rand", func(t *testing.T) {
		playCheckedGames(t, 20,
			func(s uint64) game.Bot { return NewRand(s) },
			func(s uint64) game.Bot { return NewRand(s) })
	})

	t.Run("bully vs second", func(t *testing.T) {
		playCheckedGames(t, 20,
			func(s uint64) game.Bot { return NewBully(s) },
			func(s uint64) game.Bot { return NewSecond(s) })
	})

	t.Run("rdeep vs rand", func(t *testing.T) {
		playCheckedGames(t, 3,
			func(s uint64) game.Bot { return NewRdeep(s, WithSamples(2), WithDepth(2)) },
			func(s uint64) game.Bot { return NewRand(s) })
	})

	// Rdeep on the following seat replays the opponent's committed lead
	// inside its rollouts; the determinization must keep that card in the
	// assumed leader's hand or the rollout engine rejects the move.
	t.Run("rand vs rdeep", func(t *testing.T) {
		playCheckedGames(t, 5,
			func(s uint64) game.Bot { return NewRand(s) },
			func(s uint64) game.Bot { return NewRdeep(s, WithSamples(2), WithDepth(2)) })
	})
}

// probeBot delegates to a base bot but first runs a callback at every live
// decision point, while the perspective is still valid.
type probeBot struct {
	probe func(p *game.PlayerPerspective, leaderMove *game.Move)
	base  game.Bot
}

func (b *probeBot) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	b.probe(p, leaderMove)
	return b.base.ChooseMove(p, leaderMove)
}

// probeGames plays full games with a probe on one seat.
func probeGames(t *testing.T, games int, probe func(p *game.PlayerPerspective, leaderMove *game.Move)) {
	t.Helper()
	e := game.NewEngine()
	for i := 0; i < games; i++ {
		seed := uint64(i)
		bot1 := &probeBot{probe: probe, base: NewRand(seed + 100)}
		_, err := e.PlayGame(bot1, NewRand(seed+200), rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "game %d", i)
	}
}

func TestBullyPrefersTrump(t *testing.T) {
	probeGames(t, 10, func(p *game.PlayerPerspective, leaderMove *game.Move) {
		move, err := NewBully(1).ChooseMove(p, leaderMove)
		require.NoError(t, err)
		require.Contains(t, p.ValidMoves(), move)

		for _, m := range p.ValidMoves() {
			if moveSuit(m) == p.TrumpSuit() {
				require.Equal(t, p.TrumpSuit(), moveSuit(move),
					"bully must play trump when it holds one")
				return
			}
		}
	})
}

func TestBullyFollowsLedSuit(t *testing.T) {
	probeGames(t, 10, func(p *game.PlayerPerspective, leaderMove *game.Move) {
		if leaderMove == nil {
			return
		}
		led, ok := leaderMove.LedCard()
		if !ok {
			return
		}
		holdsTrump, holdsLedSuit := false, false
		for _, m := range p.ValidMoves() {
			switch moveSuit(m) {
			case p.TrumpSuit():
				holdsTrump = true
			case led.Suit():
				holdsLedSuit = true
			}
		}
		if holdsTrump || !holdsLedSuit {
			return
		}

		move, err := NewBully(1).ChooseMove(p, leaderMove)
		require.NoError(t, err)
		require.Equal(t, led.Suit(), moveSuit(move),
			"without trump, bully must answer in the suit the leader led")
	})
}

func TestSecondChasesMarriagesWhenBehind(t *testing.T) {
	probeGames(t, 20, func(p *game.PlayerPerspective, leaderMove *game.Move) {
		if p.MyScore().Direct >= p.OpponentScore().Direct {
			return
		}
		hasSpecial := false
		for _, m := range p.ValidMoves() {
			if m.IsMarriage() || m.IsTrumpExchange() {
				hasSpecial = true
			}
		}
		if !hasSpecial {
			return
		}

		move, err := NewSecond(1).ChooseMove(p, leaderMove)
		require.NoError(t, err)
		require.True(t, move.IsMarriage() || move.IsTrumpExchange(),
			"second must chase a marriage or exchange when behind")
	})
}

func TestRdeepDeterminism(t *testing.T) {
	run := func() []game.Move {
		e := game.NewEngine()
		collect := &collectBot{base: NewRdeep(3, WithSamples(2), WithDepth(2))}
		_, err := e.PlayGame(collect, NewRand(9), rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		return collect.moves
	}

	require.Equal(t, run(), run(), "same seeds must reproduce every rdeep decision")
}

// collectBot records every move the base bot makes.
type collectBot struct {
	base  game.Bot
	moves []game.Move
}

func (b *collectBot) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	m, err := b.base.ChooseMove(p, leaderMove)
	if err == nil {
		b.moves = append(b.moves, m)
	}
	return m, err
}

func TestFirstFixedThen(t *testing.T) {
	var fixed game.Move
	first := true
	probeGames(t, 1, func(p *game.PlayerPerspective, leaderMove *game.Move) {
		if !first {
			return
		}
		first = false
		fixed = p.ValidMoves()[0]
		b := newFirstFixedThen(fixed, NewRand(1))

		got, err := b.ChooseMove(p, leaderMove)
		require.NoError(t, err)
		require.Equal(t, fixed, got)

		next, err := b.ChooseMove(p, leaderMove)
		require.NoError(t, err)
		require.Contains(t, p.ValidMoves(), next)
	})
}
