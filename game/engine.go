package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Bot is the contract every strategy implements. ChooseMove must return one
// of the perspective's valid moves; anything else aborts the game with an
// EngineError. leaderMove is nil when the bot itself leads the trick.
type Bot interface {
	ChooseMove(p *PlayerPerspective, leaderMove *Move) (Move, error)
}

// GameEndObserver is implemented by bots that want to know how a game
// ended. The perspective is the bot's view of the final state.
type GameEndObserver interface {
	NotifyGameEnd(won bool, p *PlayerPerspective)
}

// TrumpExchangeObserver is implemented by bots that want to be told when
// the opponent exchanges the trump jack.
type TrumpExchangeObserver interface {
	NotifyTrumpExchange(m Move)
}

// EngineError reports an illegal move or inconsistent state during play.
// It is fatal for the game it occurred in; the engine never retries.
type EngineError struct {
	Msg string
}

func (e *EngineError) Error() string { return "engine: " + e.Msg }

func engineErrorf(format string, args ...any) error {
	return &EngineError{Msg: fmt.Sprintf(format, args...)}
}

// Outcome reports how a finished game ended.
type Outcome struct {
	// Winner is the bot that won. Interface comparison against the bots
	// passed to PlayGame identifies which side it was.
	Winner Bot
	// GamePoints is 1, 2, or 3 depending on how badly the loser lost.
	GamePoints int
	// WinnerScore is the winner's final score.
	WinnerScore Score
}

// Engine drives complete schnapsen games between two bots.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Deal shuffles a fresh deck with rng and deals the opening state: five
// cards each, dealt alternately, the rest forming the talon with the last
// card face up as trump. bot1 leads the first trick.
func (e *Engine) Deal(bot1, bot2 Bot, rng *rand.Rand) *GameState {
	deck := Deck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	hand1 := make([]Card, 0, 5)
	hand2 := make([]Card, 0, 5)
	for i := 0; i < 10; i += 2 {
		hand1 = append(hand1, deck[i])
		hand2 = append(hand2, deck[i+1])
	}
	talon := append([]Card(nil), deck[10:]...)

	return &GameState{
		Leader:   &BotState{Bot: bot1, Hand: hand1},
		Follower: &BotState{Bot: bot2, Hand: hand2},
		Talon:    talon,
		Trump:    talon[len(talon)-1].Suit(),
	}
}

// PlayGame plays one full game between bot1 (first leader) and bot2, driven
// entirely by rng. Bot errors and illegal moves surface as EngineErrors.
func (e *Engine) PlayGame(bot1, bot2 Bot, rng *rand.Rand) (*Outcome, error) {
	state := e.Deal(bot1, bot2, rng)
	return e.playToEnd(state)
}

// PlayAtMostNTricks continues the given state with the given bots for at
// most n tricks, or until the game ends. It returns the resulting state and
// the outcome if the game finished within the budget. The input state is
// not modified.
func (e *Engine) PlayAtMostNTricks(state *GameState, leader, follower Bot, n int) (*GameState, *Outcome, error) {
	st := state.Copy()
	st.Leader.Bot = leader
	st.Follower.Bot = follower
	for i := 0; i < n; i++ {
		if err := e.playTrick(st); err != nil {
			return nil, nil, err
		}
		winner, err := e.declareWinner(st)
		if err != nil {
			return nil, nil, err
		}
		if winner != nil {
			return st, winner, nil
		}
	}
	return st, nil, nil
}

func (e *Engine) playToEnd(state *GameState) (*Outcome, error) {
	for {
		if err := e.playTrick(state); err != nil {
			return nil, err
		}
		outcome, err := e.declareWinner(state)
		if err != nil {
			return nil, err
		}
		if outcome == nil {
			continue
		}
		// The winner is the current leader; the loser the follower.
		notifyGameEnd(state.Leader.Bot, true, leaderPerspective(state))
		notifyGameEnd(state.Follower.Bot, false, followerPerspective(state, nil))
		return outcome, nil
	}
}

// playTrick runs one trick: the leader's move, and unless that move was a
// trump exchange, the follower's answer and trick resolution.
func (e *Engine) playTrick(state *GameState) error {
	legal := legalLeaderMoves(state)
	leaderMove, err := state.Leader.Bot.ChooseMove(leaderPerspective(state), nil)
	if err != nil {
		return engineErrorf("leader move failed: %v", err)
	}
	if !moveIn(legal, leaderMove) {
		return engineErrorf("leader played illegal move %s", leaderMove)
	}

	if leaderMove.IsTrumpExchange() {
		return e.playTrumpExchange(state, leaderMove)
	}

	// The follower answers against the pre-trick state; marriage points and
	// reveals are applied only once the trick is committed.
	legalAnswers := legalFollowerMoves(state, leaderMove)
	followerMove, err := state.Follower.Bot.ChooseMove(followerPerspective(state, &leaderMove), &leaderMove)
	if err != nil {
		return engineErrorf("follower move failed: %v", err)
	}
	if !followerMove.IsRegular() || !moveIn(legalAnswers, followerMove) {
		return engineErrorf("follower played illegal move %s against %s", followerMove, leaderMove)
	}
	followed := followerMove.Card

	if leaderMove.IsMarriage() {
		state.Leader.Score = state.Leader.Score.Add(marriageScore(leaderMove.Queen.Suit(), state.Trump))
		state.reveal(leaderMove.Queen, leaderMove.King)
	}
	led, _ := leaderMove.LedCard()

	var ok bool
	if state.Leader.Hand, ok = removeCard(state.Leader.Hand, led); !ok {
		return engineErrorf("leader does not hold %s", led)
	}
	if state.Follower.Hand, ok = removeCard(state.Follower.Hand, followed); !ok {
		return engineErrorf("follower does not hold %s", followed)
	}
	state.reveal(led, followed)

	// Resolve the trick: the winner leads next, draws first, and redeems
	// any pending marriage points.
	winner, loser := state.Leader, state.Follower
	if !leaderWinsTrick(led, followed, state.Trump) {
		winner, loser = loser, winner
	}
	winner.Won = append(winner.Won, led, followed)
	winner.Score = winner.Score.Add(Score{Direct: led.Points() + followed.Points()})
	winner.Score = winner.Score.RedeemPending()

	if len(state.Talon) >= 2 {
		winner.Hand = append(winner.Hand, state.Talon[0])
		loser.Hand = append(loser.Hand, state.Talon[1])
		state.Talon = state.Talon[2:]
	}
	state.Leader, state.Follower = winner, loser
	return nil
}

// playTrumpExchange swaps the trump jack for the face-up trump card. The
// exchange is a complete trick: the leader leads again afterwards.
func (e *Engine) playTrumpExchange(state *GameState, m Move) error {
	if m.Card.Suit() != state.Trump || m.Card.Rank() != Jack {
		return engineErrorf("exchange with %s, want the %s jack", m.Card, state.Trump)
	}
	hand, ok := removeCard(state.Leader.Hand, m.Card)
	if !ok {
		return engineErrorf("leader does not hold %s", m.Card)
	}
	old := state.Talon[len(state.Talon)-1]
	state.Talon[len(state.Talon)-1] = m.Card
	state.Leader.Hand = append(hand, old)
	state.reveal(m.Card, old)
	if obs, ok := state.Follower.Bot.(TrumpExchangeObserver); ok {
		obs.NotifyTrumpExchange(m)
	}
	return nil
}

// declareWinner checks the end conditions. Only the current leader can have
// crossed 66, because points are awarded on winning a trick and the trick
// winner becomes leader.
func (e *Engine) declareWinner(state *GameState) (*Outcome, error) {
	if state.Leader.Score.Direct >= WinPoints {
		loser := state.Follower
		points := gamePointsFor(loser.Score.Direct, len(loser.Won) > 0)
		return &Outcome{Winner: state.Leader.Bot, GamePoints: points, WinnerScore: state.Leader.Score}, nil
	}
	if state.Follower.Score.Direct >= WinPoints {
		return nil, engineErrorf("follower reached %d points without leading", state.Follower.Score.Direct)
	}
	if state.AllCardsPlayed() {
		// Talon exhausted without 66: the last trick's winner takes one
		// game point. That winner is the current leader.
		return &Outcome{Winner: state.Leader.Bot, GamePoints: 1, WinnerScore: state.Leader.Score}, nil
	}
	return nil, nil
}

func notifyGameEnd(b Bot, won bool, p *PlayerPerspective) {
	if obs, ok := b.(GameEndObserver); ok {
		obs.NotifyGameEnd(won, p)
	}
}
