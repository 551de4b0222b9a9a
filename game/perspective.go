package game

import "golang.org/x/exp/rand"

// PlayerPerspective is the subset of game state one bot may legally see at
// a decision point. The engine builds a fresh perspective for every call.
type PlayerPerspective struct {
	state      *GameState
	isLeader   bool
	leaderMove *Move
}

func leaderPerspective(g *GameState) *PlayerPerspective {
	return &PlayerPerspective{state: g, isLeader: true}
}

func followerPerspective(g *GameState, leaderMove *Move) *PlayerPerspective {
	return &PlayerPerspective{state: g, leaderMove: leaderMove}
}

func (p *PlayerPerspective) me() *BotState {
	if p.isLeader {
		return p.state.Leader
	}
	return p.state.Follower
}

func (p *PlayerPerspective) opponent() *BotState {
	if p.isLeader {
		return p.state.Follower
	}
	return p.state.Leader
}

// AmILeader reports whether the bot leads the current trick.
func (p *PlayerPerspective) AmILeader() bool { return p.isLeader }

// ValidMoves returns every move the bot may legally play now.
func (p *PlayerPerspective) ValidMoves() []Move {
	if p.isLeader {
		return legalLeaderMoves(p.state)
	}
	if p.leaderMove == nil {
		// End-of-game perspective: there is no trick to answer.
		return nil
	}
	return legalFollowerMoves(p.state, *p.leaderMove)
}

// Hand returns a copy of the bot's hand.
func (p *PlayerPerspective) Hand() []Card {
	return append([]Card(nil), p.me().Hand...)
}

// MyScore returns the bot's score.
func (p *PlayerPerspective) MyScore() Score { return p.me().Score }

// OpponentScore returns the opponent's score.
func (p *PlayerPerspective) OpponentScore() Score { return p.opponent().Score }

// TrumpSuit returns the trump suit of this game.
func (p *PlayerPerspective) TrumpSuit() Suit { return p.state.Trump }

// TrumpCard returns the face-up trump card, false in phase two.
func (p *PlayerPerspective) TrumpCard() (Card, bool) { return p.state.TrumpCard() }

// TalonSize returns the number of undealt cards.
func (p *PlayerPerspective) TalonSize() int { return len(p.state.Talon) }

// Phase returns the current game phase.
func (p *PlayerPerspective) Phase() Phase { return p.state.Phase() }

// WonCards returns a copy of the cards the bot has won.
func (p *PlayerPerspective) WonCards() []Card {
	return append([]Card(nil), p.me().Won...)
}

// OpponentWonCards returns a copy of the cards the opponent has won.
func (p *PlayerPerspective) OpponentWonCards() []Card {
	return append([]Card(nil), p.opponent().Won...)
}

// SeenCards returns every card the bot has observed: its own hand, the
// face-up trump, and everything revealed by past tricks.
func (p *PlayerPerspective) SeenCards() []Card {
	var seen []Card
	add := func(cards ...Card) {
		for _, c := range cards {
			if !containsCard(seen, c) {
				seen = append(seen, c)
			}
		}
	}
	add(p.me().Hand...)
	if trump, ok := p.state.TrumpCard(); ok {
		add(trump)
	}
	add(p.state.Revealed...)
	return seen
}

// KnownOpponentCards returns the cards known to sit in the opponent's hand:
// revealed cards still held (a marriage king, a fetched trump card), or the
// whole hand in phase two.
func (p *PlayerPerspective) KnownOpponentCards() []Card {
	hand := p.opponent().Hand
	if p.state.Phase() == PhaseTwo {
		return append([]Card(nil), hand...)
	}
	var known []Card
	for _, c := range hand {
		if containsCard(p.state.Revealed, c) {
			known = append(known, c)
		}
	}
	return known
}

// MakeAssumption builds a determinization of the current state: every card
// the bot has not seen is redistributed uniformly over the unseen talon and
// opponent-hand slots. When the bot is following, the card(s) of the
// pending leader move stay pinned in the leader's hand so the move can be
// replayed against the assumed state. The returned state carries no bots;
// pass new ones to Engine.PlayAtMostNTricks to continue play.
func (p *PlayerPerspective) MakeAssumption(rng *rand.Rand) *GameState {
	full := p.state.Copy()
	full.Leader.Bot = nil
	full.Follower.Bot = nil
	if p.state.Phase() == PhaseTwo {
		// All information is public once the talon is gone.
		return full
	}

	seen := p.SeenCards()
	if p.leaderMove != nil {
		for _, c := range p.leaderMove.Cards() {
			if !containsCard(seen, c) {
				seen = append(seen, c)
			}
		}
	}
	var unseen []Card
	for _, c := range Deck() {
		if !containsCard(seen, c) {
			unseen = append(unseen, c)
		}
	}
	rng.Shuffle(len(unseen), func(i, j int) { unseen[i], unseen[j] = unseen[j], unseen[i] })

	draw := func() Card {
		c := unseen[len(unseen)-1]
		unseen = unseen[:len(unseen)-1]
		return c
	}
	for i, c := range full.Talon {
		if !containsCard(seen, c) {
			full.Talon[i] = draw()
		}
	}
	opp := full.Follower
	if !p.isLeader {
		opp = full.Leader
	}
	for i, c := range opp.Hand {
		if !containsCard(seen, c) {
			opp.Hand[i] = draw()
		}
	}
	return full
}
