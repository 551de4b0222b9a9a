package game

// Phase indicates which rule set is active. The follower's obligations
// change once the talon is exhausted.
type Phase uint8

const (
	PhaseOne Phase = iota + 1
	PhaseTwo
)

// BotState is one player's side of the game: the bot implementation, its
// hand, score, and the cards it has won so far.
type BotState struct {
	Bot   Bot
	Hand  []Card
	Score Score
	Won   []Card
}

// Copy returns a deep copy sharing only the bot implementation.
func (b *BotState) Copy() *BotState {
	return &BotState{
		Bot:   b.Bot,
		Hand:  append([]Card(nil), b.Hand...),
		Score: b.Score,
		Won:   append([]Card(nil), b.Won...),
	}
}

// GameState is the full, engine-side state of one game. Bots never see it
// directly; they get a PlayerPerspective instead.
type GameState struct {
	// Leader plays the first card of the next trick; Follower the second.
	Leader   *BotState
	Follower *BotState
	// Talon holds the undealt cards. Cards are drawn from the front; the
	// last card lies face up and fixes the trump suit.
	Talon []Card
	// Trump is the trump suit, fixed at the deal.
	Trump Suit
	// Revealed lists every card made public by a past trick, marriage
	// declaration, or trump exchange.
	Revealed []Card
}

// Copy returns a deep copy sharing only the bot implementations.
func (g *GameState) Copy() *GameState {
	return &GameState{
		Leader:   g.Leader.Copy(),
		Follower: g.Follower.Copy(),
		Talon:    append([]Card(nil), g.Talon...),
		Trump:    g.Trump,
		Revealed: append([]Card(nil), g.Revealed...),
	}
}

// Phase returns PhaseOne while the talon has cards, PhaseTwo afterwards.
func (g *GameState) Phase() Phase {
	if len(g.Talon) > 0 {
		return PhaseOne
	}
	return PhaseTwo
}

// TrumpCard returns the face-up trump card, false once the talon is empty.
func (g *GameState) TrumpCard() (Card, bool) {
	if len(g.Talon) == 0 {
		return 0, false
	}
	return g.Talon[len(g.Talon)-1], true
}

// AllCardsPlayed reports whether both hands and the talon are empty.
func (g *GameState) AllCardsPlayed() bool {
	return len(g.Leader.Hand) == 0 && len(g.Follower.Hand) == 0 && len(g.Talon) == 0
}

// reveal marks cards as publicly seen. Duplicates are ignored.
func (g *GameState) reveal(cards ...Card) {
	for _, c := range cards {
		if !containsCard(g.Revealed, c) {
			g.Revealed = append(g.Revealed, c)
		}
	}
}
