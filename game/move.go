package game

// MoveKind distinguishes the three kinds of schnapsen moves.
type MoveKind uint8

const (
	// KindRegular plays a single card into the trick.
	KindRegular MoveKind = iota
	// KindMarriage declares a king/queen pair and leads the queen.
	KindMarriage
	// KindTrumpExchange swaps the trump jack for the face-up trump card.
	KindTrumpExchange
)

// Move is one decision by a bot. It is a value type and comparable, so
// legality checks can use ==.
type Move struct {
	Kind MoveKind
	// Card is the card played for a regular move, or the trump jack for an
	// exchange. Unused for marriages.
	Card Card
	// Queen and King identify a marriage. Unused otherwise.
	Queen Card
	King  Card
}

// Regular returns a move playing a single card.
func Regular(c Card) Move { return Move{Kind: KindRegular, Card: c} }

// MarriageOf returns a marriage declaration for the given suit's queen and king.
func MarriageOf(s Suit) Move {
	return Move{Kind: KindMarriage, Queen: NewCard(s, Queen), King: NewCard(s, King)}
}

// TrumpExchange returns an exchange of the given trump jack.
func TrumpExchange(jack Card) Move { return Move{Kind: KindTrumpExchange, Card: jack} }

func (m Move) IsRegular() bool { return m.Kind == KindRegular }

func (m Move) IsMarriage() bool { return m.Kind == KindMarriage }

func (m Move) IsTrumpExchange() bool { return m.Kind == KindTrumpExchange }

// LedCard returns the card this move puts into the trick: the played card
// for a regular move, the queen for a marriage. Exchanges lead no card.
func (m Move) LedCard() (Card, bool) {
	switch m.Kind {
	case KindRegular:
		return m.Card, true
	case KindMarriage:
		return m.Queen, true
	}
	return 0, false
}

// Cards returns every card revealed by this move.
func (m Move) Cards() []Card {
	if m.Kind == KindMarriage {
		return []Card{m.Queen, m.King}
	}
	return []Card{m.Card}
}

func (m Move) String() string {
	switch m.Kind {
	case KindMarriage:
		return "marriage " + m.Queen.String() + "+" + m.King.String()
	case KindTrumpExchange:
		return "exchange " + m.Card.String()
	}
	return m.Card.String()
}
