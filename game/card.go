package game

import "strconv"

// Suit constants — packed into the upper 4 bits of Card.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in the schnapsen deck.
const NumSuits = 4

// Rank constants — packed into the lower 4 bits of Card. Schnapsen uses a
// short deck: jack, queen, king, ten, ace.
type Rank uint8

const (
	Jack Rank = iota
	Queen
	King
	Ten
	Ace
)

// NumRanks is the number of ranks per suit.
const NumRanks = 5

// DeckSize is the total number of cards in play.
const DeckSize = NumSuits * NumRanks

// Points returns the trick points a card of this rank is worth.
func (r Rank) Points() int {
	switch r {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	}
	panic("unknown rank " + strconv.Itoa(int(r)))
}

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// NewCard constructs a Card from suit and rank.
func NewCard(s Suit, r Rank) Card {
	return Card(uint8(s)<<4 | uint8(r)&0x0F)
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() Suit { return Suit(uint8(c) >> 4) }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() Rank { return Rank(uint8(c) & 0x0F) }

// Points returns the trick points of the card.
func (c Card) Points() int { return c.Rank().Points() }

// Index returns a dense index in [0, DeckSize), stable across runs. Feature
// encodings and deck iteration both rely on this ordering.
func (c Card) Index() int { return int(c.Suit())*NumRanks + int(c.Rank()) }

var suitNames = [NumSuits]string{"C", "D", "H", "S"}
var rankNames = [NumRanks]string{"J", "Q", "K", "10", "A"}

func (s Suit) String() string { return suitNames[s] }

func (r Rank) String() string { return rankNames[r] }

func (c Card) String() string { return c.Rank().String() + c.Suit().String() }

// Deck returns the full ordered deck: suits in Suit order, ranks in Rank
// order within each suit.
func Deck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Jack; r <= Ace; r++ {
			deck = append(deck, NewCard(s, r))
		}
	}
	return deck
}

func containsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// removeCard deletes the first occurrence of c, preserving order. Returns
// false if c is absent.
func removeCard(cards []Card, c Card) ([]Card, bool) {
	for i, x := range cards {
		if x == c {
			return append(cards[:i:i], cards[i+1:]...), true
		}
	}
	return cards, false
}

func filterSuit(cards []Card, s Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit() == s {
			out = append(out, c)
		}
	}
	return out
}
