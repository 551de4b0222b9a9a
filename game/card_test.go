package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeck(t *testing.T) {
	deck := Deck()
	require.Len(t, deck, DeckSize)

	seen := map[Card]bool{}
	total := 0
	for _, c := range deck {
		require.False(t, seen[c], "deck must not contain %s twice", c)
		seen[c] = true
		total += c.Points()
	}
	// 4 suits x (2+3+4+10+11)
	require.Equal(t, 120, total, "total deck points")
}

func TestCardPacking(t *testing.T) {
	for _, c := range Deck() {
		require.Equal(t, c, NewCard(c.Suit(), c.Rank()))
	}
}

func TestCardIndex(t *testing.T) {
	indices := map[int]bool{}
	for _, c := range Deck() {
		idx := c.Index()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, DeckSize)
		require.False(t, indices[idx], "index %d assigned twice", idx)
		indices[idx] = true
	}
}

func TestRankPoints(t *testing.T) {
	require.Equal(t, 2, Jack.Points())
	require.Equal(t, 3, Queen.Points())
	require.Equal(t, 4, King.Points())
	require.Equal(t, 10, Ten.Points())
	require.Equal(t, 11, Ace.Points())
}

func TestRemoveCard(t *testing.T) {
	hand := []Card{NewCard(Clubs, Ace), NewCard(Hearts, Ten)}

	got, ok := removeCard(hand, NewCard(Clubs, Ace))
	require.True(t, ok)
	require.Equal(t, []Card{NewCard(Hearts, Ten)}, got)

	_, ok = removeCard(hand, NewCard(Spades, Jack))
	require.False(t, ok)
}
