package bots

import "schnapsen/game"

// firstFixedThen plays one predetermined move, then delegates to a base
// bot. Rdeep uses it to force a candidate move at the root of a rollout.
type firstFixedThen struct {
	first  game.Move
	played bool
	base   game.Bot
}

func newFirstFixedThen(first game.Move, base game.Bot) *firstFixedThen {
	return &firstFixedThen{first: first, base: base}
}

func (b *firstFixedThen) ChooseMove(p *game.PlayerPerspective, leaderMove *game.Move) (game.Move, error) {
	if !b.played {
		b.played = true
		return b.first, nil
	}
	return b.base.ChooseMove(p, leaderMove)
}
