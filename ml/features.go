package ml

import "schnapsen/game"

// Feature vector layout. The classifier requires a constant dimensionality,
// so any change here invalidates every previously recorded dataset.
const (
	scoreFeatures      = 4 // own and opponent direct/pending points, scaled
	trumpSuitFeatures  = game.NumSuits
	phaseFeatures      = 2
	talonFeatures      = 1
	leaderFeatures     = 2
	cardZones          = 6
	cardFeatures       = game.DeckSize * cardZones
	leaderMoveFeatures = game.DeckSize + 2 // led card one-hot, none flag, marriage flag

	// FeatureDim is the fixed length of every decision feature vector.
	FeatureDim = scoreFeatures + trumpSuitFeatures + phaseFeatures +
		talonFeatures + leaderFeatures + cardFeatures + leaderMoveFeatures
)

// Card knowledge zones, one-hot per card.
const (
	zoneUnknown = iota
	zoneOwnHand
	zoneOpponentKnown
	zoneWonSelf
	zoneWonOpponent
	zoneTrumpFaceUp
)

// Point scales for the score block.
const (
	directPointsScale  = float64(game.WinPoints)
	pendingPointsScale = 40 // a royal marriage is the largest pending award
	talonScale         = 10 // talon size at the deal
)

// ExtractFeatures encodes a decision point as a fixed-length vector. It is
// a pure function of the perspective and the leader move: the same inputs
// always produce the same vector.
func ExtractFeatures(p *game.PlayerPerspective, leaderMove *game.Move) []float64 {
	v := make([]float64, FeatureDim)
	i := 0

	my, opp := p.MyScore(), p.OpponentScore()
	v[i+0] = float64(my.Direct) / directPointsScale
	v[i+1] = float64(my.Pending) / pendingPointsScale
	v[i+2] = float64(opp.Direct) / directPointsScale
	v[i+3] = float64(opp.Pending) / pendingPointsScale
	i += scoreFeatures

	v[i+int(p.TrumpSuit())] = 1
	i += trumpSuitFeatures

	if p.Phase() == game.PhaseOne {
		v[i] = 1
	} else {
		v[i+1] = 1
	}
	i += phaseFeatures

	v[i] = float64(p.TalonSize()) / talonScale
	i += talonFeatures

	if p.AmILeader() {
		v[i] = 1
	} else {
		v[i+1] = 1
	}
	i += leaderFeatures

	// Per-card knowledge zone. Later zones win where they overlap (the
	// face-up trump is also "seen", but its own zone is more specific).
	zones := make([]int, game.DeckSize)
	for _, c := range p.Hand() {
		zones[c.Index()] = zoneOwnHand
	}
	for _, c := range p.KnownOpponentCards() {
		zones[c.Index()] = zoneOpponentKnown
	}
	for _, c := range p.WonCards() {
		zones[c.Index()] = zoneWonSelf
	}
	for _, c := range p.OpponentWonCards() {
		zones[c.Index()] = zoneWonOpponent
	}
	if trump, ok := p.TrumpCard(); ok {
		zones[trump.Index()] = zoneTrumpFaceUp
	}
	for idx, zone := range zones {
		v[i+idx*cardZones+zone] = 1
	}
	i += cardFeatures

	// Leader move block: what this bot is answering to, if anything.
	if leaderMove == nil {
		v[i+game.DeckSize] = 1
	} else {
		if led, ok := leaderMove.LedCard(); ok {
			v[i+led.Index()] = 1
		}
		if leaderMove.IsMarriage() {
			v[i+game.DeckSize+1] = 1
		}
	}

	return v
}
