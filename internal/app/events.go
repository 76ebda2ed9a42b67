package app

import "toco/internal/domain"

// EventKind identifies emitted app events for Nakama dispatch.
type EventKind string

const (
	EventMatchStarted  EventKind = "match_started"
	EventHandStarted   EventKind = "hand_started"
	EventTrumpChosen   EventKind = "trump_chosen"
	EventHandDealt     EventKind = "hand_dealt"
	EventPlayingBegan  EventKind = "playing_began"
	EventCardPlayed    EventKind = "card_played"
	EventTrickResolved EventKind = "trick_resolved"
	EventCardDrawn     EventKind = "card_drawn"
	EventRoundEnded    EventKind = "round_ended"
	EventTurnForced    EventKind = "turn_forced"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

// MatchStartedPayload announces the initial toco target of a fresh match.
type MatchStartedPayload struct {
	TocoTarget string
	Lives      int
	GamePoints map[string]int
}

// HandStartedPayload announces a new hand entering trump selection.
type HandStartedPayload struct {
	TocoTarget string
	Lives      int
	DeckCount  int
}

// TrumpChosenPayload announces the trump suit picked by the target.
type TrumpChosenPayload struct {
	TrumpSuit domain.Suit
	ChosenBy  string
}

// HandDealtPayload carries a player's private cards.
type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

// PlayingBeganPayload announces the transition into the playing phase.
type PlayingBeganPayload struct {
	FirstTurn string
	DeckCount int
}

// CardPlayedPayload announces a card placed on the table.
type CardPlayedPayload struct {
	UserID        string
	Card          domain.Card
	NextTurn      string // empty while the trick awaits resolution
	TrickComplete bool
}

// TrickResolvedPayload announces the outcome of a resolved trick.
type TrickResolvedPayload struct {
	WinnerID    string
	Points      int
	RoundScores map[string]int
	NextTurn    string
	DeckCount   int
}

// CardDrawnPayload carries the private post-trick replacement card.
type CardDrawnPayload struct {
	UserID string
	Card   domain.Card
}

// RoundEndedPayload publishes the hand's result and the updated meta-game.
type RoundEndedPayload struct {
	Result     domain.RoundResult
	Lives      int
	TocoTarget string
	GamePoints map[string]int
}

// TurnForcedPayload announces the owner's failsafe turn reset.
type TurnForcedPayload struct {
	Turn string
}
