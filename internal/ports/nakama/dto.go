package nakama

import (
	"toco/internal/domain"
)

// Wire payloads are JSON. Field names follow the replicated-store keys the
// web client binds to.

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// ChooseTrumpRequest is the client intent to fix the hand's trump suit.
type ChooseTrumpRequest struct {
	Suit domain.Suit `json:"suit"`
}

// PlayCardRequest is the client intent to place a card on the table.
type PlayCardRequest struct {
	CardID string `json:"card_id"`
}

// SeatInfo describes one seated participant for lobby and snapshot payloads.
type SeatInfo struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
}

// SnapshotPayload is the full replicated view sent on joins. Hands are never
// included; they travel privately via OpHandDealt/OpCardDrawn.
type SnapshotPayload struct {
	Phase       string         `json:"game_state"`
	Seats       []SeatInfo     `json:"seats"`
	TableCards  []domain.Play  `json:"table_cards"`
	TrumpSuit   domain.Suit    `json:"trump_suit,omitempty"`
	Turn        string         `json:"turn,omitempty"`
	RoundScores map[string]int `json:"round_scores,omitempty"`
	GamePoints  map[string]int `json:"game_points,omitempty"`
	TocoTarget  string         `json:"toco_target,omitempty"`
	Lives       int            `json:"lives,omitempty"`
	DeckCount   int            `json:"deck_count"`
}

// MatchStartedEvent announces a fresh match and its initial toco target.
type MatchStartedEvent struct {
	TocoTarget string         `json:"toco_target"`
	Lives      int            `json:"lives"`
	GamePoints map[string]int `json:"game_points"`
}

// HandStartedEvent announces a new hand entering trump selection.
type HandStartedEvent struct {
	Phase      string `json:"game_state"`
	TocoTarget string `json:"toco_target"`
	Lives      int    `json:"lives"`
	DeckCount  int    `json:"deck_count"`
}

// TrumpChosenEvent announces the trump suit fixed for the hand.
type TrumpChosenEvent struct {
	TrumpSuit domain.Suit `json:"trump_suit"`
	ChosenBy  string      `json:"chosen_by"`
}

// HandDealtEvent carries a player's private opening cards.
type HandDealtEvent struct {
	Hand []domain.Card `json:"hand"`
}

// PlayingBeganEvent announces the playing phase and the opening turn.
type PlayingBeganEvent struct {
	Phase     string `json:"game_state"`
	Turn      string `json:"turn"`
	DeckCount int    `json:"deck_count"`
}

// CardPlayedEvent announces a card placed on the table.
type CardPlayedEvent struct {
	UserID        string      `json:"user_id"`
	Card          domain.Card `json:"card"`
	Turn          string      `json:"turn,omitempty"`
	TrickComplete bool        `json:"trick_complete"`
}

// TrickResolvedEvent announces the trick winner, mirroring the transient
// trick feedback the client shows.
type TrickResolvedEvent struct {
	WinnerID    string         `json:"winner_id"`
	WinnerName  string         `json:"winner_name"`
	Points      int            `json:"points"`
	RoundScores map[string]int `json:"round_scores"`
	Turn        string         `json:"turn"`
	DeckCount   int            `json:"deck_count"`
}

// CardDrawnEvent carries the private post-trick replacement card.
type CardDrawnEvent struct {
	Card domain.Card `json:"card"`
}

// RoundEndedEvent publishes the hand result and updated meta-game state.
type RoundEndedEvent struct {
	Phase      string             `json:"game_state"`
	Result     domain.RoundResult `json:"round_result"`
	Lives      int                `json:"lives"`
	TocoTarget string             `json:"toco_target"`
	GamePoints map[string]int     `json:"game_points"`
}

// TurnForcedEvent announces the owner's failsafe turn reset.
type TurnForcedEvent struct {
	Turn string `json:"turn"`
}
