package domain

import "errors"

// Play records one card placed on the table by a player. Insertion order in
// TableCards is play order; the first play sets the lead suit.
type Play struct {
	PlayerID string `json:"player_id"`
	Card     Card   `json:"card"`
}

// TrickResult describes the outcome of a resolved trick.
type TrickResult struct {
	WinnerID string
	LoserID  string
	Points   int
	Lead     Suit
}

// ErrIncompleteTrick is returned when resolution is attempted before both
// players have played. Correct sequencing never produces it.
var ErrIncompleteTrick = errors.New("trick resolution requires two plays")

// ResolveTrick decides the winner of a completed trick and the points awarded.
// If more than two plays are present only the last two are authoritative.
// Score crediting, card drawing and turn passing belong to the caller.
func ResolveTrick(plays []Play, trump Suit) (TrickResult, error) {
	if len(plays) > 2 {
		plays = plays[len(plays)-2:]
	}
	if len(plays) < 2 {
		return TrickResult{}, ErrIncompleteTrick
	}

	first, second := plays[0], plays[1]
	lead := first.Card.Suit

	winner, loser := first, second
	if CardPower(second.Card, trump, lead) > CardPower(first.Card, trump, lead) {
		winner, loser = second, first
	}

	return TrickResult{
		WinnerID: winner.PlayerID,
		LoserID:  loser.PlayerID,
		Points:   CardPoints(first.Card, trump) + CardPoints(second.Card, trump),
		Lead:     lead,
	}, nil
}
