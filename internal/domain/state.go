package domain

// Phase represents the lifecycle stage of a Toco match.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhaseChooseTrump waits for the toco target to pick the hand's trump suit.
	PhaseChooseTrump Phase = "choose_trump"
	// PhaseDealing is the transient state in which hands are dealt.
	PhaseDealing Phase = "dealing"
	// PhasePlaying is the active state where tricks are played.
	PhasePlaying Phase = "playing"
	// PhaseRoundEnd is the state after a hand reaches the point goal.
	PhaseRoundEnd Phase = "round_end"
)

// RoundResultType classifies how a hand ended for the toco target.
type RoundResultType string

const (
	// ResultEscaped: the target won the hand; the toco passes to the opponent.
	ResultEscaped RoundResultType = "escaped"
	// ResultLifeLost: the target lost the hand but has lives remaining.
	ResultLifeLost RoundResultType = "life_lost"
	// ResultTocoConfirmed: the target ran out of lives; the winner scores a toco point.
	ResultTocoConfirmed RoundResultType = "toco_confirmed"
)

// RoundResult is the transient record published when a hand ends. It is
// cleared when the next hand starts.
type RoundResult struct {
	Type     RoundResultType `json:"type"`
	WinnerID string          `json:"winner_id"`
	LoserID  string          `json:"loser_id"`
}

// TrickFeedback is the transient record describing the last resolved trick.
// The port layer expires it after a short display window.
type TrickFeedback struct {
	WinnerID string `json:"winner_id"`
	Points   int    `json:"points"`
}

// Game holds the authoritative state for one Toco match. Only the app service
// mutates it; every other component reads replicated copies.
type Game struct {
	Phase Phase

	// Seats is the participant list in join order. Index order determines
	// deal order and turn rotation.
	Seats [2]string

	Deck       []Card
	Hands      map[string][]Card
	TableCards []Play

	TrumpSuit Suit   // empty until chosen for the hand
	Turn      string // empty outside the playing phase

	RoundScores map[string]int
	GamePoints  map[string]int

	TocoTarget string
	Lives      int

	RoundResult   *RoundResult
	TrickFeedback *TrickFeedback
}

// Opponent returns the other seated player, or "" if playerID is not seated.
func (g *Game) Opponent(playerID string) string {
	switch playerID {
	case g.Seats[0]:
		return g.Seats[1]
	case g.Seats[1]:
		return g.Seats[0]
	default:
		return ""
	}
}

// IsSeated reports whether playerID occupies one of the two seats.
func (g *Game) IsSeated(playerID string) bool {
	return playerID != "" && (playerID == g.Seats[0] || playerID == g.Seats[1])
}

// HasPlayedThisTrick reports whether playerID already holds a slot in the
// current, not yet resolved trick.
func (g *Game) HasPlayedThisTrick(playerID string) bool {
	for _, p := range g.TableCards {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// RemoveCard removes the card with the given id from a hand. The second
// return value reports whether the card was present.
func RemoveCard(hand []Card, cardID string) ([]Card, bool) {
	for i, c := range hand {
		if c.ID == cardID {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, true
		}
	}
	return hand, false
}

// FindCard returns the card with the given id from a hand.
func FindCard(hand []Card, cardID string) (Card, bool) {
	for _, c := range hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}
