package app

import (
	"errors"
	"math/rand"
	"time"

	"toco/internal/domain"
)

// Service contains the Toco use-cases operating on authoritative domain
// state. Every mutation of a Game goes through one of its methods; the guards
// here are the real contract, client-side affordances are only polish.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers    = errors.New("not enough players to start")
	ErrNotChoosingTrump = errors.New("match not in trump selection")
	ErrNotDealing       = errors.New("match not in dealing phase")
	ErrNotPlaying       = errors.New("match not in playing phase")
	ErrNotRoundEnd      = errors.New("match not in round end")
	ErrNotTarget        = errors.New("actor is not the toco target")
	ErrUnknownPlayer    = errors.New("player not seated")
	ErrNotYourTurn      = errors.New("not the actor's turn")
	ErrAlreadyPlayed    = errors.New("actor already played this trick")
	ErrCardNotHeld      = errors.New("card not in actor's hand")
	ErrInvalidSuit      = errors.New("unknown trump suit")
)

// StartMatch creates a fresh Game for the two seated players, zeroes the
// permanent toco points, picks a uniformly random initial target and enters
// trump selection for the first hand.
func (s *Service) StartMatch(seats [2]string) (*domain.Game, []Event, error) {
	if seats[0] == "" || seats[1] == "" {
		return nil, nil, ErrTooFewPlayers
	}

	g := &domain.Game{
		Seats:      seats,
		GamePoints: map[string]int{seats[0]: 0, seats[1]: 0},
		TocoTarget: seats[s.rng.Intn(2)],
		Lives:      InitialLives,
	}
	s.prepareHand(g)

	events := []Event{
		{
			Kind: EventMatchStarted,
			Payload: MatchStartedPayload{
				TocoTarget: g.TocoTarget,
				Lives:      g.Lives,
				GamePoints: g.GamePoints,
			},
		},
		handStartedEvent(g),
	}
	return g, events, nil
}

// ChooseTrump records the trump suit picked by the toco target and moves the
// hand into the dealing phase.
func (s *Service) ChooseTrump(g *domain.Game, actor string, suit domain.Suit) ([]Event, error) {
	if g.Phase != domain.PhaseChooseTrump {
		return nil, ErrNotChoosingTrump
	}
	if actor != g.TocoTarget {
		return nil, ErrNotTarget
	}
	if !domain.IsValidSuit(suit) {
		return nil, ErrInvalidSuit
	}

	g.TrumpSuit = suit
	g.Phase = domain.PhaseDealing

	return []Event{{
		Kind:    EventTrumpChosen,
		Payload: TrumpChosenPayload{TrumpSuit: suit, ChosenBy: actor},
	}}, nil
}

// Deal gives each player their opening cards in seat order, sets the first
// turn to the toco target and enters the playing phase.
func (s *Service) Deal(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhaseDealing {
		return nil, ErrNotDealing
	}

	g.Hands = make(map[string][]domain.Card, len(g.Seats))
	events := make([]Event, 0, len(g.Seats)+1)
	idx := 0
	for _, userID := range g.Seats {
		hand := append([]domain.Card(nil), g.Deck[idx:idx+HandSize]...)
		g.Hands[userID] = hand
		idx += HandSize

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: hand},
			Recipients: []string{userID},
		})
	}
	g.Deck = g.Deck[idx:]

	g.Turn = g.TocoTarget
	g.Phase = domain.PhasePlaying

	events = append(events, Event{
		Kind:    EventPlayingBegan,
		Payload: PlayingBeganPayload{FirstTurn: g.Turn, DeckCount: len(g.Deck)},
	})
	return events, nil
}

// PlayCard validates and applies a play intent. Intents arrive from an
// untrusted peer, so every guard is re-checked here regardless of what the
// client UI allowed.
func (s *Service) PlayCard(g *domain.Game, actor, cardID string) ([]Event, error) {
	if g.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if !g.IsSeated(actor) {
		return nil, ErrUnknownPlayer
	}
	if g.Turn != actor {
		return nil, ErrNotYourTurn
	}
	if g.HasPlayedThisTrick(actor) {
		return nil, ErrAlreadyPlayed
	}
	card, ok := domain.FindCard(g.Hands[actor], cardID)
	if !ok {
		return nil, ErrCardNotHeld
	}

	g.Hands[actor], _ = domain.RemoveCard(g.Hands[actor], cardID)
	g.TableCards = append(g.TableCards, domain.Play{PlayerID: actor, Card: card})

	payload := CardPlayedPayload{UserID: actor, Card: card}
	if len(g.TableCards) < len(g.Seats) {
		g.Turn = g.Opponent(actor)
		payload.NextTurn = g.Turn
	} else {
		// Both cards are down; the turn stays parked until resolution
		// assigns it to the trick winner.
		payload.TrickComplete = true
	}

	return []Event{{Kind: EventCardPlayed, Payload: payload}}, nil
}

// ResolveTrick settles the completed trick: credits points, publishes
// feedback, deals the replacement cards and passes the turn to the winner, or
// ends the hand when the point goal is reached. Invoking it on an
// already-cleared table is a no-op, so a duplicate trigger is harmless.
func (s *Service) ResolveTrick(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhasePlaying || len(g.TableCards) == 0 {
		return nil, nil
	}
	if len(g.TableCards) < len(g.Seats) {
		// Invariant violation: resolution fired on a half trick. Clear the
		// table and award nothing.
		g.TableCards = nil
		return nil, domain.ErrIncompleteTrick
	}

	result, err := domain.ResolveTrick(g.TableCards, g.TrumpSuit)
	if err != nil {
		g.TableCards = nil
		return nil, err
	}

	g.RoundScores[result.WinnerID] += result.Points
	g.TableCards = nil
	g.TrickFeedback = &domain.TrickFeedback{WinnerID: result.WinnerID, Points: result.Points}

	if g.RoundScores[result.WinnerID] >= PointsGoal {
		return s.endHand(g, result.WinnerID), nil
	}

	events := make([]Event, 0, 3)
	if len(g.Deck) >= 2 {
		// Winner draws first, then the loser. With fewer than two cards
		// left nobody draws and the hands simply run out.
		for _, userID := range []string{result.WinnerID, result.LoserID} {
			card := g.Deck[0]
			g.Deck = g.Deck[1:]
			g.Hands[userID] = append(g.Hands[userID], card)
			events = append(events, Event{
				Kind:       EventCardDrawn,
				Payload:    CardDrawnPayload{UserID: userID, Card: card},
				Recipients: []string{userID},
			})
		}
	}

	g.Turn = result.WinnerID

	events = append(events, Event{
		Kind: EventTrickResolved,
		Payload: TrickResolvedPayload{
			WinnerID:    result.WinnerID,
			Points:      result.Points,
			RoundScores: copyScores(g.RoundScores),
			NextTurn:    g.Turn,
			DeckCount:   len(g.Deck),
		},
	})
	return events, nil
}

// StartNextHand begins the next hand after a round end. The current toco
// target carries over and picks the next trump.
func (s *Service) StartNextHand(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhaseRoundEnd {
		return nil, ErrNotRoundEnd
	}
	s.prepareHand(g)
	return []Event{handStartedEvent(g)}, nil
}

// ForceTurnToTarget is the operator escape hatch: it hands the turn back to
// the toco target in case the match stalls. It never changes anything else.
func (s *Service) ForceTurnToTarget(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	g.Turn = g.TocoTarget
	return []Event{{
		Kind:    EventTurnForced,
		Payload: TurnForcedPayload{Turn: g.Turn},
	}}, nil
}

// endHand applies the meta-game rules when a hand's point goal is reached.
func (s *Service) endHand(g *domain.Game, winnerID string) []Event {
	loserID := g.Opponent(winnerID)

	result := domain.RoundResult{WinnerID: winnerID, LoserID: loserID}
	if winnerID == g.TocoTarget {
		result.Type = domain.ResultEscaped
		g.TocoTarget = loserID
		g.Lives = InitialLives
	} else {
		g.Lives--
		if g.Lives > 0 {
			result.Type = domain.ResultLifeLost
		} else {
			result.Type = domain.ResultTocoConfirmed
			g.GamePoints[winnerID]++
			g.Lives = InitialLives
		}
	}

	g.RoundResult = &result
	g.Phase = domain.PhaseRoundEnd
	g.Turn = ""
	g.TrickFeedback = nil

	return []Event{{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Result:     result,
			Lives:      g.Lives,
			TocoTarget: g.TocoTarget,
			GamePoints: copyScores(g.GamePoints),
		},
	}}
}

// prepareHand resets all per-hand state and enters trump selection. The deck
// is replaced wholesale; prior card identities are never reused or mutated.
func (s *Service) prepareHand(g *domain.Game) {
	g.Deck = domain.ShuffleDeck(domain.NewDeck(), s.rng)
	g.Hands = make(map[string][]domain.Card, len(g.Seats))
	g.TableCards = nil
	g.TrumpSuit = ""
	g.Turn = ""
	g.RoundScores = map[string]int{g.Seats[0]: 0, g.Seats[1]: 0}
	g.RoundResult = nil
	g.TrickFeedback = nil
	g.Phase = domain.PhaseChooseTrump
}

func handStartedEvent(g *domain.Game) Event {
	return Event{
		Kind: EventHandStarted,
		Payload: HandStartedPayload{
			TocoTarget: g.TocoTarget,
			Lives:      g.Lives,
			DeckCount:  len(g.Deck),
		},
	}
}

func copyScores(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
