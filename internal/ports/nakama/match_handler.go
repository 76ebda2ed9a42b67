package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"toco/internal/app"
	"toco/internal/bot"
	"toco/internal/config"
	"toco/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler. The domain Game inside it is the single source of truth; clients
// only ever see broadcast copies and submit intents.
type MatchState struct {
	Seats     [2]string                   `json:"seats"`      // user IDs in join order; join order = deal order
	OwnerSeat int                         `json:"owner_seat"` // seat index allowed to start/advance the match
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in lobby

	// Tick-scheduled side effects. Purely presentational pacing; resolution
	// itself is idempotent and safe against duplicate triggers.
	ResolveAtTick     int64 `json:"resolve_at_tick"`
	FeedbackClearTick int64 `json:"feedback_clear_tick"`

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`
	BotMaxDelay          int                   `json:"bot_max_delay"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`
}

const tickRate = 10

// GetOpenSeatsCount returns the number of unoccupied seats.
func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

// GetHumanPlayerCount returns the number of seated human players.
func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing Toco match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}

	state := &MatchState{
		Tick:             time.Now().Unix(),
		OwnerSeat:        -1,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotMinDelay:      config.BotMinDelaySeconds(),
		BotMaxDelay:      config.BotMaxDelaySeconds(),
		BotAutoFillDelay: config.BotAutoFillDelaySeconds(),
	}

	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["toco_bots_enabled"]; ok {
			state.BotsEnabled = val == "true"
		}
		if val, ok := env["toco_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				state.BotMinDelay = i
			}
		}
		if val, ok := env["toco_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				state.BotMaxDelay = i
			}
		}
		if val, ok := env["toco_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				state.BotAutoFillDelay = i
			}
		}
	}

	labelBytes, _ := json.Marshal(Label{Open: true, Game: "toco", Phase: string(domain.PhaseLobby)})
	return state, tickRate, string(labelBytes)
}

// MatchJoinAttempt validates whether a presence may join: an open seat, a
// replaceable bot seat, or a rejoin of an already-held seat.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	for _, seatUserID := range matchState.Seats {
		if seatUserID == presence.GetUserId() {
			return state, true, "" // rejoin
		}
	}

	if matchState.GetOpenSeatsCount() > 0 {
		return state, true, ""
	}

	if matchState.Game == nil {
		for _, seatUserID := range matchState.Seats {
			if bot.IsBot(seatUserID) {
				return state, true, ""
			}
		}
	}

	return state, false, "match_full"
}

// MatchJoin seats joining presences, assigns the owner and replicates the
// current state to everyone. A rejoining player gets their hand re-sent
// privately.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if seatOf(matchState.Seats[:], p.GetUserId()) >= 0 {
			// Rejoin: re-sync the private hand if a game is running.
			if matchState.Game != nil {
				mh.sendHand(matchState, dispatcher, logger, p.GetUserId())
			}
			continue
		}

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave removes presences. Seats are only freed while in the lobby so a
// mid-game disconnect can rejoin; a match with no humans left terminates.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if matchState.Game == nil {
			if i := seatOf(matchState.Seats[:], p.GetUserId()); i >= 0 {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			}
		}
	}

	humansConnected := 0
	for userID := range matchState.Presences {
		if !bot.IsBot(userID) {
			humansConnected++
		}
	}
	if humansConnected == 0 {
		logger.Info("MatchLeave: Terminating match with no humans connected.")
		return nil
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLoop processes client intents, then runs the tick-scheduled work:
// dealing after trump selection, delayed trick resolution, feedback expiry
// and bot turns.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartMatch:
			mh.handleStartMatch(matchState, dispatcher, logger, msg)
		case OpChooseTrump:
			mh.handleChooseTrump(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		case OpNextHand:
			mh.handleNextHand(matchState, dispatcher, logger, msg)
		case OpForceTurn:
			mh.handleForceTurn(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.Game != nil {
		mh.runScheduled(matchState, dispatcher, logger)
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

// runScheduled advances the deferred actions owned by the authoritative side.
func (mh *matchHandler) runScheduled(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game

	// The dealing phase is transient: the deal happens on the tick after
	// trump selection, mirroring the original's dealing "sensor".
	if g.Phase == domain.PhaseDealing {
		events, err := state.App.Deal(g)
		if err != nil {
			logger.Error("runScheduled: deal failed: %v", err)
			return
		}
		mh.broadcastEvents(state, dispatcher, logger, events)
	}

	if g.Phase == domain.PhasePlaying && len(g.TableCards) == len(g.Seats) && state.ResolveAtTick == 0 {
		state.ResolveAtTick = state.Tick + config.SettleDelayTicks()
	}

	if state.ResolveAtTick > 0 && state.Tick >= state.ResolveAtTick {
		state.ResolveAtTick = 0
		events, err := state.App.ResolveTrick(g)
		if err != nil {
			logger.Warn("runScheduled: trick resolution aborted: %v", err)
		}
		mh.broadcastEvents(state, dispatcher, logger, events)

		if g.TrickFeedback != nil {
			state.FeedbackClearTick = state.Tick + config.FeedbackTicks()
		}
		if g.Phase == domain.PhaseRoundEnd {
			state.FeedbackClearTick = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}

	if state.FeedbackClearTick > 0 && state.Tick >= state.FeedbackClearTick {
		state.FeedbackClearTick = 0
		if g.TrickFeedback != nil {
			g.TrickFeedback = nil
			dispatcher.BroadcastMessage(OpFeedbackCleared, nil, nil, nil, true)
		}
	}
}

// processBots fills a lone human's lobby with a bot after a delay and drives
// seated bots when it is their turn to choose trump or play.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay)*tickRate {
				for i, seat := range state.Seats {
					if seat == "" {
						agent := bot.NewAgent(i, rand.New(rand.NewSource(time.Now().UnixNano())))
						state.Seats[i] = agent.UserID
						state.Bots[agent.UserID] = agent
						logger.Info("processBots: Added bot %s to seat %d", agent.Name, i)
						break
					}
				}
				state.LastSinglePlayerTick = 0
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastSnapshot(state, dispatcher, logger)
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	g := state.Game

	var actor string
	switch {
	case g.Phase == domain.PhaseChooseTrump && bot.IsBot(g.TocoTarget):
		actor = g.TocoTarget
	case g.Phase == domain.PhasePlaying && bot.IsBot(g.Turn) && !g.HasPlayedThisTrick(g.Turn):
		actor = g.Turn
	default:
		state.BotWaitUntil = 0
		return
	}

	agent, exists := state.Bots[actor]
	if !exists {
		logger.Error("processBots: No agent for bot seat %s", actor)
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)*tickRate
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	var events []app.Event
	var err error
	if g.Phase == domain.PhaseChooseTrump {
		events, err = state.App.ChooseTrump(g, actor, agent.ChooseTrump())
	} else {
		card := agent.Play(g.Hands[actor], g.TableCards, g.TrumpSuit)
		events, err = state.App.PlayCard(g, actor, card.ID)
	}
	if err != nil {
		logger.Warn("processBots: Bot %s action rejected: %v", actor, err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartMatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := seatOf(state.Seats[:], msg.GetUserId())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartMatch: User %s tried to start but is not owner (owner_seat=%d)", msg.GetUserId(), state.OwnerSeat)
		return
	}
	if state.Game != nil {
		logger.Warn("StartMatch: Match already started.")
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		logger.Warn("StartMatch: Cannot start with open seats. Need %d players.", app.MinPlayersToStart)
		return
	}

	game, events, err := state.App.StartMatch(state.Seats)
	if err != nil {
		logger.Warn("StartMatch: rejected: %v", err)
		return
	}
	state.Game = game

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
	logger.Info("StartMatch: Match started, toco target is %s.", game.TocoTarget)
}

func (mh *matchHandler) handleChooseTrump(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleChooseTrump: Match not started.")
		return
	}

	var request ChooseTrumpRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleChooseTrump: Invalid request from %s: %v", msg.GetUserId(), err)
		return
	}

	events, err := state.App.ChooseTrump(state.Game, msg.GetUserId(), request.Suit)
	if err != nil {
		// Invalid intents are dropped silently; the guard is the contract.
		logger.Warn("handleChooseTrump: User %s rejected: %v", msg.GetUserId(), err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handlePlayCard: Match not started.")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCard: Invalid request from %s: %v", msg.GetUserId(), err)
		return
	}

	events, err := state.App.PlayCard(state.Game, msg.GetUserId(), request.CardID)
	if err != nil {
		logger.Warn("handlePlayCard: User %s rejected: %v", msg.GetUserId(), err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleNextHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleNextHand: Match not started.")
		return
	}
	if seatOf(state.Seats[:], msg.GetUserId()) != state.OwnerSeat {
		logger.Warn("handleNextHand: User %s is not owner.", msg.GetUserId())
		return
	}

	events, err := state.App.StartNextHand(state.Game)
	if err != nil {
		logger.Warn("handleNextHand: rejected: %v", err)
		return
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleForceTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game == nil {
		logger.Warn("handleForceTurn: Match not started.")
		return
	}
	if seatOf(state.Seats[:], msg.GetUserId()) != state.OwnerSeat {
		logger.Warn("handleForceTurn: User %s is not owner.", msg.GetUserId())
		return
	}

	events, err := state.App.ForceTurnToTarget(state.Game)
	if err != nil {
		logger.Warn("handleForceTurn: rejected: %v", err)
		return
	}
	logger.Info("handleForceTurn: Owner forced turn back to target %s.", state.Game.TocoTarget)
	mh.broadcastEvents(state, dispatcher, logger, events)
}

// broadcastEvents converts app events to wire payloads and dispatches them,
// honoring targeted recipients for private hand data.
func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, payload := mh.convertEvent(state, ev)
		if payload == nil {
			logger.Warn("broadcastEvents: Unknown event kind: %v", ev.Kind)
			continue
		}

		bytes, err := json.Marshal(payload)
		if err != nil {
			logger.Error("broadcastEvents: Failed to marshal %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}
			// Targeted events whose recipients are all offline (bots) must
			// not fall back to a broadcast.
			if len(recipients) == 0 {
				continue
			}
		}

		dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
	}
}

func (mh *matchHandler) convertEvent(state *MatchState, ev app.Event) (int64, any) {
	switch ev.Kind {
	case app.EventMatchStarted:
		p := ev.Payload.(app.MatchStartedPayload)
		return OpMatchStarted, MatchStartedEvent{TocoTarget: p.TocoTarget, Lives: p.Lives, GamePoints: p.GamePoints}
	case app.EventHandStarted:
		p := ev.Payload.(app.HandStartedPayload)
		return OpHandStarted, HandStartedEvent{
			Phase:      string(domain.PhaseChooseTrump),
			TocoTarget: p.TocoTarget,
			Lives:      p.Lives,
			DeckCount:  p.DeckCount,
		}
	case app.EventTrumpChosen:
		p := ev.Payload.(app.TrumpChosenPayload)
		return OpTrumpChosen, TrumpChosenEvent{TrumpSuit: p.TrumpSuit, ChosenBy: p.ChosenBy}
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		return OpHandDealt, HandDealtEvent{Hand: p.Hand}
	case app.EventPlayingBegan:
		p := ev.Payload.(app.PlayingBeganPayload)
		return OpPlayingBegan, PlayingBeganEvent{
			Phase:     string(domain.PhasePlaying),
			Turn:      p.FirstTurn,
			DeckCount: p.DeckCount,
		}
	case app.EventCardPlayed:
		p := ev.Payload.(app.CardPlayedPayload)
		return OpCardPlayed, CardPlayedEvent{
			UserID:        p.UserID,
			Card:          p.Card,
			Turn:          p.NextTurn,
			TrickComplete: p.TrickComplete,
		}
	case app.EventTrickResolved:
		p := ev.Payload.(app.TrickResolvedPayload)
		return OpTrickResolved, TrickResolvedEvent{
			WinnerID:    p.WinnerID,
			WinnerName:  mh.displayName(state, p.WinnerID),
			Points:      p.Points,
			RoundScores: p.RoundScores,
			Turn:        p.NextTurn,
			DeckCount:   p.DeckCount,
		}
	case app.EventCardDrawn:
		p := ev.Payload.(app.CardDrawnPayload)
		return OpCardDrawn, CardDrawnEvent{Card: p.Card}
	case app.EventRoundEnded:
		p := ev.Payload.(app.RoundEndedPayload)
		return OpRoundEnded, RoundEndedEvent{
			Phase:      string(domain.PhaseRoundEnd),
			Result:     p.Result,
			Lives:      p.Lives,
			TocoTarget: p.TocoTarget,
			GamePoints: p.GamePoints,
		}
	case app.EventTurnForced:
		p := ev.Payload.(app.TurnForcedPayload)
		return OpTurnForced, TurnForcedEvent{Turn: p.Turn}
	default:
		return 0, nil
	}
}

// sendHand re-sends a seated player's private cards, used on rejoin.
func (mh *matchHandler) sendHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	hand, ok := state.Game.Hands[userID]
	if !ok {
		return
	}
	p, ok := state.Presences[userID]
	if !ok {
		return
	}
	bytes, err := json.Marshal(HandDealtEvent{Hand: hand})
	if err != nil {
		logger.Error("sendHand: marshal failed: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpHandDealt, bytes, []runtime.Presence{p}, nil, true)
}

// broadcastSnapshot replicates the shared (non-private) state to everyone.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := SnapshotPayload{Phase: string(domain.PhaseLobby)}

	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		snapshot.Seats = append(snapshot.Seats, SeatInfo{
			UserID:      userID,
			Seat:        i,
			DisplayName: mh.displayName(state, userID),
			IsOwner:     i == state.OwnerSeat,
			IsBot:       bot.IsBot(userID),
		})
	}

	if g := state.Game; g != nil {
		snapshot.Phase = string(g.Phase)
		snapshot.TableCards = g.TableCards
		snapshot.TrumpSuit = g.TrumpSuit
		snapshot.Turn = g.Turn
		snapshot.RoundScores = g.RoundScores
		snapshot.GamePoints = g.GamePoints
		snapshot.TocoTarget = g.TocoTarget
		snapshot.Lives = g.Lives
		snapshot.DeckCount = len(g.Deck)
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: marshal failed: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpPlayerJoined, bytes, nil, nil, true)
}

func (mh *matchHandler) displayName(state *MatchState, userID string) string {
	if p, ok := state.Presences[userID]; ok {
		return p.GetUsername()
	}
	if agent, ok := state.Bots[userID]; ok {
		return agent.Name
	}
	return userID
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := domain.PhaseLobby
	if state.Game != nil {
		phase = state.Game.Phase
	}
	label := Label{
		Open:  state.Game == nil && state.GetOpenSeatsCount() > 0,
		Game:  "toco",
		Phase: string(phase),
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func seatOf(seats []string, userID string) int {
	for i, seatUserID := range seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
