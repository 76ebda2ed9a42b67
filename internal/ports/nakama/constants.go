package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameToco is the authoritative match handler name registered with Nakama.
	MatchNameToco = "toco_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartMatch  int64 = 1
	OpChooseTrump int64 = 2
	OpPlayCard    int64 = 3
	OpNextHand    int64 = 4
	OpForceTurn   int64 = 5

	// Server -> Client events
	OpPlayerJoined    int64 = 101
	OpPlayerLeft      int64 = 102
	OpMatchStarted    int64 = 103
	OpHandStarted     int64 = 104
	OpTrumpChosen     int64 = 105
	OpHandDealt       int64 = 106 // send privately
	OpPlayingBegan    int64 = 107
	OpCardPlayed      int64 = 108
	OpTrickResolved   int64 = 109
	OpCardDrawn       int64 = 110 // send privately
	OpRoundEnded      int64 = 111
	OpTurnForced      int64 = 112
	OpFeedbackCleared int64 = 113
)
