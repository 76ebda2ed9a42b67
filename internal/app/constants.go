package app

const (
	// PointsGoal ends a hand the instant one player's round score reaches it.
	PointsGoal = 31

	// HandSize is the number of cards dealt to each player at hand start.
	HandSize = 4

	// InitialLives is how many consecutive hand losses the toco target can
	// absorb before the opponent scores a permanent point.
	InitialLives = 3

	// MinPlayersToStart is the seat count required before the owner can
	// start the match.
	MinPlayersToStart = 2
)
