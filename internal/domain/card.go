package domain

// Suit identifies one of the four card suits. The symbol and color attached to
// a suit are cosmetic; rules only ever compare suits for equality.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Suits lists every suit in catalog order.
var Suits = [4]Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// IsValidSuit reports whether s is one of the four playable suits.
func IsValidSuit(s Suit) bool {
	for _, known := range Suits {
		if s == known {
			return true
		}
	}
	return false
}

// SuitDisplay holds the presentation attributes of a suit.
type SuitDisplay struct {
	Symbol string
	Red    bool
}

// Display returns the cosmetic attributes for the suit.
func (s Suit) Display() SuitDisplay {
	switch s {
	case SuitHearts:
		return SuitDisplay{Symbol: "♥", Red: true}
	case SuitDiamonds:
		return SuitDisplay{Symbol: "♦", Red: true}
	case SuitClubs:
		return SuitDisplay{Symbol: "♣"}
	case SuitSpades:
		return SuitDisplay{Symbol: "♠"}
	default:
		return SuitDisplay{Symbol: "?"}
	}
}

// Rank is one of the ten card labels used by Toco. The strength order is
// A > 3 > 7 > 2 > K > 4 > J > 5 > Q > 6 and comes from basePower, not from the
// display ordinal.
type Rank string

const (
	RankA Rank = "A"
	Rank3 Rank = "3"
	Rank7 Rank = "7"
	Rank2 Rank = "2"
	RankK Rank = "K"
	Rank4 Rank = "4"
	RankJ Rank = "J"
	Rank5 Rank = "5"
	RankQ Rank = "Q"
	Rank6 Rank = "6"
)

// Ranks lists every rank from strongest to weakest.
var Ranks = [10]Rank{RankA, Rank3, Rank7, Rank2, RankK, Rank4, RankJ, Rank5, RankQ, Rank6}

// DisplayOrdinal returns the sort weight used when rendering a hand. It has no
// rule meaning.
func (r Rank) DisplayOrdinal() int {
	for i, known := range Ranks {
		if r == known {
			return len(Ranks) + 4 - i // A=14 down to 6=5
		}
	}
	return 0
}

// Card is an immutable playing card. ID is opaque; it exists for client keying
// and hand-membership lookups and carries no rule semantics.
type Card struct {
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
	ID   string `json:"id"`
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Display().Symbol
}

// basePower ranks the ten labels with gaps small enough that no base value can
// overcome a follow or trump bonus.
var basePower = map[Rank]int{
	RankA: 100,
	Rank3: 90,
	Rank7: 80,
	Rank2: 70,
	RankK: 60,
	Rank4: 55,
	RankJ: 50,
	Rank5: 45,
	RankQ: 40,
	Rank6: 35,
}

const (
	// trumpBonus guarantees any trump beats any non-trump.
	trumpBonus = 1000
	// followBonus guarantees a card of the lead suit beats any off-suit,
	// non-trump card, bisca included.
	followBonus = 200
)

// CardPower returns the trick-taking strength of c for the given trump suit
// and the suit that led the current trick. Distinct cards never tie: base
// powers within a suit are distinct and both bonuses exceed the whole base
// range.
func CardPower(c Card, trump, lead Suit) int {
	power := basePower[c.Rank]
	if c.Suit == trump {
		power += trumpBonus
	} else if c.Suit == lead {
		power += followBonus
	}
	return power
}

// CardPoints returns the round points c is worth toward the 31-point goal.
// The 3 and the 2 only score as trumps; every other value is unconditional.
func CardPoints(c Card, trump Suit) int {
	switch c.Rank {
	case RankA:
		return 11
	case Rank7:
		return 10
	case RankK, Rank4:
		return 4
	case RankJ, Rank5:
		return 3
	case RankQ, Rank6:
		return 2
	case Rank3, Rank2:
		if c.Suit == trump {
			return 10
		}
	}
	return 0
}
