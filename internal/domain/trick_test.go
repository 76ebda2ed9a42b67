package domain

import "testing"

func TestResolveTrick(t *testing.T) {
	tests := []struct {
		name       string
		plays      []Play
		trump      Suit
		wantWinner string
		wantPoints int
	}{
		{
			name: "trump six beats off-suit ace",
			plays: []Play{
				{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: Rank6, ID: "c1"}},
				{PlayerID: "b", Card: Card{Suit: SuitSpades, Rank: RankA, ID: "c2"}},
			},
			trump:      SuitHearts,
			wantWinner: "a",
			wantPoints: 13, // 2 for the 6 + 11 for the ace
		},
		{
			name: "following bisca beats stronger off-suit card",
			plays: []Play{
				{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: Rank7, ID: "c1"}},
				{PlayerID: "b", Card: Card{Suit: SuitDiamonds, Rank: RankA, ID: "c2"}},
			},
			trump:      SuitSpades,
			wantWinner: "a", // 80+200 beats a bare 100
			wantPoints: 21,
		},
		{
			name: "higher base power wins within lead suit",
			plays: []Play{
				{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: RankK, ID: "c1"}},
				{PlayerID: "b", Card: Card{Suit: SuitClubs, Rank: Rank3, ID: "c2"}},
			},
			trump:      SuitHearts,
			wantWinner: "b",
			wantPoints: 4, // non-trump 3 scores nothing
		},
		{
			name: "trump responder beats trump leader by rank",
			plays: []Play{
				{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: Rank2, ID: "c1"}},
				{PlayerID: "b", Card: Card{Suit: SuitHearts, Rank: Rank3, ID: "c2"}},
			},
			trump:      SuitHearts,
			wantWinner: "b",
			wantPoints: 20, // both trump manilhas score 10
		},
		{
			name: "only last two plays are authoritative",
			plays: []Play{
				{PlayerID: "ghost", Card: Card{Suit: SuitHearts, Rank: RankA, ID: "c0"}},
				{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: Rank6, ID: "c1"}},
				{PlayerID: "b", Card: Card{Suit: SuitClubs, Rank: RankQ, ID: "c2"}},
			},
			trump:      SuitSpades,
			wantWinner: "b",
			wantPoints: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveTrick(tt.plays, tt.trump)
			if err != nil {
				t.Fatalf("ResolveTrick error: %v", err)
			}
			if result.WinnerID != tt.wantWinner {
				t.Errorf("winner = %s, want %s", result.WinnerID, tt.wantWinner)
			}
			if result.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", result.Points, tt.wantPoints)
			}
			if result.LoserID == result.WinnerID {
				t.Errorf("loser must differ from winner")
			}
		})
	}
}

func TestResolveTrickIncomplete(t *testing.T) {
	_, err := ResolveTrick(nil, SuitHearts)
	if err != ErrIncompleteTrick {
		t.Fatalf("empty trick error = %v, want ErrIncompleteTrick", err)
	}

	_, err = ResolveTrick([]Play{{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: RankA}}}, SuitHearts)
	if err != ErrIncompleteTrick {
		t.Fatalf("half trick error = %v, want ErrIncompleteTrick", err)
	}
}
