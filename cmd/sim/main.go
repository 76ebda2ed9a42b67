// Command sim runs a headless bot-vs-bot Toco match for rules sanity checks.
// It drives the app service directly, with no Nakama runtime involved.
package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"toco/internal/app"
	"toco/internal/bot"
	"toco/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}

	seed := envInt64("TOCO_SIM_SEED", 1)
	hands := int(envInt64("TOCO_SIM_HANDS", 10))

	rng := rand.New(rand.NewSource(seed))
	svc := app.NewService(rng)

	agents := map[string]*bot.Agent{}
	var seats [2]string
	for i := range seats {
		a := bot.NewAgent(i, rng)
		agents[a.UserID] = a
		seats[i] = a.UserID
	}

	game, _, err := svc.StartMatch(seats)
	if err != nil {
		log.Fatalf("start match: %v", err)
	}
	log.Printf("match started: target=%s lives=%d", game.TocoTarget, game.Lives)

	for played := 0; played < hands; {
		switch game.Phase {
		case domain.PhaseChooseTrump:
			agent := agents[game.TocoTarget]
			suit := agent.ChooseTrump()
			if _, err := svc.ChooseTrump(game, game.TocoTarget, suit); err != nil {
				log.Fatalf("choose trump: %v", err)
			}
			log.Printf("hand %d: %s picked %s", played+1, agent.Name, suit)

		case domain.PhaseDealing:
			if _, err := svc.Deal(game); err != nil {
				log.Fatalf("deal: %v", err)
			}

		case domain.PhasePlaying:
			if len(game.TableCards) == len(game.Seats) {
				if _, err := svc.ResolveTrick(game); err != nil {
					log.Fatalf("resolve trick: %v", err)
				}
				continue
			}
			actor := game.Turn
			agent := agents[actor]
			card := agent.Play(game.Hands[actor], game.TableCards, game.TrumpSuit)
			if _, err := svc.PlayCard(game, actor, card.ID); err != nil {
				log.Fatalf("play card %s by %s: %v", card, agent.Name, err)
			}

		case domain.PhaseRoundEnd:
			played++
			r := game.RoundResult
			log.Printf("hand %d over: %s (winner=%s, lives=%d, target=%s)",
				played, r.Type, agents[r.WinnerID].Name, game.Lives, agents[game.TocoTarget].Name)
			if played < hands {
				if _, err := svc.StartNextHand(game); err != nil {
					log.Fatalf("next hand: %v", err)
				}
			}
		}
	}

	for _, seat := range seats {
		log.Printf("final: %s tocos=%d", agents[seat].Name, game.GamePoints[seat])
	}
}

func envInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
