package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the presentation-pacing and bot tuning knobs. None of the
// delays are correctness mechanisms; they only make state changes perceptible
// to humans watching the table.
type GameConfig struct {
	// SettleDelayTicks is how many match ticks to wait between the second
	// card hitting the table and trick resolution.
	SettleDelayTicks int64 `json:"settle_delay_ticks"`
	// FeedbackTicks is how long the trick feedback banner stays visible.
	FeedbackTicks int64 `json:"feedback_ticks"`
	// BotMinDelaySeconds is the minimum a bot waits before acting.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	// BotMaxDelaySeconds is the maximum a bot waits before acting.
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds is how long a lone human waits in the lobby
	// before a bot takes the empty seat.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

// Defaults assume the 10 ticks/second rate the match handler registers with.
const (
	defaultSettleDelayTicks = 12 // ~1.2s
	defaultFeedbackTicks    = 25 // ~2.5s
	defaultBotMinDelaySec   = 1
	defaultBotMaxDelaySec   = 3
	defaultBotAutoFillSec   = 5
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// SettleDelayTicks returns the configured settle delay or its default.
func SettleDelayTicks() int64 {
	if cfg != nil && cfg.SettleDelayTicks > 0 {
		return cfg.SettleDelayTicks
	}
	return defaultSettleDelayTicks
}

// FeedbackTicks returns the configured feedback window or its default.
func FeedbackTicks() int64 {
	if cfg != nil && cfg.FeedbackTicks > 0 {
		return cfg.FeedbackTicks
	}
	return defaultFeedbackTicks
}

// BotMinDelaySeconds returns the configured minimum bot think time.
func BotMinDelaySeconds() int {
	if cfg != nil && cfg.BotMinDelaySeconds > 0 {
		return cfg.BotMinDelaySeconds
	}
	return defaultBotMinDelaySec
}

// BotMaxDelaySeconds returns the configured maximum bot think time.
func BotMaxDelaySeconds() int {
	if cfg != nil && cfg.BotMaxDelaySeconds > 0 {
		return cfg.BotMaxDelaySeconds
	}
	return defaultBotMaxDelaySec
}

// BotAutoFillDelaySeconds returns the configured lobby auto-fill delay.
func BotAutoFillDelaySeconds() int {
	if cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
		return cfg.BotAutoFillDelaySeconds
	}
	return defaultBotAutoFillSec
}
