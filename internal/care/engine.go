package care

import (
	"math/rand"
	"time"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/daily"
	"github.com/petworks/tamacore/internal/domain"
)

// Care action tuning.
const (
	FeedHungerGain = 28
	FeedEnergyGain = 6
	FeedCoinReward = 30

	SleepEnergyGain = 32
	SleepHungerCost = 6

	CleanGain = 38

	ReviveCostGems = 10
	ReviveVitals   = 60

	// Mood thresholds: at or below these a vital drives the derived mood.
	LowVitalThreshold = 20

	EmoteDuration = 900 * time.Millisecond

	// Blink is pure cosmetic flavor and intentionally non-deterministic,
	// unlike the seeded shop rotation.
	BlinkDuration = 160 * time.Millisecond
	blinkChance   = 0.01
)

// Engine implements the player-facing care actions and the mood state
// machine.
type Engine struct {
	clk   clock.Clock
	daily *daily.Engine
	rnd   func() float64
}

func NewEngine(clk clock.Clock, dailyEngine *daily.Engine) *Engine {
	return &Engine{clk: clk, daily: dailyEngine, rnd: rand.Float64}
}

// Feed raises hunger and energy, pays the care incentive and credits the
// daily feed quest.
func (e *Engine) Feed(state *domain.SaveState) error {
	if state.Mortality.IsDead {
		return domain.ErrPetIsDead
	}

	raise(&state.Vitals.Hunger, FeedHungerGain)
	raise(&state.Vitals.Energy, FeedEnergyGain)
	state.Currency.Coins += FeedCoinReward
	state.Mortality.LastCareAt = e.clk.Now().UnixMilli()

	e.daily.EnsureReset(state)
	state.Quests.FeedCount++

	e.emote(state, domain.MoodHappy)
	state.RecordEvent(domain.EventFeed)
	return nil
}

// Sleep restores energy at the cost of some hunger.
func (e *Engine) Sleep(state *domain.SaveState) error {
	if state.Mortality.IsDead {
		return domain.ErrPetIsDead
	}

	raise(&state.Vitals.Energy, SleepEnergyGain)
	raise(&state.Vitals.Hunger, -SleepHungerCost)
	state.Mortality.LastCareAt = e.clk.Now().UnixMilli()

	e.emote(state, domain.MoodTired)
	state.RecordEvent(domain.EventSleep)
	return nil
}

// Clean restores cleanliness.
func (e *Engine) Clean(state *domain.SaveState) error {
	if state.Mortality.IsDead {
		return domain.ErrPetIsDead
	}

	raise(&state.Vitals.Clean, CleanGain)
	state.Mortality.LastCareAt = e.clk.Now().UnixMilli()

	e.emote(state, domain.MoodHappy)
	state.RecordEvent(domain.EventClean)
	return nil
}

// Play credits the daily play quest. It carries no vital changes and is
// allowed even when the pet is dead, matching the activity hand-off.
func (e *Engine) Play(state *domain.SaveState) {
	e.daily.EnsureReset(state)
	state.Quests.PlayCount++
	state.RecordEvent(domain.EventPlay)
}

// Revive clears the death state for a gem fee and restores the pet to a
// recovered baseline.
func (e *Engine) Revive(state *domain.SaveState) error {
	if !state.Mortality.IsDead {
		return domain.ErrNotDead
	}
	if state.Currency.Gems < ReviveCostGems {
		return domain.ErrInsufficientGems
	}

	state.Currency.Gems -= ReviveCostGems
	state.Mortality.IsDead = false
	state.Vitals = domain.Vitals{
		Hunger: ReviveVitals,
		Energy: ReviveVitals,
		Clean:  ReviveVitals,
	}
	state.DecayCarry = domain.DecayCarry{}
	state.Mortality.LastCareAt = e.clk.Now().UnixMilli()

	state.RecordEvent(domain.EventRevive)
	return nil
}

// RecomputeMood derives the display mood from mortality and vitals. Dead
// is terminal until revive. An active emote timer transiently overrides
// the derived mood.
func (e *Engine) RecomputeMood(state *domain.SaveState) {
	if state.Mortality.IsDead {
		state.Mood = domain.MoodDead
		return
	}
	if state.EmoteUntil > e.clk.Now().UnixMilli() {
		return
	}

	switch {
	case state.Vitals.Hunger <= LowVitalThreshold:
		state.Mood = domain.MoodHungry
	case state.Vitals.Clean <= LowVitalThreshold:
		state.Mood = domain.MoodDirty
	case state.Vitals.Energy <= LowVitalThreshold:
		state.Mood = domain.MoodTired
	default:
		state.Mood = domain.MoodNeutral
	}
}

// Blink occasionally arms the blink timer. Roughly 1% of ticks.
func (e *Engine) Blink(state *domain.SaveState) {
	now := e.clk.Now().UnixMilli()
	if state.BlinkUntil > now {
		return
	}
	if e.rnd() < blinkChance {
		state.BlinkUntil = now + BlinkDuration.Milliseconds()
	}
}

func (e *Engine) emote(state *domain.SaveState, mood domain.Mood) {
	state.EmoteUntil = e.clk.Now().UnixMilli() + EmoteDuration.Milliseconds()
	state.Mood = mood
}

// raise adjusts an integer vital by a fixed delta, clamped to [0,100].
func raise(value *int, delta int) {
	*value = clock.Clamp100(float64(*value + delta))
}
