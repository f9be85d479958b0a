package vitals

import (
	"time"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
)

// Decay rates in stat points per hour of real time.
const (
	HungerPerHour = 2.2
	EnergyPerHour = 1.6
	CleanPerHour  = 1.2
)

// DeathDelay is how long the care lapse must persist before the pet dies.
// The countdown restarts every time care brings all three vitals above
// zero simultaneously.
const DeathDelay = 7 * 24 * time.Hour

// Engine applies time-based vital decay and the delayed-death policy.
type Engine struct {
	clk clock.Clock
}

func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clk: clk}
}

// CareOK reports whether all three vitals are strictly positive, i.e. the
// pet is in good care and the death clock does not advance.
func CareOK(state *domain.SaveState) bool {
	v := state.Vitals
	return v.Hunger > 0 && v.Energy > 0 && v.Clean > 0
}

// ApplyDecay drains vitals proportionally to elapsed real time, refreshes
// the care timestamp while the pet is in good care, and fires the one-way
// death transition after a sustained care lapse. Once dead, decay keeps
// updating the numbers but mortality state never changes here; only an
// explicit revive clears it.
func (e *Engine) ApplyDecay(state *domain.SaveState, elapsed time.Duration) {
	hours := elapsed.Hours()
	if hours > 0 {
		drain(&state.Vitals.Hunger, &state.DecayCarry.Hunger, HungerPerHour*hours)
		drain(&state.Vitals.Energy, &state.DecayCarry.Energy, EnergyPerHour*hours)
		drain(&state.Vitals.Clean, &state.DecayCarry.Clean, CleanPerHour*hours)
	}

	now := e.clk.Now().UnixMilli()
	if CareOK(state) {
		state.Mortality.LastCareAt = now
		return
	}

	if !state.Mortality.IsDead && now-state.Mortality.LastCareAt >= DeathDelay.Milliseconds() {
		state.Mortality.IsDead = true
		state.Mood = domain.MoodDead
		state.RecordEvent(domain.EventPetDied)
	}
}

// drain subtracts a fractional amount from an integer vital, carrying the
// remainder so short ticks never round to a whole point. The vital stays
// in [0,100].
func drain(value *int, carry *float64, amount float64) {
	*carry += amount
	whole := int(*carry)
	if whole <= 0 {
		return
	}
	*carry -= float64(whole)
	*value = clock.Clamp100(float64(*value - whole))
}
