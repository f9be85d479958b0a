package vitals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
)

func newTestState(at time.Time) *domain.SaveState {
	return domain.NewSaveState(at)
}

func TestDecayRates(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	// Ten hours in one call: hunger -22, energy -16, clean -12.
	clk.Advance(10 * time.Hour)
	engine.ApplyDecay(state, 10*time.Hour)

	assert.Equal(t, 78, state.Vitals.Hunger)
	assert.Equal(t, 84, state.Vitals.Energy)
	assert.Equal(t, 88, state.Vitals.Clean)
}

func TestDecayCarryAccumulatesAcrossShortTicks(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	// 3600 one-second ticks = one hour. Each tick drains far less than a
	// point; the carry must add up to the hourly rate, not a point per tick.
	for i := 0; i < 3600; i++ {
		clk.Advance(time.Second)
		engine.ApplyDecay(state, time.Second)
	}

	assert.Equal(t, 98, state.Vitals.Hunger) // -2.2 floored via carry
	assert.Equal(t, 99, state.Vitals.Energy) // -1.6
	assert.Equal(t, 99, state.Vitals.Clean)  // -1.2
}

func TestDecayClampsAtZero(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	clk.Advance(1000 * time.Hour)
	engine.ApplyDecay(state, 1000*time.Hour)

	assert.Equal(t, 0, state.Vitals.Hunger)
	assert.Equal(t, 0, state.Vitals.Energy)
	assert.Equal(t, 0, state.Vitals.Clean)
}

func TestGoodCareRefreshesLastCareAt(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	clk.Advance(time.Hour)
	engine.ApplyDecay(state, time.Hour)

	assert.Equal(t, clk.Now().UnixMilli(), state.Mortality.LastCareAt)
	assert.False(t, state.Mortality.IsDead)
}

func TestDeathFiresAtExactlySevenDays(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	// Just under the threshold: the vitals have long reached zero but the
	// countdown has not elapsed.
	clk.Advance(DeathDelay - time.Minute)
	engine.ApplyDecay(state, DeathDelay-time.Minute)
	assert.False(t, state.Mortality.IsDead, "died before 7 days")

	// Reset to a fresh neglect scenario and cross the threshold.
	state = newTestState(start)
	clk = clock.NewFake(start)
	engine = NewEngine(clk)
	clk.Advance(DeathDelay + time.Minute)
	engine.ApplyDecay(state, DeathDelay+time.Minute)

	assert.True(t, state.Mortality.IsDead)
	assert.Equal(t, domain.MoodDead, state.Mood)
	assert.Equal(t, 1, state.Events[domain.EventPetDied])
}

func TestDeathFiresExactlyOnce(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	// Step through the neglect window in one-hour ticks and keep ticking
	// well past the threshold.
	for i := 0; i < 24*10; i++ {
		clk.Advance(time.Hour)
		engine.ApplyDecay(state, time.Hour)
	}

	require.True(t, state.Mortality.IsDead)
	assert.Equal(t, 1, state.Events[domain.EventPetDied], "pet_died recorded more than once")
}

func TestSteppedDeathWaitsForCareLapsePlusDelay(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	// With fine-grained ticks the care timestamp keeps refreshing while
	// all vitals are positive. Hunger is the fastest drain: 100 / 2.2 per
	// hour ≈ 45.5h. Death must not occur before care lapse + 7 days.
	hoursToLapse := 46
	for i := 0; i < hoursToLapse; i++ {
		clk.Advance(time.Hour)
		engine.ApplyDecay(state, time.Hour)
	}
	require.False(t, CareOK(state))
	require.False(t, state.Mortality.IsDead)

	// The care timestamp last refreshed one tick before the lapse, so the
	// countdown has one hour already on it. Stop one tick short of 7 days.
	for i := 0; i < 7*24-2; i++ {
		clk.Advance(time.Hour)
		engine.ApplyDecay(state, time.Hour)
	}
	assert.False(t, state.Mortality.IsDead)

	// Crossing the threshold kills.
	clk.Advance(time.Hour)
	engine.ApplyDecay(state, time.Hour)
	assert.True(t, state.Mortality.IsDead)
}

func TestDecayContinuesAfterDeathWithoutStateChange(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	clk.Advance(DeathDelay + time.Hour)
	engine.ApplyDecay(state, DeathDelay+time.Hour)
	require.True(t, state.Mortality.IsDead)

	// Grant some vitals back without reviving; decay keeps draining the
	// numbers but mortality is one-way.
	state.Vitals.Hunger = 50
	clk.Advance(10 * time.Hour)
	engine.ApplyDecay(state, 10*time.Hour)

	assert.Equal(t, 28, state.Vitals.Hunger)
	assert.True(t, state.Mortality.IsDead)
	assert.Equal(t, 1, state.Events[domain.EventPetDied])
}

func TestVitalsAlwaysWithinBounds(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	clk := clock.NewFake(start)
	engine := NewEngine(clk)
	state := newTestState(start)

	steps := []time.Duration{
		time.Millisecond, time.Second, time.Minute, 90 * time.Minute,
		13 * time.Hour, 72 * time.Hour, 16 * time.Millisecond,
	}
	for _, step := range steps {
		for i := 0; i < 50; i++ {
			clk.Advance(step)
			engine.ApplyDecay(state, step)

			for _, v := range []int{state.Vitals.Hunger, state.Vitals.Energy, state.Vitals.Clean} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
		}
	}
}
