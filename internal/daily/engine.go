package daily

import (
	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
)

// Chest reward tuning.
const (
	ChestBaseCoins      = 250
	ChestCoinsPerStreak = 40
	ChestStreakCap      = 10
	ChestGemBonusEvery  = 3
)

// Engine owns the day-boundary bookkeeping: quest counter resets and the
// daily chest with its claim streak.
type Engine struct {
	clk clock.Clock
}

func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clk: clk}
}

// EnsureReset zeroes the quest counters when the calendar day has changed.
// Idempotent within the same day index. Returns true when a reset fired.
func (e *Engine) EnsureReset(state *domain.SaveState) bool {
	di := clock.DayIndex(e.clk.Now())
	if state.Quests.Day == di {
		return false
	}
	state.Quests = domain.Quests{Day: di}
	state.RecordEvent(domain.EventDailyReset)
	return true
}

// ChestReady reports whether today's chest is still unclaimed.
func (e *Engine) ChestReady(state *domain.SaveState) bool {
	return state.DailyChest.LastClaimedDay != clock.DayIndex(e.clk.Now())
}

// ChestReward is the computed payout of a successful claim.
type ChestReward struct {
	Coins  int
	Gems   int
	Streak int
}

// ClaimChest credits today's chest. The streak continues only when the
// claim lands exactly one day after the previous one; any gap resets it
// to 1. Coin reward scales with the streak up to the cap; every third
// streak day pays a bonus gem.
func (e *Engine) ClaimChest(state *domain.SaveState) (ChestReward, error) {
	di := clock.DayIndex(e.clk.Now())
	if state.DailyChest.LastClaimedDay == di {
		return ChestReward{}, domain.ErrAlreadyClaimed
	}

	streak := 1
	if state.DailyChest.LastClaimedDay == di-1 {
		streak = state.DailyChest.Streak + 1
	}
	state.DailyChest.Streak = streak
	state.DailyChest.LastClaimedDay = di

	capped := streak
	if capped > ChestStreakCap {
		capped = ChestStreakCap
	}
	reward := ChestReward{
		Coins:  ChestBaseCoins + capped*ChestCoinsPerStreak,
		Gems:   1,
		Streak: streak,
	}
	if streak%ChestGemBonusEvery == 0 {
		reward.Gems = 2
	}

	state.Currency.Coins += reward.Coins
	state.Currency.Gems += reward.Gems
	state.RecordEvent(domain.EventDailyChest)
	return reward, nil
}
