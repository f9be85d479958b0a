package domain

import "time"

// CurrentVersion is the save-blob schema version. Blobs with a different
// version are treated as "no save" and replaced by a fresh default state.
const CurrentVersion = 2

// Starting balances and vitals for a fresh install.
const (
	StartingCoins = 1000
	StartingGems  = 25
	StartingVital = 100

	DefaultRotationSeed = 12345

	// NoDay is the sentinel for "never happened" day-index fields.
	NoDay = int64(-1)
)

// Daily quest targets shown on the HUD.
const (
	QuestTargetFeed = 3
	QuestTargetPlay = 1
	QuestTargetShop = 1
)

// Currency holds the player's spendable balances. Both are non-negative.
type Currency struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`
}

// Vitals are the pet's care stats, always integers in [0,100].
type Vitals struct {
	Hunger int `json:"hunger"`
	Energy int `json:"energy"`
	Clean  int `json:"clean"`
}

// DecayCarry accumulates the fractional remainder of time-based decay per
// vital, so short ticks drain proportionally instead of a whole point per
// tick. Persisted so decay stays exact across restarts.
type DecayCarry struct {
	Hunger float64 `json:"hunger"`
	Energy float64 `json:"energy"`
	Clean  float64 `json:"clean"`
}

// Mortality tracks the delayed-death countdown. LastCareAt is refreshed
// whenever all three vitals are strictly positive.
type Mortality struct {
	LastCareAt int64 `json:"last_care_at"` // ms since epoch
	IsDead     bool  `json:"is_dead"`
}

// DailyChest tracks the claim streak. LastClaimedDay is NoDay before the
// first ever claim.
type DailyChest struct {
	LastClaimedDay int64 `json:"last_claimed_day"`
	Streak         int   `json:"streak"`
}

// Quests holds the per-day quest counters, reset at each day boundary.
type Quests struct {
	Day       int64 `json:"day"`
	FeedCount int   `json:"feed_count"`
	PlayCount int   `json:"play_count"`
	ShopCount int   `json:"shop_count"`
}

// Inventory is the cosmetic ownership set plus the equipped slot per
// category. Owned preserves insertion order for display paging.
type Inventory struct {
	Owned    []string            `json:"owned"`
	Equipped map[Category]string `json:"equipped"`
}

// ShopState holds the deterministic rotation inputs and the current
// featured set. The featured set is a pure function of (RotationDay,
// RotationSeed) over the catalog.
type ShopState struct {
	RotationSeed int64    `json:"rotation_seed"`
	RotationDay  int64    `json:"rotation_day"`
	FeaturedIDs  []string `json:"featured_ids"`
}

// UISelection is session/display continuity state. It has no economic
// meaning but is persisted so the player returns to where they left off.
type UISelection struct {
	SelectedShopItem      string `json:"selected_shop_item"`
	SelectedInventoryItem string `json:"selected_inventory_item"`
	InventoryPage         int    `json:"inventory_page"`
}

// Mood is the pet's derived display state.
type Mood string

const (
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodTired   Mood = "tired"
	MoodDirty   Mood = "dirty"
	MoodHungry  Mood = "hungry"
	MoodDead    Mood = "dead"
)

// SaveState is the single aggregate root of the simulation. It is owned
// exclusively by the running session and serialized wholesale.
type SaveState struct {
	Version    int            `json:"version"`
	Currency   Currency       `json:"currency"`
	Vitals     Vitals         `json:"vitals"`
	DecayCarry DecayCarry     `json:"decay_carry"`
	Mortality  Mortality      `json:"mortality"`
	DailyChest DailyChest     `json:"daily_chest"`
	Quests     Quests         `json:"quests"`
	Inventory  Inventory      `json:"inventory"`
	Shop       ShopState      `json:"shop"`
	UI         UISelection    `json:"ui"`
	Mood       Mood           `json:"mood"`
	EmoteUntil int64          `json:"emote_until"` // ms since epoch
	BlinkUntil int64          `json:"blink_until"` // ms since epoch
	Events     map[string]int `json:"events"`
}

// NewSaveState builds the default state for a fresh install.
func NewSaveState(now time.Time) *SaveState {
	return &SaveState{
		Version: CurrentVersion,
		Currency: Currency{
			Coins: StartingCoins,
			Gems:  StartingGems,
		},
		Vitals: Vitals{
			Hunger: StartingVital,
			Energy: StartingVital,
			Clean:  StartingVital,
		},
		Mortality: Mortality{
			LastCareAt: now.UnixMilli(),
		},
		DailyChest: DailyChest{
			LastClaimedDay: NoDay,
		},
		Quests: Quests{
			Day: NoDay,
		},
		Inventory: Inventory{
			Owned: []string{ItemIDSkinBasic, ItemIDHatNone, ItemIDGlassesNone},
			Equipped: map[Category]string{
				CategorySkin:    ItemIDSkinBasic,
				CategoryHat:     ItemIDHatNone,
				CategoryGlasses: ItemIDGlassesNone,
			},
		},
		Shop: ShopState{
			RotationSeed: DefaultRotationSeed,
			RotationDay:  NoDay,
		},
		Mood:   MoodNeutral,
		Events: make(map[string]int),
	}
}

// RecordEvent bumps a telemetry counter. Counters are monotonically
// increasing and never reset.
func (s *SaveState) RecordEvent(name string) {
	if s.Events == nil {
		s.Events = make(map[string]int)
	}
	s.Events[name]++
}

// Owns reports whether the item id is in the owned set.
func (s *SaveState) Owns(id string) bool {
	for _, owned := range s.Inventory.Owned {
		if owned == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy suitable for snapshot-then-write persistence.
func (s *SaveState) Clone() *SaveState {
	cp := *s
	cp.Inventory.Owned = append([]string(nil), s.Inventory.Owned...)
	cp.Inventory.Equipped = make(map[Category]string, len(s.Inventory.Equipped))
	for cat, id := range s.Inventory.Equipped {
		cp.Inventory.Equipped[cat] = id
	}
	cp.Shop.FeaturedIDs = append([]string(nil), s.Shop.FeaturedIDs...)
	cp.Events = make(map[string]int, len(s.Events))
	for name, count := range s.Events {
		cp.Events[name] = count
	}
	return &cp
}
