package shop

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/item"
)

const (
	// FeaturedCount is the size of the daily featured set.
	FeaturedCount = 6

	// RerollCostGems is the gem price of a fresh draw.
	RerollCostGems = 2

	// rerollSeedStep perturbs the rotation seed on reroll, so the reroll
	// buys a new draw without touching the day index.
	rerollSeedStep = 777

	// keyStride spreads per-item sample keys across the sine curve.
	keyStride = 97.13

	rotationCacheSize = 32
)

type rotationKey struct {
	day  int64
	seed int64
}

// Engine computes the deterministic per-day featured set. The set is a
// pure function of (dayIndex, rotationSeed) over the purchasable catalog,
// memoized in a small LRU since the same-day rotation is recomputed on
// every shop visit.
type Engine struct {
	catalog *item.Registry
	clk     clock.Clock
	cache   *lru.Cache[rotationKey, []string]
}

func NewEngine(catalog *item.Registry, clk clock.Clock) *Engine {
	cache, _ := lru.New[rotationKey, []string](rotationCacheSize)
	return &Engine{catalog: catalog, clk: clk, cache: cache}
}

// Rotate recomputes the featured set when the calendar day has changed
// (or a reroll invalidated the rotation day). No-op when today's set is
// already in place.
func (e *Engine) Rotate(state *domain.SaveState) {
	di := clock.DayIndex(e.clk.Now())
	if state.Shop.RotationDay == di && len(state.Shop.FeaturedIDs) > 0 {
		return
	}

	state.Shop.RotationDay = di
	state.Shop.FeaturedIDs = e.featuredFor(di, state.Shop.RotationSeed)

	state.UI.SelectedShopItem = ""
	if len(state.Shop.FeaturedIDs) > 0 {
		state.UI.SelectedShopItem = state.Shop.FeaturedIDs[0]
	}

	state.RecordEvent(domain.EventShopRotate)
}

// Reroll pays gems for an immediate fresh draw: the seed is perturbed and
// the rotation recomputed synchronously for the same day.
func (e *Engine) Reroll(state *domain.SaveState) error {
	if state.Currency.Gems < RerollCostGems {
		return domain.ErrInsufficientGems
	}
	state.Currency.Gems -= RerollCostGems
	state.Shop.RotationSeed += rerollSeedStep
	state.Shop.RotationDay = domain.NoDay
	e.Rotate(state)
	return nil
}

// featuredFor is the pure rotation function: derive a deterministic
// pseudo-random key per purchasable item, stable-sort ascending and take
// the first FeaturedCount ids.
func (e *Engine) featuredFor(day, seed int64) []string {
	key := rotationKey{day: day, seed: seed}
	if ids, ok := e.cache.Get(key); ok {
		return append([]string(nil), ids...)
	}

	pool := e.catalog.Purchasable()
	keys := make([]float64, len(pool))
	for i := range pool {
		keys[i] = clock.Frac(float64(day) + float64(seed) + float64(i)*keyStride)
	}

	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	count := FeaturedCount
	if count > len(pool) {
		count = len(pool)
	}
	ids := make([]string, 0, count)
	for _, idx := range order[:count] {
		ids = append(ids, pool[idx].ID)
	}

	e.cache.Add(key, ids)
	return append([]string(nil), ids...)
}
