package session

import (
	"context"
	"sync"
	"time"

	"github.com/petworks/tamacore/internal/care"
	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/daily"
	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/economy"
	"github.com/petworks/tamacore/internal/item"
	"github.com/petworks/tamacore/internal/logger"
	"github.com/petworks/tamacore/internal/metrics"
	"github.com/petworks/tamacore/internal/shop"
	"github.com/petworks/tamacore/internal/storage"
	"github.com/petworks/tamacore/internal/vitals"
)

// Orchestration tuning.
const (
	// TickClamp bounds catch-up decay after long pauses: one tick never
	// advances the simulation by more than this.
	TickClamp = 60 * time.Second

	// AutosaveInterval is the debounce window for best-effort persistence.
	// Tracked with an elapsed accumulator, not wall-clock modulo, so
	// irregular tick intervals can neither double-fire nor skip it.
	AutosaveInterval = 10 * time.Second

	// Activity scene passive reward.
	ActivityRewardInterval = 5 * time.Second
	ActivityRewardCoins    = 15

	InventoryPageSize = 12
)

// Scene names pushed by the host navigation.
const (
	SceneHome      = "Home"
	SceneShop      = "Shop"
	SceneInventory = "Inventory"
	SceneActivity  = "Activity"
)

// Session owns the save state for the lifetime of a run and threads it
// through every engine call. There is one logical writer; the mutex
// serializes the tick goroutine against action calls from the HTTP
// layer, and persistence works on a snapshot taken under the lock.
type Session struct {
	mu sync.Mutex

	clk     clock.Clock
	store   storage.Store
	catalog *item.Registry

	vitals *vitals.Engine
	daily  *daily.Engine
	econ   *economy.Engine
	shop   *shop.Engine
	care   *care.Engine

	state    *domain.SaveState
	nav      []string
	lastTick time.Time

	saveAccum     time.Duration
	activityAccum time.Duration
}

// New restores the saved state (or constructs the default) and wires the
// engines. The load path is non-fatal by design: an unreadable or absent
// blob starts a fresh pet.
func New(ctx context.Context, clk clock.Clock, store storage.Store, catalog *item.Registry) (*Session, error) {
	log := logger.FromContext(ctx)

	state, err := store.Load(ctx)
	if err != nil {
		// Treat even transport-level load errors as "no save": the
		// simulation must come up regardless.
		log.Error("loading save failed, starting fresh", "error", err)
		state = nil
	}
	if state == nil {
		state = domain.NewSaveState(clk.Now())
		log.Info("created default save state")
	} else {
		log.Info("restored save state", "coins", state.Currency.Coins, "dead", state.Mortality.IsDead)
	}

	dailyEngine := daily.NewEngine(clk)
	s := &Session{
		clk:      clk,
		store:    store,
		catalog:  catalog,
		vitals:   vitals.NewEngine(clk),
		daily:    dailyEngine,
		econ:     economy.NewEngine(catalog, dailyEngine),
		shop:     shop.NewEngine(catalog, clk),
		care:     care.NewEngine(clk, dailyEngine),
		state:    state,
		nav:      []string{SceneHome},
		lastTick: clk.Now(),
	}
	return s, nil
}

// Tick advances the simulation by the wall-clock time since the last
// tick, clamped to TickClamp. Step order is fixed: decay, daily reset,
// mood, blink, activity accrual, autosave window. Later steps read state
// produced by earlier ones.
func (s *Session) Tick(ctx context.Context) {
	s.mu.Lock()

	now := s.clk.Now()
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > TickClamp {
		dt = TickClamp
	}

	s.vitals.ApplyDecay(s.state, dt)
	s.daily.EnsureReset(s.state)
	s.care.RecomputeMood(s.state)
	s.care.Blink(s.state)

	if s.currentScene() == SceneActivity {
		s.activityAccum += dt
		for s.activityAccum >= ActivityRewardInterval {
			s.activityAccum -= ActivityRewardInterval
			s.state.Currency.Coins += ActivityRewardCoins
		}
	}

	// The simulation always moves, so the window saves unconditionally.
	var snapshot *domain.SaveState
	s.saveAccum += dt
	if s.saveAccum >= AutosaveInterval {
		s.saveAccum = 0
		snapshot = s.state.Clone()
	}

	metrics.TicksTotal.Inc()
	s.mu.Unlock()

	if snapshot != nil {
		s.persist(ctx, snapshot)
	}
}

// persist writes a snapshot outside the state lock. Failures are logged
// only; the next window retries with fresher state.
func (s *Session) persist(ctx context.Context, snapshot *domain.SaveState) {
	if err := s.store.Save(ctx, snapshot); err != nil {
		logger.FromContext(ctx).Warn("autosave failed", "error", err)
		metrics.SavesTotal.WithLabelValues(metrics.ResultError).Inc()
		return
	}
	metrics.SavesTotal.WithLabelValues(metrics.ResultOK).Inc()
}

// Close flushes the final snapshot on session teardown.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.state.Clone()
	s.mu.Unlock()
	return s.store.Save(ctx, snapshot)
}

// EventCounts returns a copy of the telemetry counters for the metrics
// collector.
func (s *Session) EventCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.state.Events))
	for name, count := range s.state.Events {
		out[name] = count
	}
	return out
}

// PushScene enters a scene. Play quest credit is handled by the Play
// action, not by raw navigation.
func (s *Session) PushScene(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = append(s.nav, name)
	s.activityAccum = 0
}

// PopScene leaves the current scene. The base Home scene is never popped.
func (s *Session) PopScene() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.nav) > 1 {
		s.nav = s.nav[:len(s.nav)-1]
	}
	s.activityAccum = 0
}

// Scene returns the scene currently on top of the navigation stack.
func (s *Session) Scene() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentScene()
}

func (s *Session) currentScene() string {
	return s.nav[len(s.nav)-1]
}
