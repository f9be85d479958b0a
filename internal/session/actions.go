package session

import (
	"errors"
	"fmt"

	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/metrics"
)

// Action names for metrics labels.
const (
	ActionFeed    = "feed"
	ActionSleep   = "sleep"
	ActionClean   = "clean"
	ActionPlay    = "play"
	ActionRevive  = "revive"
	ActionChest   = "chest_claim"
	ActionBuy     = "buy"
	ActionEquip   = "equip"
	ActionUnequip = "unequip"
	ActionReroll  = "reroll"
)

// Feed feeds the pet.
func (s *Session) Feed() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.care.Feed(s.state); err != nil {
		return s.fail(ActionFeed, err)
	}
	return s.ok(ActionFeed, domain.MsgFed)
}

// Sleep puts the pet to sleep.
func (s *Session) Sleep() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.care.Sleep(s.state); err != nil {
		return s.fail(ActionSleep, err)
	}
	return s.ok(ActionSleep, domain.MsgSlept)
}

// Clean cleans the pet.
func (s *Session) Clean() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.care.Clean(s.state); err != nil {
		return s.fail(ActionClean, err)
	}
	return s.ok(ActionClean, domain.MsgCleaned)
}

// Play enters the activity scene and credits the daily play quest.
func (s *Session) Play() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.care.Play(s.state)
	s.nav = append(s.nav, SceneActivity)
	s.activityAccum = 0
	return s.ok(ActionPlay, SceneActivity)
}

// Revive brings a dead pet back for a gem fee.
func (s *Session) Revive() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.care.Revive(s.state); err != nil {
		if errors.Is(err, domain.ErrInsufficientGems) {
			return s.failMsg(ActionRevive, domain.MsgNeedGems)
		}
		return s.fail(ActionRevive, err)
	}
	return s.ok(ActionRevive, domain.MsgRevived)
}

// ClaimChest claims today's daily chest.
func (s *Session) ClaimChest() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	reward, err := s.daily.ClaimChest(s.state)
	if err != nil {
		return s.fail(ActionChest, err)
	}
	msg := fmt.Sprintf(domain.MsgChestClaimedFmt, reward.Coins, reward.Gems, reward.Streak)
	return s.ok(ActionChest, msg)
}

// BuySelected purchases the currently selected shop item.
func (s *Session) BuySelected() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, err := s.econ.BuySelected(s.state)
	if err != nil {
		return s.fail(ActionBuy, err)
	}
	return s.ok(ActionBuy, fmt.Sprintf(domain.MsgBoughtFmt, it.ID))
}

// Equip equips the currently selected inventory item.
func (s *Session) Equip() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.state.UI.SelectedInventoryItem
	if id == "" {
		return s.failMsg(ActionEquip, domain.MsgSelectItem)
	}
	if err := s.econ.Equip(s.state, id); err != nil {
		return s.fail(ActionEquip, err)
	}
	return s.ok(ActionEquip, fmt.Sprintf(domain.MsgEquippedFmt, id))
}

// Unequip resets the selected item's category slot to its free default.
func (s *Session) Unequip() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.state.UI.SelectedInventoryItem
	it, ok := s.catalog.Get(id)
	if !ok {
		return s.failMsg(ActionUnequip, domain.MsgSelectUnequip)
	}
	s.econ.Unequip(s.state, it.Category)
	return s.ok(ActionUnequip, fmt.Sprintf(domain.MsgUnequippedFmt, string(it.Category)))
}

// Reroll buys a fresh shop draw.
func (s *Session) Reroll() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.shop.Reroll(s.state); err != nil {
		if errors.Is(err, domain.ErrInsufficientGems) {
			return s.failMsg(ActionReroll, domain.MsgNeedReroll)
		}
		return s.fail(ActionReroll, err)
	}
	return s.ok(ActionReroll, domain.MsgRerolled)
}

// SelectShopItem moves the shop cursor. The id must be in today's
// featured set.
func (s *Session) SelectShopItem(id string) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shop.Rotate(s.state)
	for _, featured := range s.state.Shop.FeaturedIDs {
		if featured == id {
			s.state.UI.SelectedShopItem = id
			return domain.Result{OK: true, Message: id}
		}
	}
	return domain.Result{OK: false, Message: domain.MsgUnknownItem}
}

// SelectInventoryItem moves the inventory cursor. The id must be owned.
func (s *Session) SelectInventoryItem(id string) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Owns(id) {
		return domain.Result{OK: false, Message: domain.MsgNotOwned}
	}
	s.state.UI.SelectedInventoryItem = id
	return domain.Result{OK: true, Message: id}
}

// SetInventoryPage clamps and stores the inventory page cursor.
func (s *Session) SetInventoryPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := (len(s.displayedInventory()) - 1) / InventoryPageSize
	if last < 0 {
		last = 0
	}
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	s.state.UI.InventoryPage = page
}

// displayedInventory is the owned set minus the "none" placeholders. The
// basic skin stays listed so it can be re-equipped; the empty hat and
// glasses slots have nothing to show. Caller must hold the lock.
func (s *Session) displayedInventory() []string {
	out := make([]string, 0, len(s.state.Inventory.Owned))
	for _, id := range s.state.Inventory.Owned {
		if it, ok := s.catalog.Get(id); ok && it.Free() && it.Category != domain.CategorySkin {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (s *Session) ok(action, msg string) domain.Result {
	metrics.ActionsTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return domain.Result{OK: true, Message: msg}
}

func (s *Session) fail(action string, err error) domain.Result {
	return s.failMsg(action, toastFor(err))
}

func (s *Session) failMsg(action, msg string) domain.Result {
	metrics.ActionsTotal.WithLabelValues(action, metrics.ResultError).Inc()
	return domain.Result{OK: false, Message: msg}
}

// toastFor maps domain sentinels to their user-facing toast text.
func toastFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrPetIsDead):
		return domain.MsgPetIsDead
	case errors.Is(err, domain.ErrNotDead):
		return domain.MsgNotDead
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return domain.MsgAlreadyClaimed
	case errors.Is(err, domain.ErrNoSelection):
		return domain.MsgSelectItem
	case errors.Is(err, domain.ErrAlreadyOwned):
		return domain.MsgAlreadyOwned
	case errors.Is(err, domain.ErrInsufficientFunds):
		return domain.MsgCannotAfford
	case errors.Is(err, domain.ErrUnknownItem):
		return domain.MsgUnknownItem
	case errors.Is(err, domain.ErrNotOwned):
		return domain.MsgNotOwned
	default:
		return err.Error()
	}
}
