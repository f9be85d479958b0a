package economy

import (
	"fmt"

	"github.com/petworks/tamacore/internal/daily"
	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/item"
)

// Engine implements the transactional economy operations: affordability,
// payment, ownership and cosmetic equipment. Every failing operation
// leaves state untouched.
type Engine struct {
	catalog *item.Registry
	daily   *daily.Engine
}

func NewEngine(catalog *item.Registry, dailyEngine *daily.Engine) *Engine {
	return &Engine{catalog: catalog, daily: dailyEngine}
}

// CanAfford reports whether the player holds at least the item's price in
// its single required currency. Free items are always affordable.
func (e *Engine) CanAfford(state *domain.SaveState, it domain.Item) bool {
	if it.PriceCoins > 0 {
		return state.Currency.Coins >= it.PriceCoins
	}
	if it.PriceGems > 0 {
		return state.Currency.Gems >= it.PriceGems
	}
	return true
}

// Pay deducts the item's exact price. This is the commit step of a
// validate-then-commit pair: the caller must have verified CanAfford
// first; Pay has no internal guard.
func (e *Engine) Pay(state *domain.SaveState, it domain.Item) {
	if it.PriceCoins > 0 {
		state.Currency.Coins -= it.PriceCoins
	}
	if it.PriceGems > 0 {
		state.Currency.Gems -= it.PriceGems
	}
}

// AddToInventory appends the id to the owned set. Adding an already-owned
// id is a no-op.
func (e *Engine) AddToInventory(state *domain.SaveState, id string) {
	if state.Owns(id) {
		return
	}
	state.Inventory.Owned = append(state.Inventory.Owned, id)
}

// Equip sets the item as the equipped cosmetic for its category.
func (e *Engine) Equip(state *domain.SaveState, id string) error {
	it, ok := e.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownItem, id)
	}
	if !state.Owns(id) {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, id)
	}

	state.Inventory.Equipped[it.Category] = id
	state.RecordEvent(domain.EventEquip)
	return nil
}

// Unequip resets the category slot to its free default id. Always
// succeeds regardless of the current value.
func (e *Engine) Unequip(state *domain.SaveState, cat domain.Category) {
	state.Inventory.Equipped[cat] = e.catalog.DefaultFor(cat)
	state.RecordEvent(domain.EventUnequip)
}

// BuySelected purchases the current shop selection: validate selection,
// ownership and funds, then pay, add to inventory and credit the daily
// shop quest. Returns the purchased item.
func (e *Engine) BuySelected(state *domain.SaveState) (domain.Item, error) {
	id := state.UI.SelectedShopItem
	it, ok := e.catalog.Get(id)
	if !ok {
		return domain.Item{}, domain.ErrNoSelection
	}
	if state.Owns(id) {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, id)
	}
	if !e.CanAfford(state, it) {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, id)
	}

	e.Pay(state, it)
	e.AddToInventory(state, id)

	e.daily.EnsureReset(state)
	state.Quests.ShopCount++
	state.RecordEvent(domain.EventBuy)
	return it, nil
}
