package session

import "github.com/petworks/tamacore/internal/domain"

// ItemView is an item resolved for display.
type ItemView struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Rarity     string `json:"rarity"`
	RarityGlow int    `json:"rarity_glow"`
	PriceCoins int    `json:"price_coins"`
	PriceGems  int    `json:"price_gems"`
	Owned      bool   `json:"owned"`
	Equipped   bool   `json:"equipped"`
	Selected   bool   `json:"selected"`
}

// QuestView is one daily quest line on the HUD.
type QuestView struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Target int    `json:"target"`
	Done   bool   `json:"done"`
}

// View is the full read model for one render frame.
type View struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`

	Hunger int `json:"hunger"`
	Energy int `json:"energy"`
	Clean  int `json:"clean"`

	Mood     string `json:"mood"`
	Dead     bool   `json:"dead"`
	Blinking bool   `json:"blinking"`

	Scene string `json:"scene"`

	Equipped map[string]string `json:"equipped"`

	Featured      []ItemView `json:"featured"`
	Inventory     []ItemView `json:"inventory"`
	InventoryPage int        `json:"inventory_page"`

	Quests     []QuestView `json:"quests"`
	ChestReady bool        `json:"chest_ready"`
	Streak     int         `json:"streak"`
}

// View assembles the render frame. It rotates the shop first so the
// featured set is always current for the day being rendered.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shop.Rotate(s.state)
	now := s.clk.Now().UnixMilli()

	v := View{
		Coins:         s.state.Currency.Coins,
		Gems:          s.state.Currency.Gems,
		Hunger:        s.state.Vitals.Hunger,
		Energy:        s.state.Vitals.Energy,
		Clean:         s.state.Vitals.Clean,
		Mood:          string(s.state.Mood),
		Dead:          s.state.Mortality.IsDead,
		Blinking:      s.state.BlinkUntil > now,
		Scene:         s.currentScene(),
		Equipped:      make(map[string]string, len(s.state.Inventory.Equipped)),
		InventoryPage: s.state.UI.InventoryPage,
		ChestReady:    s.daily.ChestReady(s.state),
		Streak:        s.state.DailyChest.Streak,
	}

	for cat, id := range s.state.Inventory.Equipped {
		v.Equipped[string(cat)] = id
	}

	for _, id := range s.state.Shop.FeaturedIDs {
		v.Featured = append(v.Featured, s.itemView(id, s.state.UI.SelectedShopItem))
	}

	page := s.state.UI.InventoryPage
	display := s.displayedInventory()
	start := page * InventoryPageSize
	if start > len(display) {
		start = len(display)
	}
	end := start + InventoryPageSize
	if end > len(display) {
		end = len(display)
	}
	for _, id := range display[start:end] {
		v.Inventory = append(v.Inventory, s.itemView(id, s.state.UI.SelectedInventoryItem))
	}

	// Quest counters render for the day of the last reset; Tick keeps
	// them current.
	v.Quests = []QuestView{
		questView("Feed", s.state.Quests.FeedCount, domain.QuestTargetFeed),
		questView("Play", s.state.Quests.PlayCount, domain.QuestTargetPlay),
		questView("Shop", s.state.Quests.ShopCount, domain.QuestTargetShop),
	}

	return v
}

func (s *Session) itemView(id, selected string) ItemView {
	it, _ := s.catalog.Get(id)
	return ItemView{
		ID:         it.ID,
		Category:   string(it.Category),
		Rarity:     it.Rarity.Label(),
		RarityGlow: it.Rarity.Glow(),
		PriceCoins: it.PriceCoins,
		PriceGems:  it.PriceGems,
		Owned:      s.state.Owns(id),
		Equipped:   s.state.Inventory.Equipped[it.Category] == id,
		Selected:   id == selected,
	}
}

func questView(name string, count, target int) QuestView {
	return QuestView{
		Name:   name,
		Count:  count,
		Target: target,
		Done:   count >= target,
	}
}
