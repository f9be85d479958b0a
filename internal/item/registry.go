package item

import "github.com/petworks/tamacore/internal/domain"

// Registry is the immutable, id-indexed item catalog. Lookup is O(1);
// All and Purchasable preserve catalog order so the shop rotation is
// stable with respect to the catalog document.
type Registry struct {
	byID     map[string]domain.Item
	ordered  []domain.Item
	defaults map[domain.Category]string
}

func newRegistry(cfg *Config) *Registry {
	r := &Registry{
		byID:     make(map[string]domain.Item, len(cfg.Items)),
		ordered:  make([]domain.Item, 0, len(cfg.Items)),
		defaults: make(map[domain.Category]string),
	}
	for _, def := range cfg.Items {
		it := domain.Item{
			ID:         def.ID,
			Category:   domain.Category(def.Category),
			Rarity:     domain.Rarity(def.Rarity),
			PriceCoins: def.PriceCoins,
			PriceGems:  def.PriceGems,
		}
		r.byID[it.ID] = it
		r.ordered = append(r.ordered, it)
		// First free item per category becomes that category's default.
		if it.Free() {
			if _, ok := r.defaults[it.Category]; !ok {
				r.defaults[it.Category] = it.ID
			}
		}
	}
	return r
}

// Get returns the catalog item for id.
func (r *Registry) Get(id string) (domain.Item, bool) {
	it, ok := r.byID[id]
	return it, ok
}

// All returns every catalog item in catalog order.
func (r *Registry) All() []domain.Item {
	return r.ordered
}

// Purchasable returns the non-free items in catalog order. These form the
// pool the shop rotation samples from.
func (r *Registry) Purchasable() []domain.Item {
	out := make([]domain.Item, 0, len(r.ordered))
	for _, it := range r.ordered {
		if !it.Free() {
			out = append(out, it)
		}
	}
	return out
}

// DefaultFor returns the free default item id for a category.
func (r *Registry) DefaultFor(cat domain.Category) string {
	return r.defaults[cat]
}

// Len returns the catalog size.
func (r *Registry) Len() int {
	return len(r.ordered)
}
