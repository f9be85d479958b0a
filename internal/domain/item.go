package domain

// Category is the cosmetic slot an item occupies.
type Category string

const (
	CategorySkin    Category = "skin"
	CategoryHat     Category = "hat"
	CategoryGlasses Category = "glasses"
)

// Categories lists all cosmetic slots.
var Categories = []Category{CategorySkin, CategoryHat, CategoryGlasses}

// Valid reports whether the category is one of the known slots.
func (c Category) Valid() bool {
	switch c {
	case CategorySkin, CategoryHat, CategoryGlasses:
		return true
	}
	return false
}

// Rarity is the item's display rarity tier.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
	RarityMythic Rarity = "mythic"
)

// Label returns the uppercase badge text for the rarity tier.
func (r Rarity) Label() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityRare:
		return "RARE"
	case RarityEpic:
		return "EPIC"
	case RarityMythic:
		return "MYTHIC"
	}
	return "UNKNOWN"
}

// Glow returns the glow intensity rank for the rarity badge.
func (r Rarity) Glow() int {
	switch r {
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityMythic:
		return 3
	}
	return 0
}

// Free default item ids, one per category. These are always owned and are
// the targets of unequip.
const (
	ItemIDSkinBasic   = "skin_basic"
	ItemIDHatNone     = "hat_none"
	ItemIDGlassesNone = "glasses_none"
)

// Item is an immutable catalog entry. Price is in exactly one currency:
// coins xor gems, or free when both are zero.
type Item struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Rarity     Rarity   `json:"rarity"`
	PriceCoins int      `json:"price_coins"`
	PriceGems  int      `json:"price_gems"`
}

// Free reports whether the item has no price in either currency.
func (i Item) Free() bool {
	return i.PriceCoins == 0 && i.PriceGems == 0
}
