package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/petworks/tamacore/internal/domain"
)

// Sentinel errors for catalog loading.
var (
	ErrDuplicateID    = errors.New("duplicate item id")
	ErrAmbiguousPrice = errors.New("item priced in both currencies")
	ErrMissingDefault = errors.New("category has no free default item")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed catalog.json
var embeddedCatalog []byte

// Config represents the JSON catalog document.
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Def  `json:"items"`
}

// Def is a single item definition in the JSON.
type Def struct {
	ID         string `json:"id" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=skin hat glasses"`
	Rarity     string `json:"rarity" validate:"required,oneof=common rare epic mythic"`
	PriceCoins int    `json:"price_coins" validate:"gte=0"`
	PriceGems  int    `json:"price_gems" validate:"gte=0"`
}

// LoadEmbedded parses and validates the compiled-in catalog.
func LoadEmbedded() (*Registry, error) {
	return load(embeddedCatalog)
}

// LoadBytes parses and validates a catalog document. Exposed for tests that
// exercise validation failures.
func LoadBytes(data []byte) (*Registry, error) {
	return load(data)
}

func load(data []byte) (*Registry, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return newRegistry(&cfg), nil
}

func validate(cfg *Config) error {
	if len(cfg.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidCatalog)
	}

	v := validator.New()
	seen := make(map[string]bool, len(cfg.Items))
	freeDefaults := make(map[domain.Category]bool)

	for _, def := range cfg.Items {
		if err := v.Struct(def); err != nil {
			return fmt.Errorf("%w: item %q: %w", ErrInvalidCatalog, def.ID, err)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, def.ID)
		}
		seen[def.ID] = true

		if def.PriceCoins > 0 && def.PriceGems > 0 {
			return fmt.Errorf("%w: %s", ErrAmbiguousPrice, def.ID)
		}
		if def.PriceCoins == 0 && def.PriceGems == 0 {
			freeDefaults[domain.Category(def.Category)] = true
		}
	}

	for _, cat := range domain.Categories {
		if !freeDefaults[cat] {
			return fmt.Errorf("%w: %s", ErrMissingDefault, cat)
		}
	}
	return nil
}
