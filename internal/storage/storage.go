package storage

import (
	"context"

	"github.com/petworks/tamacore/internal/domain"
)

// SaveKey is the fixed identifier the versioned save blob is stored under.
const SaveKey = "tc_save_v2"

// Store is the persistence boundary for the save blob. Absence of a save
// and unreadable blobs both surface as (nil, nil): the caller falls back
// to default-state construction, never a fatal error.
type Store interface {
	Load(ctx context.Context) (*domain.SaveState, error)
	Save(ctx context.Context, state *domain.SaveState) error
	Ping(ctx context.Context) error
	Close() error
}
