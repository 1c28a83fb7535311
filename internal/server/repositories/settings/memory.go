package settings

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	owners map[string]models.Settings
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{owners: make(map[string]models.Settings)}
}

func (r *MemoryRepository) Get(ctx context.Context, ownerID string) (models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.owners[ownerID]
	if !ok {
		return models.DefaultSettings(), nil
	}
	return s, nil
}

func (r *MemoryRepository) Save(ctx context.Context, ownerID string, s models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.owners[ownerID] = s
	return nil
}
