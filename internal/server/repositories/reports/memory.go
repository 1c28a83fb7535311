package reports

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

type reportLog struct {
	lastID  int64
	reports []models.Report
}

// MemoryRepository keeps reports in process memory.
type MemoryRepository struct {
	mu   sync.Mutex
	logs map[string]*reportLog
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{logs: make(map[string]*reportLog), now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[report.OwnerID]
	if !ok {
		l = &reportLog{}
		r.logs[report.OwnerID] = l
	}
	l.lastID++

	rep := *report
	rep.ID = l.lastID
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = r.now()
	}
	l.reports = append(l.reports, rep)

	return &rep, nil
}

func (r *MemoryRepository) List(ctx context.Context, ownerID string) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[ownerID]
	if !ok {
		return []models.Report{}, nil
	}

	out := make([]models.Report, len(l.reports))
	copy(out, l.reports)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, ownerID string, id int64) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, rep := range l.reports {
		if rep.ID == id {
			rep := rep
			return &rep, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[ownerID]
	if !ok {
		return common.ErrorNotFound
	}
	for i, rep := range l.reports {
		if rep.ID == id {
			l.reports = append(l.reports[:i], l.reports[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
