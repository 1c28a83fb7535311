package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
)

// --- fakes ---

type fakeNotifier struct {
	mu    sync.Mutex
	calls map[int64]int
	sent  []models.Notification
	fn    func(ctx context.Context, n models.Notification, attempt int) error
}

func (f *fakeNotifier) Notify(ctx context.Context, n models.Notification) error {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[int64]int)
	}
	f.calls[n.Contact.ID]++
	attempt := f.calls[n.Contact.ID]
	f.sent = append(f.sent, n)
	fn := f.fn
	f.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(ctx, n, attempt)
}

func (f *fakeNotifier) attempts(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

type fakeArchive struct {
	mu    sync.Mutex
	saved []*models.AlertResult
	err   error
}

func (f *fakeArchive) Save(ctx context.Context, r *models.AlertResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, r)
	return f.err
}

var errUnreachable = errors.New("unreachable")

// --- helpers ---

type fixture struct {
	rm       *repomanager.MemoryRepositoryManager
	contacts *ContactBook
	reports  *ReportLog
	settings *SettingsStore
	alerts   *EmergencyAlerts
	notifier *fakeNotifier
	archive  *fakeArchive
}

func newFixture(t *testing.T, policy AlertPolicy) *fixture {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager()
	f := &fixture{
		rm:       rm,
		contacts: NewContactBook(nil, rm),
		reports:  NewReportLog(nil, rm),
		settings: NewSettingsStore(nil, rm),
		notifier: &fakeNotifier{},
		archive:  &fakeArchive{},
	}
	f.alerts = NewEmergencyAlerts(f.contacts, f.settings, f.notifier, f.archive, policy, logging.Nop{})
	return f
}

func fastPolicy() AlertPolicy {
	return AlertPolicy{
		ContactTimeout: time.Second,
		MaxAttempts:    3,
		RetryBackoff:   time.Millisecond,
		Concurrency:    4,
	}
}
