package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
)

// DefaultSummaryWindow is used by Summary when no window is given.
const DefaultSummaryWindow = 7 * 24 * time.Hour

// ReportLog manages community safety reports.
type ReportLog struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewReportLog(db *sql.DB, m repomanager.RepositoryManager) *ReportLog {
	return &ReportLog{db: db, repomanager: m, now: time.Now}
}

// List returns the owner's reports, newest first.
func (s *ReportLog) List(ctx context.Context, ownerID string) ([]models.Report, error) {
	list, err := s.repomanager.Reports(s.db).List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	return list, nil
}

// Submit validates and stores a new report stamped with the current time.
func (s *ReportLog) Submit(ctx context.Context, ownerID, category, description, location string) (*models.Report, error) {
	r, err := models.NewReport(ownerID, category, description, location)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = s.now()

	created, err := s.repomanager.Reports(s.db).Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("error submitting report: %w", err)
	}
	return created, nil
}

func (s *ReportLog) Remove(ctx context.Context, ownerID string, id int64) error {
	if err := s.repomanager.Reports(s.db).Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("error removing report %d: %w", id, err)
	}
	return nil
}

// Summary counts the owner's reports created within window of now, grouped
// by severity. Every severity is present in the result, possibly as zero.
func (s *ReportLog) Summary(ctx context.Context, ownerID string, window time.Duration) (*models.ReportSummary, error) {
	if window <= 0 {
		window = DefaultSummaryWindow
	}

	list, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sum := &models.ReportSummary{
		Window: window,
		BySeverity: map[models.Severity]int{
			models.SeveritySafe:   0,
			models.SeverityMedium: 0,
			models.SeverityHigh:   0,
		},
	}

	since := s.now().Add(-window)
	for _, r := range list {
		if r.CreatedAt.Before(since) {
			continue
		}
		sum.Total++
		sum.BySeverity[r.Severity()]++
	}
	return sum, nil
}
