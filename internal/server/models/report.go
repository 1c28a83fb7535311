package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
)

// Category classifies a safety report.
type Category string

const (
	CategoryPoorLighting       Category = "poor-lighting"
	CategorySuspiciousActivity Category = "suspicious-activity"
	CategorySafeArea           Category = "safe-area"
	CategoryHarassment         Category = "harassment"
)

// Severity is derived from Category and never stored.
type Severity string

const (
	SeveritySafe   Severity = "safe"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type categoryInfo struct {
	title    string
	severity Severity
}

var categories = map[Category]categoryInfo{
	CategoryPoorLighting:       {title: "Poor Lighting", severity: SeverityMedium},
	CategorySuspiciousActivity: {title: "Suspicious Activity", severity: SeverityHigh},
	CategorySafeArea:           {title: "Safe Area", severity: SeveritySafe},
	CategoryHarassment:         {title: "Harassment", severity: SeverityHigh},
}

// Categories lists the report categories in form order.
var Categories = []Category{
	CategoryPoorLighting,
	CategorySuspiciousActivity,
	CategorySafeArea,
	CategoryHarassment,
}

// ParseCategory accepts exactly one of Categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", common.NewValidationError("category", "must be set")
	}
	c := Category(strings.ToLower(s))
	if _, ok := categories[c]; !ok {
		return "", common.NewValidationError("category", `unknown category "`+s+`"`)
	}
	return c, nil
}

// Title is the human-readable name of c.
func (c Category) Title() string {
	return categories[c].title
}

// Severity looks c up in the fixed category table.
func (c Category) Severity() Severity {
	return categories[c].severity
}

// Report is a community safety report. Reports are immutable once created.
type Report struct {
	ID          int64
	OwnerID     string
	Category    Category
	Description string
	Location    string
	CreatedAt   time.Time
}

// Severity is derived from the report category.
func (r Report) Severity() Severity {
	return r.Category.Severity()
}

// NewReport validates the user-supplied fields and returns an unsaved report.
func NewReport(ownerID, category, description, location string) (*Report, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, common.NewValidationError("description", "must not be empty")
	}

	return &Report{
		OwnerID:     ownerID,
		Category:    c,
		Description: description,
		Location:    strings.TrimSpace(location),
	}, nil
}

// ReportSummary counts reports created inside a window ending now.
type ReportSummary struct {
	Window     time.Duration
	Total      int
	BySeverity map[Severity]int
}
