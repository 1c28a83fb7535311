package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}

func TestContact_String(t *testing.T) {
	c := Contact{ID: 2, Name: "Mom", Phone: "+15551234567", Relationship: "Family"}
	assert.Equal(t, "#2 Mom (Family) +15551234567", c.String())
}

func TestReport_String(t *testing.T) {
	r := Report{ID: 3, Severity: "high", Title: "Poor lighting", Description: "dark corner"}
	assert.Equal(t, "#3 [high] Poor lighting: dark corner", r.String())

	r.Location = "Main St"
	r.TimeAgo = "2 hours ago"
	assert.Equal(t, "#3 [high] Poor lighting: dark corner @ Main St (2 hours ago)", r.String())
}

func TestSummary_StringOrdersSeverities(t *testing.T) {
	s := Summary{
		Window:     24 * time.Hour,
		Total:      3,
		BySeverity: map[string]int{"safe": 1, "high": 2, "medium": 0},
	}
	assert.Equal(t, "3 reports in the last 24h0m0s (high=2, medium=0, safe=1)", s.String())
}

func TestDelivery_String(t *testing.T) {
	ok := Delivery{ContactName: "Mom", Phone: "1", Delivered: true, Attempts: 1}
	assert.Equal(t, "Mom (1): delivered after 1 attempt(s)", ok.String())

	bad := Delivery{ContactName: "Sarah", Phone: "2", Attempts: 3, Error: "timeout"}
	assert.Equal(t, "Sarah (2): failed after 3 attempt(s): timeout", bad.String())
}

func TestAlert_Headline(t *testing.T) {
	tests := []struct {
		name  string
		alert Alert
		want  string
	}{
		{"no contacts", Alert{Complete: true}, "No emergency contacts to notify"},
		{"all delivered", Alert{Delivered: 2, Complete: true}, "Emergency alert sent to all 2 contacts"},
		{"partial", Alert{Delivered: 1, Failed: 1}, "Emergency alert reached 1 of 2 contacts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.alert.Headline())
		})
	}
}
