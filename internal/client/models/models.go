// Package models defines the client-side view of SafeWalk state: snapshots
// read from the server and formatted for the terminal.
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Session is the locally persisted identity of this client.
type Session struct {
	OwnerID     string
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the token is past its expiry at now. A zero
// ExpiresAt never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Contact struct {
	ID           int64
	Name         string
	Phone        string
	Relationship string
	CreatedAt    time.Time
}

func (c Contact) String() string {
	return fmt.Sprintf("#%d %s (%s) %s", c.ID, c.Name, c.Relationship, c.Phone)
}

type Report struct {
	ID          int64
	Category    string
	Title       string
	Severity    string
	Description string
	Location    string
	CreatedAt   time.Time
	TimeAgo     string
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d [%s] %s: %s", r.ID, r.Severity, r.Title, r.Description)
	if r.Location != "" {
		fmt.Fprintf(&b, " @ %s", r.Location)
	}
	if r.TimeAgo != "" {
		fmt.Fprintf(&b, " (%s)", r.TimeAgo)
	}
	return b.String()
}

type Summary struct {
	Window     time.Duration
	Total      int
	BySeverity map[string]int
}

// severityOrder fixes the print order of summary buckets.
var severityOrder = map[string]int{"high": 0, "medium": 1, "safe": 2}

func (s Summary) String() string {
	keys := make([]string, 0, len(s.BySeverity))
	for k := range s.BySeverity {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := severityOrder[keys[i]]
		oj, jok := severityOrder[keys[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, s.BySeverity[k]))
	}
	return fmt.Sprintf("%d reports in the last %s (%s)", s.Total, s.Window, strings.Join(parts, ", "))
}

type Delivery struct {
	ContactID   int64
	ContactName string
	Phone       string
	Delivered   bool
	Attempts    int
	Error       string
}

func (d Delivery) String() string {
	if d.Delivered {
		return fmt.Sprintf("%s (%s): delivered after %d attempt(s)", d.ContactName, d.Phone, d.Attempts)
	}
	return fmt.Sprintf("%s (%s): failed after %d attempt(s): %s", d.ContactName, d.Phone, d.Attempts, d.Error)
}

type Alert struct {
	ID          string
	TriggeredAt time.Time
	Location    string
	Delivered   int
	Failed      int
	Complete    bool
	Deliveries  []Delivery
}

// Headline is the one-line outcome shown after an alert is sent.
func (a Alert) Headline() string {
	switch {
	case a.Delivered == 0 && a.Failed == 0:
		return "No emergency contacts to notify"
	case a.Complete:
		return fmt.Sprintf("Emergency alert sent to all %d contacts", a.Delivered)
	default:
		return fmt.Sprintf("Emergency alert reached %d of %d contacts", a.Delivered, a.Delivered+a.Failed)
	}
}
