package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
)

// NotificationKind is the capability a Notifier is asked to perform.
type NotificationKind string

const (
	KindAlert    NotificationKind = "alert"
	KindCall     NotificationKind = "call"
	KindMessage  NotificationKind = "message"
	KindLocation NotificationKind = "location"
)

// ParseContactKind accepts the kinds a user may send to a single contact.
// Alerts always go to the whole book and are not accepted here.
func ParseContactKind(s string) (NotificationKind, error) {
	switch k := NotificationKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCall, KindMessage, KindLocation:
		return k, nil
	case "":
		return "", common.NewValidationError("kind", "must be set")
	default:
		return "", common.NewValidationError("kind", `unknown kind "`+s+`"`)
	}
}

// Notification is one unit of work handed to a Notifier.
type Notification struct {
	Kind     NotificationKind `json:"kind"`
	OwnerID  string           `json:"owner_id"`
	AlertID  string           `json:"alert_id,omitempty"`
	Contact  Contact          `json:"contact"`
	Location string           `json:"location,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// Delivery is the outcome of notifying one contact.
type Delivery struct {
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Delivered   bool   `json:"delivered"`
	Attempts    int    `json:"attempts"`
	Err         string `json:"error,omitempty"`
}

// AlertResult accounts for an emergency alert fanned out to every contact.
// Deliveries follow contact-book order.
type AlertResult struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	TriggeredAt time.Time  `json:"triggered_at"`
	Location    string     `json:"location,omitempty"`
	Deliveries  []Delivery `json:"deliveries"`
}

// DeliveredCount is the number of contacts that were reached.
func (r *AlertResult) DeliveredCount() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Delivered {
			n++
		}
	}
	return n
}

// FailedCount is the number of contacts that could not be reached.
func (r *AlertResult) FailedCount() int {
	return len(r.Deliveries) - r.DeliveredCount()
}

// Complete reports whether every contact was reached. An alert sent to an
// empty book is not complete: nobody was told.
func (r *AlertResult) Complete() bool {
	return len(r.Deliveries) > 0 && r.FailedCount() == 0
}

// Session identifies the owner of a set of stores.
type Session struct {
	OwnerID     string
	Device      string
	AccessToken string
	ExpiresAt   time.Time
}
