// Package notify delivers alert, call, message and location notifications
// to emergency contacts.
package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/netx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// LogNotifier records each notification as a structured log line and
// always succeeds.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("module", "notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, note models.Notification) error {
	n.log.Info(ctx, "notification",
		"kind", note.Kind,
		"owner_id", note.OwnerID,
		"alert_id", note.AlertID,
		"contact_id", note.Contact.ID,
		"contact", note.Contact.Name,
		"phone", note.Contact.Phone,
		"location", note.Location,
		"message", note.Message)
	return nil
}

// WebhookNotifier POSTs each notification as JSON to a fixed URL. Any
// non-2xx response is a failed delivery.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{url: url, client: &http.Client{Timeout: 30 * time.Second}}
}

func (n *WebhookNotifier) Notify(ctx context.Context, note models.Notification) error {
	return netx.PostJSON(ctx, n.client, n.url, note)
}
