package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/client/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	OpenSession(ctx context.Context, device string) (models.Session, error)
	Ping(ctx context.Context) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	AddContact(ctx context.Context, name, phone, relationship string) (models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact) (models.Contact, error)
	RemoveContact(ctx context.Context, id int64) error

	ListReports(ctx context.Context) ([]models.Report, error)
	SubmitReport(ctx context.Context, category, description, location string) (models.Report, error)
	RemoveReport(ctx context.Context, id int64) error
	ReportSummary(ctx context.Context, window time.Duration) (models.Summary, error)

	GetSettings(ctx context.Context) (map[string]bool, error)
	SetSetting(ctx context.Context, name string, value bool) (map[string]bool, error)

	TriggerAlert(ctx context.Context, location string) (models.Alert, error)
	NotifyContact(ctx context.Context, contactID int64, kind, message, location string) (models.Delivery, error)
}
