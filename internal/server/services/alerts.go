package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
)

// Notifier delivers one notification to one contact.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// AlertArchive keeps a record of every triggered alert.
type AlertArchive interface {
	Save(ctx context.Context, result *models.AlertResult) error
}

// AlertPolicy bounds the delivery of a single notification.
type AlertPolicy struct {
	ContactTimeout time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration
	Concurrency    int
}

// PolicyFromConfig extracts the alert delivery settings from cfg.
func PolicyFromConfig(cfg *config.Config) AlertPolicy {
	return AlertPolicy{
		ContactTimeout: cfg.AlertContactTimeout,
		MaxAttempts:    cfg.AlertMaxAttempts,
		RetryBackoff:   cfg.AlertRetryBackoff,
		Concurrency:    cfg.AlertConcurrency,
	}
}

// EmergencyAlerts fans notifications out to an owner's contacts.
type EmergencyAlerts struct {
	contacts *ContactBook
	settings *SettingsStore
	notifier Notifier
	archive  AlertArchive
	policy   AlertPolicy
	log      logging.Logger
	now      func() time.Time
	newID    func() string
}

func NewEmergencyAlerts(contacts *ContactBook, settings *SettingsStore, notifier Notifier, archive AlertArchive, policy AlertPolicy, log logging.Logger) *EmergencyAlerts {
	return &EmergencyAlerts{
		contacts: contacts,
		settings: settings,
		notifier: notifier,
		archive:  archive,
		policy:   policy,
		log:      log.With("module", "alerts"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Trigger notifies every contact in the owner's book. Deliveries run
// concurrently and each failure is recorded on its Delivery; the call only
// fails when the book or settings cannot be read. The location is dropped
// when location sharing is off.
func (s *EmergencyAlerts) Trigger(ctx context.Context, ownerID, location string) (*models.AlertResult, error) {
	book, err := s.contacts.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	st, err := s.settings.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	location = strings.TrimSpace(location)
	if !st.LocationSharing {
		location = ""
	}

	result := &models.AlertResult{
		ID:          s.newID(),
		OwnerID:     ownerID,
		TriggeredAt: s.now(),
		Location:    location,
		Deliveries:  make([]models.Delivery, len(book)),
	}

	var g errgroup.Group
	g.SetLimit(max(1, s.policy.Concurrency))

	for i, c := range book {
		g.Go(func() error {
			result.Deliveries[i] = s.deliver(ctx, models.Notification{
				Kind:     models.KindAlert,
				OwnerID:  ownerID,
				AlertID:  result.ID,
				Contact:  c,
				Location: location,
			})
			return nil
		})
	}
	_ = g.Wait()

	s.log.Info(ctx, "alert triggered",
		"alert_id", result.ID,
		"owner_id", ownerID,
		"contacts", len(book),
		"delivered", result.DeliveredCount(),
		"failed", result.FailedCount())

	if err := s.archive.Save(ctx, result); err != nil {
		s.log.Warn(ctx, "alert archive failed", "alert_id", result.ID, "error", err)
	}

	return result, nil
}

// NotifyContact sends a call, message or location notification to a single
// contact under the same retry policy as Trigger.
func (s *EmergencyAlerts) NotifyContact(ctx context.Context, ownerID string, contactID int64, kind, message, location string) (*models.Delivery, error) {
	k, err := models.ParseContactKind(kind)
	if err != nil {
		return nil, err
	}

	c, err := s.contacts.Get(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	location = strings.TrimSpace(location)
	if k == models.KindLocation {
		sharing, err := s.settings.Flag(ctx, ownerID, string(models.FlagLocationSharing))
		if err != nil {
			return nil, err
		}
		if !sharing {
			return nil, common.ErrLocationSharingDisabled
		}
		if location == "" {
			return nil, common.NewValidationError("location", "must not be empty")
		}
	}

	d := s.deliver(ctx, models.Notification{
		Kind:     k,
		OwnerID:  ownerID,
		Contact:  *c,
		Location: location,
		Message:  strings.TrimSpace(message),
	})

	s.log.Info(ctx, "contact notified",
		"owner_id", ownerID,
		"contact_id", contactID,
		"kind", k,
		"delivered", d.Delivered,
		"attempts", d.Attempts)

	return &d, nil
}

func (s *EmergencyAlerts) deliver(ctx context.Context, n models.Notification) models.Delivery {
	d := models.Delivery{
		ContactID:   n.Contact.ID,
		ContactName: n.Contact.Name,
		Phone:       n.Contact.Phone,
	}

	backoff := s.policy.RetryBackoff
	if backoff <= 0 {
		backoff = time.Millisecond
	}
	attempts := max(1, s.policy.MaxAttempts)
	b := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(backoff))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		d.Attempts++
		err := s.notifyOnce(ctx, n)
		if err == nil {
			return nil
		}
		s.log.Debug(ctx, "notification attempt failed",
			"contact_id", n.Contact.ID, "attempt", d.Attempts, "error", err)
		if errors.Is(err, common.ErrValidation) {
			return err
		}
		return retry.RetryableError(err)
	})

	if err != nil {
		d.Err = err.Error()
		return d
	}
	d.Delivered = true
	return d
}

// notifyOnce bounds a single attempt by the contact timeout, even when the
// notifier ignores its context. A timed-out call is left to finish on its
// own; the next attempt does not wait for it.
func (s *EmergencyAlerts) notifyOnce(ctx context.Context, n models.Notification) error {
	if s.policy.ContactTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.policy.ContactTimeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- s.notifier.Notify(ctx, n) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("notify %s: %w", n.Contact.Name, ctx.Err())
	}
}
