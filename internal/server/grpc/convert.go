package grpc

import (
	"time"

	"github.com/dmitrijs2005/safewalk/internal/rpc"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/timex"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func contactToRPC(c *models.Contact) *rpc.Contact {
	return &rpc.Contact{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Relationship: string(c.Relationship),
		CreatedAt:    timestamppb.New(c.CreatedAt),
	}
}

// reportToRPC fills in the derived title, severity and relative age as of now.
func reportToRPC(r *models.Report, now time.Time) *rpc.Report {
	return &rpc.Report{
		ID:          r.ID,
		Category:    string(r.Category),
		Title:       r.Category.Title(),
		Severity:    string(r.Severity()),
		Description: r.Description,
		Location:    r.Location,
		CreatedAt:   timestamppb.New(r.CreatedAt),
		TimeAgo:     timex.Ago(now, r.CreatedAt),
	}
}

func deliveryToRPC(d *models.Delivery) *rpc.Delivery {
	return &rpc.Delivery{
		ContactID:   d.ContactID,
		ContactName: d.ContactName,
		Phone:       d.Phone,
		Delivered:   d.Delivered,
		Attempts:    d.Attempts,
		Error:       d.Err,
	}
}

func alertToRPC(r *models.AlertResult) *rpc.Alert {
	a := &rpc.Alert{
		ID:          r.ID,
		TriggeredAt: timestamppb.New(r.TriggeredAt),
		Location:    r.Location,
		Delivered:   r.DeliveredCount(),
		Failed:      r.FailedCount(),
		Complete:    r.Complete(),
		Deliveries:  make([]*rpc.Delivery, 0, len(r.Deliveries)),
	}
	for i := range r.Deliveries {
		a.Deliveries = append(a.Deliveries, deliveryToRPC(&r.Deliveries[i]))
	}
	return a
}
