package grpc

import (
	"context"
	"math"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/rpc"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type SessionService interface {
	Open(ctx context.Context, device string) (*models.Session, error)
	OwnerID(token string) (string, error)
}

type ContactService interface {
	List(ctx context.Context, ownerID string) ([]models.Contact, error)
	Add(ctx context.Context, ownerID, name, phone, relationship string) (*models.Contact, error)
	Update(ctx context.Context, ownerID string, id int64, name, phone, relationship string) (*models.Contact, error)
	Remove(ctx context.Context, ownerID string, id int64) error
}

type ReportService interface {
	List(ctx context.Context, ownerID string) ([]models.Report, error)
	Submit(ctx context.Context, ownerID, category, description, location string) (*models.Report, error)
	Remove(ctx context.Context, ownerID string, id int64) error
	Summary(ctx context.Context, ownerID string, window time.Duration) (*models.ReportSummary, error)
}

type SettingsService interface {
	Get(ctx context.Context, ownerID string) (models.Settings, error)
	Set(ctx context.Context, ownerID, name string, value bool) (models.Settings, error)
}

type AlertService interface {
	Trigger(ctx context.Context, ownerID, location string) (*models.AlertResult, error)
	NotifyContact(ctx context.Context, ownerID string, contactID int64, kind, message, location string) (*models.Delivery, error)
}

func (s *GRPCServer) OpenSession(ctx context.Context, req *rpc.OpenSessionRequest) (*rpc.OpenSessionResponse, error) {
	sess, err := s.sessions.Open(ctx, req.Device)
	if err != nil {
		return nil, s.toStatus(ctx, "OpenSession", err)
	}

	s.logger.Info(ctx, "Session opened", "owner_id", sess.OwnerID, "device", sess.Device)
	return &rpc.OpenSessionResponse{
		OwnerID:     sess.OwnerID,
		AccessToken: sess.AccessToken,
		ExpiresAt:   timestamppb.New(sess.ExpiresAt),
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListContacts(ctx context.Context, req *rpc.ListContactsRequest) (*rpc.ListContactsResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.contacts.List(ctx, ownerID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListContacts", err)
	}

	resp := &rpc.ListContactsResponse{Contacts: make([]*rpc.Contact, 0, len(list))}
	for i := range list {
		resp.Contacts = append(resp.Contacts, contactToRPC(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) AddContact(ctx context.Context, req *rpc.AddContactRequest) (*rpc.ContactResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.contacts.Add(ctx, ownerID, req.Name, req.Phone, req.Relationship)
	if err != nil {
		return nil, s.toStatus(ctx, "AddContact", err)
	}
	return &rpc.ContactResponse{Contact: contactToRPC(c)}, nil
}

func (s *GRPCServer) UpdateContact(ctx context.Context, req *rpc.UpdateContactRequest) (*rpc.ContactResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.contacts.Update(ctx, ownerID, req.ID, req.Name, req.Phone, req.Relationship)
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateContact", err)
	}
	return &rpc.ContactResponse{Contact: contactToRPC(c)}, nil
}

func (s *GRPCServer) RemoveContact(ctx context.Context, req *rpc.RemoveContactRequest) (*emptypb.Empty, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.contacts.Remove(ctx, ownerID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "RemoveContact", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListReports(ctx context.Context, req *rpc.ListReportsRequest) (*rpc.ListReportsResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.reports.List(ctx, ownerID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListReports", err)
	}

	now := s.now()
	resp := &rpc.ListReportsResponse{Reports: make([]*rpc.Report, 0, len(list))}
	for i := range list {
		resp.Reports = append(resp.Reports, reportToRPC(&list[i], now))
	}
	return resp, nil
}

func (s *GRPCServer) SubmitReport(ctx context.Context, req *rpc.SubmitReportRequest) (*rpc.ReportResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	r, err := s.reports.Submit(ctx, ownerID, req.Category, req.Description, req.Location)
	if err != nil {
		return nil, s.toStatus(ctx, "SubmitReport", err)
	}
	return &rpc.ReportResponse{Report: reportToRPC(r, s.now())}, nil
}

func (s *GRPCServer) RemoveReport(ctx context.Context, req *rpc.RemoveReportRequest) (*emptypb.Empty, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.reports.Remove(ctx, ownerID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "RemoveReport", err)
	}
	return &emptypb.Empty{}, nil
}

// maxWindowSeconds is the largest summary window that fits a time.Duration.
const maxWindowSeconds = math.MaxInt64 / int64(time.Second)

func (s *GRPCServer) ReportSummary(ctx context.Context, req *rpc.ReportSummaryRequest) (*rpc.ReportSummaryResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.WindowSeconds > maxWindowSeconds {
		return nil, status.Errorf(codes.InvalidArgument, "summary window of %d seconds is too large", req.WindowSeconds)
	}

	sum, err := s.reports.Summary(ctx, ownerID, time.Duration(req.WindowSeconds)*time.Second)
	if err != nil {
		return nil, s.toStatus(ctx, "ReportSummary", err)
	}

	resp := &rpc.ReportSummaryResponse{
		WindowSeconds: int64(sum.Window / time.Second),
		Total:         sum.Total,
		BySeverity:    make(map[string]int, len(sum.BySeverity)),
	}
	for sev, n := range sum.BySeverity {
		resp.BySeverity[string(sev)] = n
	}
	return resp, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, req *rpc.GetSettingsRequest) (*rpc.SettingsResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.settings.Get(ctx, ownerID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetSettings", err)
	}
	return &rpc.SettingsResponse{Flags: st.Map()}, nil
}

func (s *GRPCServer) SetSetting(ctx context.Context, req *rpc.SetSettingRequest) (*rpc.SettingsResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.settings.Set(ctx, ownerID, req.Name, req.Value)
	if err != nil {
		return nil, s.toStatus(ctx, "SetSetting", err)
	}
	return &rpc.SettingsResponse{Flags: st.Map()}, nil
}

func (s *GRPCServer) TriggerAlert(ctx context.Context, req *rpc.TriggerAlertRequest) (*rpc.TriggerAlertResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.alerts.Trigger(ctx, ownerID, req.Location)
	if err != nil {
		return nil, s.toStatus(ctx, "TriggerAlert", err)
	}
	return &rpc.TriggerAlertResponse{Alert: alertToRPC(res)}, nil
}

func (s *GRPCServer) NotifyContact(ctx context.Context, req *rpc.NotifyContactRequest) (*rpc.NotifyContactResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.alerts.NotifyContact(ctx, ownerID, req.ContactID, req.Kind, req.Message, req.Location)
	if err != nil {
		return nil, s.toStatus(ctx, "NotifyContact", err)
	}
	return &rpc.NotifyContactResponse{Delivery: deliveryToRPC(d)}, nil
}
