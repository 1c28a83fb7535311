package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/client/models"
	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      rpc.SafeWalkClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken replaces the token attached to subsequent calls.
func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewSafeWalkClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewSafeWalkClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// callContext bounds a single call by the configured request timeout.
func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) OpenSession(ctx context.Context, device string) (models.Session, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.OpenSession(ctx, &rpc.OpenSessionRequest{Device: device})
	if err != nil {
		return models.Session{}, s.mapError(err)
	}

	return models.Session{
		OwnerID:     resp.OwnerID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   asTime(resp.ExpiresAt),
	}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if _, err := s.client.Ping(ctx, &emptypb.Empty{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.ListContacts(ctx, &rpc.ListContactsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Contact, 0, len(resp.Contacts))
	for _, c := range resp.Contacts {
		result = append(result, contactFromRPC(c))
	}
	return result, nil
}

func (s *GRPCClient) AddContact(ctx context.Context, name, phone, relationship string) (models.Contact, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.AddContact(ctx, &rpc.AddContactRequest{Name: name, Phone: phone, Relationship: relationship})
	if err != nil {
		return models.Contact{}, s.mapError(err)
	}
	return contactFromRPC(resp.Contact), nil
}

func (s *GRPCClient) UpdateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &rpc.UpdateContactRequest{ID: c.ID, Name: c.Name, Phone: c.Phone, Relationship: c.Relationship}
	resp, err := s.client.UpdateContact(ctx, req)
	if err != nil {
		return models.Contact{}, s.mapError(err)
	}
	return contactFromRPC(resp.Contact), nil
}

func (s *GRPCClient) RemoveContact(ctx context.Context, id int64) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if _, err := s.client.RemoveContact(ctx, &rpc.RemoveContactRequest{ID: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListReports(ctx context.Context) ([]models.Report, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.ListReports(ctx, &rpc.ListReportsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Report, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		result = append(result, reportFromRPC(r))
	}
	return result, nil
}

func (s *GRPCClient) SubmitReport(ctx context.Context, category, description, location string) (models.Report, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	req := &rpc.SubmitReportRequest{Category: category, Description: description, Location: location}
	resp, err := s.client.SubmitReport(ctx, req)
	if err != nil {
		return models.Report{}, s.mapError(err)
	}
	return reportFromRPC(resp.Report), nil
}

func (s *GRPCClient) RemoveReport(ctx context.Context, id int64) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if _, err := s.client.RemoveReport(ctx, &rpc.RemoveReportRequest{ID: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

// ReportSummary asks for severity counts over window; zero selects the
// server default.
func (s *GRPCClient) ReportSummary(ctx context.Context, window time.Duration) (models.Summary, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.ReportSummary(ctx, &rpc.ReportSummaryRequest{WindowSeconds: int64(window / time.Second)})
	if err != nil {
		return models.Summary{}, s.mapError(err)
	}

	return models.Summary{
		Window:     time.Duration(resp.WindowSeconds) * time.Second,
		Total:      resp.Total,
		BySeverity: resp.BySeverity,
	}, nil
}

func (s *GRPCClient) GetSettings(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.GetSettings(ctx, &rpc.GetSettingsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Flags, nil
}

func (s *GRPCClient) SetSetting(ctx context.Context, name string, value bool) (map[string]bool, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.SetSetting(ctx, &rpc.SetSettingRequest{Name: name, Value: value})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Flags, nil
}

// TriggerAlert is not bounded by the request timeout: the server already
// bounds every contact attempt and the fan-out can outlast a single call.
func (s *GRPCClient) TriggerAlert(ctx context.Context, location string) (models.Alert, error) {
	resp, err := s.client.TriggerAlert(ctx, &rpc.TriggerAlertRequest{Location: location})
	if err != nil {
		return models.Alert{}, s.mapError(err)
	}
	return alertFromRPC(resp.Alert), nil
}

func (s *GRPCClient) NotifyContact(ctx context.Context, contactID int64, kind, message, location string) (models.Delivery, error) {
	req := &rpc.NotifyContactRequest{ContactID: contactID, Kind: kind, Message: message, Location: location}
	resp, err := s.client.NotifyContact(ctx, req)
	if err != nil {
		return models.Delivery{}, s.mapError(err)
	}
	return deliveryFromRPC(resp.Delivery), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func contactFromRPC(c *rpc.Contact) models.Contact {
	if c == nil {
		return models.Contact{}
	}
	return models.Contact{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		CreatedAt:    asTime(c.CreatedAt),
	}
}

func reportFromRPC(r *rpc.Report) models.Report {
	if r == nil {
		return models.Report{}
	}
	return models.Report{
		ID:          r.ID,
		Category:    r.Category,
		Title:       r.Title,
		Severity:    r.Severity,
		Description: r.Description,
		Location:    r.Location,
		CreatedAt:   asTime(r.CreatedAt),
		TimeAgo:     r.TimeAgo,
	}
}

func deliveryFromRPC(d *rpc.Delivery) models.Delivery {
	if d == nil {
		return models.Delivery{}
	}
	return models.Delivery{
		ContactID:   d.ContactID,
		ContactName: d.ContactName,
		Phone:       d.Phone,
		Delivered:   d.Delivered,
		Attempts:    d.Attempts,
		Error:       d.Error,
	}
}

func alertFromRPC(a *rpc.Alert) models.Alert {
	if a == nil {
		return models.Alert{}
	}
	deliveries := make([]models.Delivery, 0, len(a.Deliveries))
	for _, d := range a.Deliveries {
		deliveries = append(deliveries, deliveryFromRPC(d))
	}
	return models.Alert{
		ID:          a.ID,
		TriggeredAt: asTime(a.TriggeredAt),
		Location:    a.Location,
		Delivered:   a.Delivered,
		Failed:      a.Failed,
		Complete:    a.Complete,
		Deliveries:  deliveries,
	}
}
