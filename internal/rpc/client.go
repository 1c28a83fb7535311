package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// SafeWalkClient is the client API of the SafeWalk service.
type SafeWalkClient interface {
	OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*OpenSessionResponse, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error)
	AddContact(ctx context.Context, in *AddContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	UpdateContact(ctx context.Context, in *UpdateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	RemoveContact(ctx context.Context, in *RemoveContactRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error)
	SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*ReportResponse, error)
	RemoveReport(ctx context.Context, in *RemoveReportRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ReportSummary(ctx context.Context, in *ReportSummaryRequest, opts ...grpc.CallOption) (*ReportSummaryResponse, error)
	GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error)
	SetSetting(ctx context.Context, in *SetSettingRequest, opts ...grpc.CallOption) (*SettingsResponse, error)
	TriggerAlert(ctx context.Context, in *TriggerAlertRequest, opts ...grpc.CallOption) (*TriggerAlertResponse, error)
	NotifyContact(ctx context.Context, in *NotifyContactRequest, opts ...grpc.CallOption) (*NotifyContactResponse, error)
}

type safeWalkClient struct {
	cc grpc.ClientConnInterface
}

func NewSafeWalkClient(cc grpc.ClientConnInterface) SafeWalkClient {
	return &safeWalkClient{cc: cc}
}

// invoke performs a unary call with the JSON codec selected.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *safeWalkClient) OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*OpenSessionResponse, error) {
	return invoke[OpenSessionResponse](ctx, c.cc, OpenSessionFullMethod, in, opts...)
}

func (c *safeWalkClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, PingFullMethod, in, opts...)
}

func (c *safeWalkClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	return invoke[ListContactsResponse](ctx, c.cc, ListContactsFullMethod, in, opts...)
}

func (c *safeWalkClient) AddContact(ctx context.Context, in *AddContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, AddContactFullMethod, in, opts...)
}

func (c *safeWalkClient) UpdateContact(ctx context.Context, in *UpdateContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, UpdateContactFullMethod, in, opts...)
}

func (c *safeWalkClient) RemoveContact(ctx context.Context, in *RemoveContactRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoveContactFullMethod, in, opts...)
}

func (c *safeWalkClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	return invoke[ListReportsResponse](ctx, c.cc, ListReportsFullMethod, in, opts...)
}

func (c *safeWalkClient) SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*ReportResponse, error) {
	return invoke[ReportResponse](ctx, c.cc, SubmitReportFullMethod, in, opts...)
}

func (c *safeWalkClient) RemoveReport(ctx context.Context, in *RemoveReportRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoveReportFullMethod, in, opts...)
}

func (c *safeWalkClient) ReportSummary(ctx context.Context, in *ReportSummaryRequest, opts ...grpc.CallOption) (*ReportSummaryResponse, error) {
	return invoke[ReportSummaryResponse](ctx, c.cc, ReportSummaryFullMethod, in, opts...)
}

func (c *safeWalkClient) GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, GetSettingsFullMethod, in, opts...)
}

func (c *safeWalkClient) SetSetting(ctx context.Context, in *SetSettingRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, SetSettingFullMethod, in, opts...)
}

func (c *safeWalkClient) TriggerAlert(ctx context.Context, in *TriggerAlertRequest, opts ...grpc.CallOption) (*TriggerAlertResponse, error) {
	return invoke[TriggerAlertResponse](ctx, c.cc, TriggerAlertFullMethod, in, opts...)
}

func (c *safeWalkClient) NotifyContact(ctx context.Context, in *NotifyContactRequest, opts ...grpc.CallOption) (*NotifyContactResponse, error) {
	return invoke[NotifyContactResponse](ctx, c.cc, NotifyContactFullMethod, in, opts...)
}
