package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "safewalk.v1.SafeWalk"

const (
	OpenSessionFullMethod   = "/" + ServiceName + "/OpenSession"
	PingFullMethod          = "/" + ServiceName + "/Ping"
	ListContactsFullMethod  = "/" + ServiceName + "/ListContacts"
	AddContactFullMethod    = "/" + ServiceName + "/AddContact"
	UpdateContactFullMethod = "/" + ServiceName + "/UpdateContact"
	RemoveContactFullMethod = "/" + ServiceName + "/RemoveContact"
	ListReportsFullMethod   = "/" + ServiceName + "/ListReports"
	SubmitReportFullMethod  = "/" + ServiceName + "/SubmitReport"
	RemoveReportFullMethod  = "/" + ServiceName + "/RemoveReport"
	ReportSummaryFullMethod = "/" + ServiceName + "/ReportSummary"
	GetSettingsFullMethod   = "/" + ServiceName + "/GetSettings"
	SetSettingFullMethod    = "/" + ServiceName + "/SetSetting"
	TriggerAlertFullMethod  = "/" + ServiceName + "/TriggerAlert"
	NotifyContactFullMethod = "/" + ServiceName + "/NotifyContact"
)

// SafeWalkServer is the server API of the SafeWalk service.
type SafeWalkServer interface {
	OpenSession(context.Context, *OpenSessionRequest) (*OpenSessionResponse, error)
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	AddContact(context.Context, *AddContactRequest) (*ContactResponse, error)
	UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error)
	RemoveContact(context.Context, *RemoveContactRequest) (*emptypb.Empty, error)
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	SubmitReport(context.Context, *SubmitReportRequest) (*ReportResponse, error)
	RemoveReport(context.Context, *RemoveReportRequest) (*emptypb.Empty, error)
	ReportSummary(context.Context, *ReportSummaryRequest) (*ReportSummaryResponse, error)
	GetSettings(context.Context, *GetSettingsRequest) (*SettingsResponse, error)
	SetSetting(context.Context, *SetSettingRequest) (*SettingsResponse, error)
	TriggerAlert(context.Context, *TriggerAlertRequest) (*TriggerAlertResponse, error)
	NotifyContact(context.Context, *NotifyContactRequest) (*NotifyContactResponse, error)
}

// unaryHandler adapts a typed SafeWalkServer method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(SafeWalkServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SafeWalkServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SafeWalkServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes SafeWalk for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SafeWalkServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenSession", Handler: unaryHandler(OpenSessionFullMethod, SafeWalkServer.OpenSession)},
		{MethodName: "Ping", Handler: unaryHandler(PingFullMethod, SafeWalkServer.Ping)},
		{MethodName: "ListContacts", Handler: unaryHandler(ListContactsFullMethod, SafeWalkServer.ListContacts)},
		{MethodName: "AddContact", Handler: unaryHandler(AddContactFullMethod, SafeWalkServer.AddContact)},
		{MethodName: "UpdateContact", Handler: unaryHandler(UpdateContactFullMethod, SafeWalkServer.UpdateContact)},
		{MethodName: "RemoveContact", Handler: unaryHandler(RemoveContactFullMethod, SafeWalkServer.RemoveContact)},
		{MethodName: "ListReports", Handler: unaryHandler(ListReportsFullMethod, SafeWalkServer.ListReports)},
		{MethodName: "SubmitReport", Handler: unaryHandler(SubmitReportFullMethod, SafeWalkServer.SubmitReport)},
		{MethodName: "RemoveReport", Handler: unaryHandler(RemoveReportFullMethod, SafeWalkServer.RemoveReport)},
		{MethodName: "ReportSummary", Handler: unaryHandler(ReportSummaryFullMethod, SafeWalkServer.ReportSummary)},
		{MethodName: "GetSettings", Handler: unaryHandler(GetSettingsFullMethod, SafeWalkServer.GetSettings)},
		{MethodName: "SetSetting", Handler: unaryHandler(SetSettingFullMethod, SafeWalkServer.SetSetting)},
		{MethodName: "TriggerAlert", Handler: unaryHandler(TriggerAlertFullMethod, SafeWalkServer.TriggerAlert)},
		{MethodName: "NotifyContact", Handler: unaryHandler(NotifyContactFullMethod, SafeWalkServer.NotifyContact)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterSafeWalkServer(s grpc.ServiceRegistrar, srv SafeWalkServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// UnimplementedSafeWalkServer answers every method with codes.Unimplemented.
// Embed it to satisfy SafeWalkServer partially.
type UnimplementedSafeWalkServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedSafeWalkServer) OpenSession(context.Context, *OpenSessionRequest) (*OpenSessionResponse, error) {
	return nil, unimplemented("OpenSession")
}
func (UnimplementedSafeWalkServer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedSafeWalkServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, unimplemented("ListContacts")
}
func (UnimplementedSafeWalkServer) AddContact(context.Context, *AddContactRequest) (*ContactResponse, error) {
	return nil, unimplemented("AddContact")
}
func (UnimplementedSafeWalkServer) UpdateContact(context.Context, *UpdateContactRequest) (*ContactResponse, error) {
	return nil, unimplemented("UpdateContact")
}
func (UnimplementedSafeWalkServer) RemoveContact(context.Context, *RemoveContactRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("RemoveContact")
}
func (UnimplementedSafeWalkServer) ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error) {
	return nil, unimplemented("ListReports")
}
func (UnimplementedSafeWalkServer) SubmitReport(context.Context, *SubmitReportRequest) (*ReportResponse, error) {
	return nil, unimplemented("SubmitReport")
}
func (UnimplementedSafeWalkServer) RemoveReport(context.Context, *RemoveReportRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("RemoveReport")
}
func (UnimplementedSafeWalkServer) ReportSummary(context.Context, *ReportSummaryRequest) (*ReportSummaryResponse, error) {
	return nil, unimplemented("ReportSummary")
}
func (UnimplementedSafeWalkServer) GetSettings(context.Context, *GetSettingsRequest) (*SettingsResponse, error) {
	return nil, unimplemented("GetSettings")
}
func (UnimplementedSafeWalkServer) SetSetting(context.Context, *SetSettingRequest) (*SettingsResponse, error) {
	return nil, unimplemented("SetSetting")
}
func (UnimplementedSafeWalkServer) TriggerAlert(context.Context, *TriggerAlertRequest) (*TriggerAlertResponse, error) {
	return nil, unimplemented("TriggerAlert")
}
func (UnimplementedSafeWalkServer) NotifyContact(context.Context, *NotifyContactRequest) (*NotifyContactResponse, error) {
	return nil, unimplemented("NotifyContact")
}
