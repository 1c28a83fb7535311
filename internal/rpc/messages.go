package rpc

import "google.golang.org/protobuf/types/known/timestamppb"

type OpenSessionRequest struct {
	Device string `json:"device"`
}

type OpenSessionResponse struct {
	OwnerID     string                 `json:"owner_id"`
	AccessToken string                 `json:"access_token"`
	ExpiresAt   *timestamppb.Timestamp `json:"expires_at"`
}

type Contact struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Phone        string                 `json:"phone"`
	Relationship string                 `json:"relationship"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at"`
}

type ListContactsRequest struct{}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

type AddContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

type UpdateContactRequest struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

type ContactResponse struct {
	Contact *Contact `json:"contact"`
}

type RemoveContactRequest struct {
	ID int64 `json:"id"`
}

// Report carries the stored fields plus the values derived at read time.
type Report struct {
	ID          int64                  `json:"id"`
	Category    string                 `json:"category"`
	Title       string                 `json:"title"`
	Severity    string                 `json:"severity"`
	Description string                 `json:"description"`
	Location    string                 `json:"location,omitempty"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at"`
	TimeAgo     string                 `json:"time_ago"`
}

type ListReportsRequest struct{}

type ListReportsResponse struct {
	Reports []*Report `json:"reports"`
}

type SubmitReportRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

type ReportResponse struct {
	Report *Report `json:"report"`
}

type RemoveReportRequest struct {
	ID int64 `json:"id"`
}

// ReportSummaryRequest asks for counts over the last WindowSeconds; zero
// means one week.
type ReportSummaryRequest struct {
	WindowSeconds int64 `json:"window_seconds,omitempty"`
}

type ReportSummaryResponse struct {
	WindowSeconds int64          `json:"window_seconds"`
	Total         int            `json:"total"`
	BySeverity    map[string]int `json:"by_severity"`
}

type GetSettingsRequest struct{}

type SetSettingRequest struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type SettingsResponse struct {
	Flags map[string]bool `json:"flags"`
}

type TriggerAlertRequest struct {
	Location string `json:"location,omitempty"`
}

type Delivery struct {
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Delivered   bool   `json:"delivered"`
	Attempts    int    `json:"attempts"`
	Error       string `json:"error,omitempty"`
}

type Alert struct {
	ID          string                 `json:"id"`
	TriggeredAt *timestamppb.Timestamp `json:"triggered_at"`
	Location    string                 `json:"location,omitempty"`
	Delivered   int                    `json:"delivered"`
	Failed      int                    `json:"failed"`
	Complete    bool                   `json:"complete"`
	Deliveries  []*Delivery            `json:"deliveries"`
}

type TriggerAlertResponse struct {
	Alert *Alert `json:"alert"`
}

type NotifyContactRequest struct {
	ContactID int64  `json:"contact_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message,omitempty"`
	Location  string `json:"location,omitempty"`
}

type NotifyContactResponse struct {
	Delivery *Delivery `json:"delivery"`
}
