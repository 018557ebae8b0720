package domain

import (
	"errors"
	"strings"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "قيد المراجعة"
	RequestStatusApproved RequestStatus = "موافق عليه"
	RequestStatusRejected RequestStatus = "مرفوض"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

const (
	RequestTypeShortAbsence = "استئذان"
	RequestTypeLeavePrefix  = "إجازة"

	RequestActionNameApprove = "approve"
	RequestActionNameReject  = "reject"
)

type RequestKind int

const (
	KindUnknown RequestKind = iota
	KindShortAbsence
	KindLeave
)

func (k RequestKind) String() string {
	switch k {
	case KindShortAbsence:
		return "short_absence"
	case KindLeave:
		return "leave"
	}
	return "unknown"
}

type LeaveSubtype string

const (
	LeaveSubtypeAnnual      LeaveSubtype = "سنوية"
	LeaveSubtypeSick        LeaveSubtype = "مرضية"
	LeaveSubtypeExceptional LeaveSubtype = "استثنائية"
)

// LeaveSubtypes lists the subtypes offered by the leave form, in display order.
var LeaveSubtypes = []LeaveSubtype{LeaveSubtypeAnnual, LeaveSubtypeSick, LeaveSubtypeExceptional}

func (t LeaveSubtype) IsValid() bool {
	for _, v := range LeaveSubtypes {
		if v == t {
			return true
		}
	}
	return false
}

// Label returns the wire type tag, e.g. "إجازة سنوية".
func (t LeaveSubtype) Label() string {
	return RequestTypeLeavePrefix + " " + string(t)
}

var (
	ErrRequestNotPending = errors.New("request is no longer pending")
	ErrRequestNotFound   = errors.New("request not found")
)

type Employee struct {
	Name       string `json:"employee_name" yaml:"employee_name" mapstructure:"name"`
	Role       string `json:"role" yaml:"role" mapstructure:"role"`
	Department string `json:"department" yaml:"department" mapstructure:"department"`
}

// ShortAbsence is an intra-day absence bounded by a start and end time.
type ShortAbsence struct {
	// Date is the calendar day, either "YYYY-MM-DD" or "YYYY-MM-DD - <weekday label>".
	Date            string `json:"date" yaml:"date"`
	FromTime        string `json:"from_time" yaml:"from_time"`
	ToTime          string `json:"to_time" yaml:"to_time"`
	FromTimeMinutes int    `json:"from_time_minutes" yaml:"from_time_minutes"`
	ToTimeMinutes   int    `json:"to_time_minutes" yaml:"to_time_minutes"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	Notes           string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Leave is a multi-day leave spanning StartDate to EndDate.
type Leave struct {
	Subtype     LeaveSubtype `json:"subtype" yaml:"subtype"`
	StartDate   string       `json:"start_date" yaml:"start_date"`
	EndDate     string       `json:"end_date" yaml:"end_date"`
	CreatedDate string       `json:"created_date" yaml:"created_date"`
	Reason      string       `json:"reason" yaml:"reason"`
}

type Request struct {
	ID              int64         `json:"id" yaml:"id"`
	Kind            RequestKind   `json:"-" yaml:"-"`
	Type            string        `json:"type" yaml:"type"`
	Status          RequestStatus `json:"status" yaml:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty" yaml:"rejection_reason,omitempty"`
	Employee        Employee      `json:"employee" yaml:"employee"`
	Signed          bool          `json:"signed" yaml:"signed"`

	ShortAbsence *ShortAbsence `json:"short_absence,omitempty" yaml:"short_absence,omitempty"`
	Leave        *Leave        `json:"leave,omitempty" yaml:"leave,omitempty"`
}

func NewShortAbsenceRequest(id int64, sa ShortAbsence) *Request {
	return &Request{
		ID:           id,
		Kind:         KindShortAbsence,
		Type:         RequestTypeShortAbsence,
		Status:       RequestStatusPending,
		ShortAbsence: &sa,
	}
}

func NewLeaveRequest(id int64, l Leave) *Request {
	return &Request{
		ID:     id,
		Kind:   KindLeave,
		Type:   l.Subtype.Label(),
		Status: RequestStatusPending,
		Leave:  &l,
	}
}

// KindOf classifies a wire type tag. Tags written by the monthly form
// ("استئذان - <month>") are short absences too.
func KindOf(typeTag string) RequestKind {
	tag := strings.TrimSpace(typeTag)
	switch {
	case tag == RequestTypeShortAbsence, strings.HasPrefix(tag, RequestTypeShortAbsence+" "):
		return KindShortAbsence
	case strings.HasPrefix(tag, RequestTypeLeavePrefix):
		return KindLeave
	}
	return KindUnknown
}

func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}

func (r *Request) Approve() error {
	if !r.IsPending() {
		return ErrRequestNotPending
	}
	r.Status = RequestStatusApproved
	return nil
}

func (r *Request) Reject(reason string) error {
	if !r.IsPending() {
		return ErrRequestNotPending
	}
	r.Status = RequestStatusRejected
	r.RejectionReason = reason
	return nil
}

// DisplayDate returns the date shown on request cards: the single day for
// short absences, "start الى end" for leave.
func (r *Request) DisplayDate() string {
	switch {
	case r.Leave != nil:
		if r.Leave.StartDate != "" && r.Leave.EndDate != "" {
			return r.Leave.StartDate + " الى " + r.Leave.EndDate
		}
		return r.Leave.StartDate
	case r.ShortAbsence != nil:
		return strings.Split(r.ShortAbsence.Date, " - ")[0]
	}
	return ""
}

// Clone returns a deep copy.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	if r.ShortAbsence != nil {
		sa := *r.ShortAbsence
		c.ShortAbsence = &sa
	}
	if r.Leave != nil {
		l := *r.Leave
		c.Leave = &l
	}
	return &c
}

type ListRequestsFilter struct {
	Statuses []RequestStatus `mapstructure:"statuses" validate:"omitempty,min=1"`
	Q        string          `mapstructure:"q" validate:"omitempty"`
	Size     int             `mapstructure:"size" validate:"omitempty,min=0"`
	Offset   int             `mapstructure:"offset" validate:"omitempty,min=0"`
}
