package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var ErrMalformedSnapshot = errors.New("persisted requests are not a JSON array")

// RecordError describes a persisted record that could not be decoded.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// PartialDecodeError is returned alongside the records that did decode.
type PartialDecodeError struct {
	Skipped []RecordError
}

func (e *PartialDecodeError) Error() string {
	msgs := make([]string, 0, len(e.Skipped))
	for _, s := range e.Skipped {
		msgs = append(msgs, s.Error())
	}
	return fmt.Sprintf("skipped %d undecodable record(s): %s", len(e.Skipped), strings.Join(msgs, "; "))
}

// requestRecord is the flat record layout stored under the "requests" key.
type requestRecord struct {
	ID              int64  `json:"id" mapstructure:"id"`
	Type            string `json:"type" mapstructure:"type"`
	Date            string `json:"date,omitempty" mapstructure:"date"`
	FromTime        string `json:"fromTime,omitempty" mapstructure:"fromTime"`
	ToTime          string `json:"toTime,omitempty" mapstructure:"toTime"`
	FromTimeMinutes *int   `json:"fromTimeMinutes,omitempty" mapstructure:"fromTimeMinutes"`
	ToTimeMinutes   *int   `json:"toTimeMinutes,omitempty" mapstructure:"toTimeMinutes"`
	DurationMinutes *int   `json:"durationMinutes,omitempty" mapstructure:"durationMinutes"`
	StartDate       string `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate         string `json:"endDate,omitempty" mapstructure:"endDate"`
	CreatedDate     string `json:"createdDate,omitempty" mapstructure:"createdDate"`
	Reason          string `json:"reason,omitempty" mapstructure:"reason"`
	Notes           string `json:"notes,omitempty" mapstructure:"notes"`
	EmployeeName    string `json:"employeeName,omitempty" mapstructure:"employeeName"`
	Role            string `json:"role,omitempty" mapstructure:"role"`
	Department      string `json:"department,omitempty" mapstructure:"department"`
	SignatureExists bool   `json:"signatureExists,omitempty" mapstructure:"signatureExists"`
	Status          string `json:"status" mapstructure:"status"`
	RejectionReason string `json:"rejectionReason,omitempty" mapstructure:"rejectionReason"`
}

func (rec *requestRecord) fromDomain(r *Request) {
	*rec = requestRecord{
		ID:              r.ID,
		Type:            r.Type,
		EmployeeName:    r.Employee.Name,
		Role:            r.Employee.Role,
		Department:      r.Employee.Department,
		SignatureExists: r.Signed,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
	}

	switch {
	case r.ShortAbsence != nil:
		sa := r.ShortAbsence
		from, to, duration := sa.FromTimeMinutes, sa.ToTimeMinutes, sa.DurationMinutes
		rec.Date = sa.Date
		rec.FromTime = sa.FromTime
		rec.ToTime = sa.ToTime
		rec.FromTimeMinutes = &from
		rec.ToTimeMinutes = &to
		rec.DurationMinutes = &duration
		rec.Notes = sa.Notes
	case r.Leave != nil:
		rec.StartDate = r.Leave.StartDate
		rec.EndDate = r.Leave.EndDate
		rec.CreatedDate = r.Leave.CreatedDate
		rec.Reason = r.Leave.Reason
	}
}

func (rec *requestRecord) toDomain() *Request {
	r := &Request{
		ID:              rec.ID,
		Kind:            KindOf(rec.Type),
		Type:            rec.Type,
		Status:          RequestStatus(rec.Status),
		RejectionReason: rec.RejectionReason,
		Employee: Employee{
			Name:       rec.EmployeeName,
			Role:       rec.Role,
			Department: rec.Department,
		},
		Signed: rec.SignatureExists,
	}

	switch r.Kind {
	case KindShortAbsence:
		notes := rec.Notes
		if notes == "" {
			// the monthly form stored its notes under "reason"
			notes = rec.Reason
		}
		r.ShortAbsence = &ShortAbsence{
			Date:            rec.Date,
			FromTime:        rec.FromTime,
			ToTime:          rec.ToTime,
			FromTimeMinutes: intValue(rec.FromTimeMinutes),
			ToTimeMinutes:   intValue(rec.ToTimeMinutes),
			DurationMinutes: intValue(rec.DurationMinutes),
			Notes:           notes,
		}
	case KindLeave:
		r.Leave = &Leave{
			Subtype:     LeaveSubtype(strings.TrimSpace(strings.TrimPrefix(rec.Type, RequestTypeLeavePrefix))),
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			CreatedDate: rec.CreatedDate,
			Reason:      rec.Reason,
		}
	}

	return r
}

// MarshalRequests encodes requests as the flat JSON array persisted in the blob store.
func MarshalRequests(requests []*Request) ([]byte, error) {
	records := make([]requestRecord, 0, len(requests))
	for _, r := range requests {
		if r == nil {
			continue
		}
		var rec requestRecord
		rec.fromDomain(r)
		records = append(records, rec)
	}
	return json.Marshal(records)
}

// UnmarshalRequests decodes a persisted array. Empty input and JSON null
// yield an empty collection. Records that cannot be decoded are skipped and
// reported through a *PartialDecodeError returned together with the rest.
func UnmarshalRequests(data []byte) ([]*Request, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*Request{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	requests := make([]*Request, 0, len(raw))
	var skipped []RecordError
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			skipped = append(skipped, RecordError{Index: i, Err: fmt.Errorf("unexpected %T", item)})
			continue
		}
		rec, err := decodeRecord(m)
		if err != nil {
			skipped = append(skipped, RecordError{Index: i, Err: err})
			continue
		}
		requests = append(requests, rec.toDomain())
	}

	if len(skipped) > 0 {
		return requests, &PartialDecodeError{Skipped: skipped}
	}
	return requests, nil
}

func decodeRecord(m map[string]interface{}) (*requestRecord, error) {
	rec := &requestRecord{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       lenientIntHook,
		WeaklyTypedInput: true,
		Result:           rec,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}
	return rec, nil
}

// lenientIntHook turns non-numeric strings headed for int fields into 0 and
// truncates fractional numbers, so a bad minutes value never drops a record.
func lenientIntHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int64:
	default:
		return data, nil
	}

	s := strings.TrimSpace(reflect.ValueOf(data).String())
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}
	if to.Kind() == reflect.Int64 {
		return data, nil
	}
	return 0, nil
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
