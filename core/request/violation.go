package request

import (
	"fmt"
	"strings"

	"github.com/EricWal/hr-app/domain"
)

type ViolationCode string

const (
	ViolationMissingDate             ViolationCode = "missing_date"
	ViolationMissingTimeRange        ViolationCode = "missing_time_range"
	ViolationInvalidRange            ViolationCode = "invalid_range"
	ViolationDurationExceedsCap      ViolationCode = "duration_exceeds_cap"
	ViolationQuotaExceeded           ViolationCode = "quota_exceeded"
	ViolationAcknowledgementRequired ViolationCode = "acknowledgement_required"
	ViolationMonthlyLimitReached     ViolationCode = "monthly_limit_reached"
	ViolationSignatureRequired       ViolationCode = "signature_required"
	ViolationInvalidTimeOfDay        ViolationCode = "invalid_time_of_day"

	ViolationMissingLeaveType ViolationCode = "missing_leave_type"
	ViolationMissingStartDate ViolationCode = "missing_start_date"
	ViolationMissingEndDate   ViolationCode = "missing_end_date"
	ViolationMissingReason    ViolationCode = "missing_reason"
	ViolationMalformedDate    ViolationCode = "malformed_date"
	ViolationInvalidDateRange ViolationCode = "invalid_date_range"
)

// violationOrder fixes the order codes are reported in.
var violationOrder = []ViolationCode{
	ViolationMissingDate,
	ViolationMissingTimeRange,
	ViolationInvalidRange,
	ViolationDurationExceedsCap,
	ViolationQuotaExceeded,
	ViolationAcknowledgementRequired,
	ViolationMonthlyLimitReached,
	ViolationSignatureRequired,
	ViolationInvalidTimeOfDay,
	ViolationMissingLeaveType,
	ViolationMissingStartDate,
	ViolationMissingEndDate,
	ViolationMissingReason,
	ViolationMalformedDate,
	ViolationInvalidDateRange,
}

var violationMessages = map[ViolationCode]string{
	ViolationMissingDate:             "الرجاء اختيار التاريخ",
	ViolationMissingTimeRange:        "اختر وقت البداية والنهاية من القائمة",
	ViolationInvalidRange:            "وقت النهاية يجب أن يكون بعد وقت البداية",
	ViolationQuotaExceeded:           "لا يوجد رصيد كافٍ لهذا المدة",
	ViolationAcknowledgementRequired: "يرجى تأكيد صحة البيانات",
	ViolationMonthlyLimitReached:     "تم استنفاد عدد طلبات الاستئذان لهذا الشهر",
	ViolationSignatureRequired:       "يرجى توقيع النموذج",
	ViolationInvalidTimeOfDay:        "صيغة الوقت غير صحيحة",
	ViolationMissingLeaveType:        "اختر نوع الإجازة",
	ViolationMissingStartDate:        "حدد تاريخ البداية",
	ViolationMissingEndDate:          "حدد تاريخ النهاية",
	ViolationMissingReason:           "اكتب سبب الإجازة",
	ViolationMalformedDate:           "صيغة التاريخ غير صحيحة",
	ViolationInvalidDateRange:        "تاريخ النهاية يجب أن يكون بعد تاريخ البداية",
}

type Violation struct {
	Code    ViolationCode `json:"code" yaml:"code"`
	Message string        `json:"message" yaml:"message"`
}

// ValidationError lists every rule a submission broke.
type ValidationError struct {
	Violations []Violation `json:"violations" yaml:"violations"`
}

func (e *ValidationError) Error() string {
	codes := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		codes = append(codes, string(v.Code))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(codes, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

func (e *ValidationError) Codes() []ViolationCode {
	codes := make([]ViolationCode, 0, len(e.Violations))
	for _, v := range e.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func (e *ValidationError) Has(code ViolationCode) bool {
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

type violationSet map[ViolationCode]struct{}

func (vs violationSet) add(code ViolationCode) {
	vs[code] = struct{}{}
}

func (vs violationSet) toError(policy domain.QuotaPolicy) error {
	if len(vs) == 0 {
		return nil
	}
	e := &ValidationError{}
	for _, code := range violationOrder {
		if _, ok := vs[code]; ok {
			e.Violations = append(e.Violations, Violation{Code: code, Message: message(code, policy)})
		}
	}
	return e
}

func message(code ViolationCode, policy domain.QuotaPolicy) string {
	if code == ViolationDurationExceedsCap {
		limit := policy.MaxDurationMinutes
		if limit%60 == 0 {
			return fmt.Sprintf("مدة الطلب لا يجب أن تتجاوز %d ساعات", limit/60)
		}
		return "مدة الطلب لا يجب أن تتجاوز " + domain.FormatMinutes(limit)
	}
	return violationMessages[code]
}
