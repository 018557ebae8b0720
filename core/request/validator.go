package request

import (
	"errors"
	"time"

	"github.com/EricWal/hr-app/domain"
	"github.com/go-playground/validator/v10"
)

const (
	tagLeaveSubtype = "leave_subtype"
	tagCalendarDay  = "calendar_day"
)

// ShortAbsenceCheck holds what the short absence rules look at. Times are
// minutes since midnight; nil means the time was not picked.
type ShortAbsenceCheck struct {
	Date          string `validate:"required"`
	FromMinutes   *int
	ToMinutes     *int
	MalformedTime bool
	Acknowledged  bool `validate:"required"`
	Signed        bool `validate:"required"`
}

type LeaveCheck struct {
	Subtype   string `validate:"required,leave_subtype"`
	StartDate string `validate:"required,calendar_day"`
	EndDate   string `validate:"required,calendar_day"`
	Reason    string `validate:"required"`
}

var fieldViolations = map[string]map[string]ViolationCode{
	"Date":         {"required": ViolationMissingDate},
	"Acknowledged": {"required": ViolationAcknowledgementRequired},
	"Signed":       {"required": ViolationSignatureRequired},
	"Subtype":      {"required": ViolationMissingLeaveType, tagLeaveSubtype: ViolationMissingLeaveType},
	"StartDate":    {"required": ViolationMissingStartDate, tagCalendarDay: ViolationMalformedDate},
	"EndDate":      {"required": ViolationMissingEndDate, tagCalendarDay: ViolationMalformedDate},
	"Reason":       {"required": ViolationMissingReason},
}

// Validator applies the submission rules and collects every violation.
type Validator struct {
	validate *validator.Validate
	policy   domain.QuotaPolicy
}

func NewValidator(v *validator.Validate, policy domain.QuotaPolicy) *Validator {
	if v == nil {
		v = validator.New()
	}
	_ = v.RegisterValidation(tagLeaveSubtype, func(fl validator.FieldLevel) bool {
		return domain.LeaveSubtype(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation(tagCalendarDay, func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.CalendarDayLayout, fl.Field().String())
		return err == nil
	})
	return &Validator{validate: v, policy: policy}
}

// ValidateShortAbsence returns nil when c can be submitted given the
// remaining allowance, or a *ValidationError.
func (v *Validator) ValidateShortAbsence(c ShortAbsenceCheck, quota domain.Quota) error {
	vs := violationSet{}
	if err := v.collect(c, vs); err != nil {
		return err
	}

	if c.FromMinutes == nil || c.ToMinutes == nil {
		vs.add(ViolationMissingTimeRange)
	}
	if c.MalformedTime || !withinDay(c.FromMinutes) || !withinDay(c.ToMinutes) {
		vs.add(ViolationInvalidTimeOfDay)
	}
	if c.FromMinutes != nil && c.ToMinutes != nil {
		duration := *c.ToMinutes - *c.FromMinutes
		if duration <= 0 {
			vs.add(ViolationInvalidRange)
		} else {
			if duration > v.policy.MaxDurationMinutes {
				vs.add(ViolationDurationExceedsCap)
			}
			if duration > quota.RemainingMinutes {
				vs.add(ViolationQuotaExceeded)
			}
		}
	}
	if quota.RemainingCount <= 0 {
		vs.add(ViolationMonthlyLimitReached)
	}

	return vs.toError(v.policy)
}

func (v *Validator) ValidateLeave(c LeaveCheck) error {
	vs := violationSet{}
	if err := v.collect(c, vs); err != nil {
		return err
	}

	start, startErr := time.Parse(domain.CalendarDayLayout, c.StartDate)
	end, endErr := time.Parse(domain.CalendarDayLayout, c.EndDate)
	if startErr == nil && endErr == nil && end.Before(start) {
		vs.add(ViolationInvalidDateRange)
	}

	return vs.toError(v.policy)
}

func (v *Validator) collect(s interface{}, vs violationSet) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if code, ok := fieldViolations[fe.StructField()][fe.Tag()]; ok {
			vs.add(code)
		}
	}
	return nil
}

func withinDay(minutes *int) bool {
	return minutes == nil || (*minutes >= 0 && *minutes < domain.MinutesPerDay)
}
