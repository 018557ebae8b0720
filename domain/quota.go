package domain

import "time"

const (
	DefaultMonthlyMinutes     = 8 * 60
	DefaultMonthlyCount       = 4
	DefaultMaxDurationMinutes = 3 * 60
)

// QuotaPolicy holds the monthly short-absence allowance.
type QuotaPolicy struct {
	MonthlyMinutes     int  `json:"monthly_minutes" yaml:"monthly_minutes" mapstructure:"monthly_minutes" default:"480" validate:"min=0"`
	MonthlyCount       int  `json:"monthly_count" yaml:"monthly_count" mapstructure:"monthly_count" default:"4" validate:"min=0"`
	MaxDurationMinutes int  `json:"max_duration_minutes" yaml:"max_duration_minutes" mapstructure:"max_duration_minutes" default:"180" validate:"min=1"`
	CountRejected      bool `json:"count_rejected" yaml:"count_rejected" mapstructure:"count_rejected"`
}

func DefaultQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{
		MonthlyMinutes:     DefaultMonthlyMinutes,
		MonthlyCount:       DefaultMonthlyCount,
		MaxDurationMinutes: DefaultMaxDurationMinutes,
	}
}

type Quota struct {
	UsedMinutes      int `json:"used_minutes" yaml:"used_minutes"`
	RemainingMinutes int `json:"remaining_minutes" yaml:"remaining_minutes"`
	UsedCount        int `json:"used_count" yaml:"used_count"`
	RemainingCount   int `json:"remaining_count" yaml:"remaining_count"`
}

// ComputeQuota derives the current month's short-absence allowance using
// the default policy.
func ComputeQuota(now time.Time, requests []*Request) Quota {
	return DefaultQuotaPolicy().Compute(now, requests)
}

// Compute counts short absences dated in the month of now. Requests of
// other types, other months and unparsable dates are ignored. Rejected
// requests are ignored unless CountRejected is set; the mobile app counted
// every short absence regardless of status, which CountRejected reproduces.
// Non-positive durations count as zero minutes.
func (p QuotaPolicy) Compute(now time.Time, requests []*Request) Quota {
	var q Quota
	for _, r := range requests {
		if !p.counts(r, now) {
			continue
		}
		q.UsedCount++
		if r.ShortAbsence != nil {
			q.UsedMinutes += max(0, r.ShortAbsence.DurationMinutes)
		}
	}

	q.RemainingMinutes = max(0, p.MonthlyMinutes-q.UsedMinutes)
	q.RemainingCount = max(0, p.MonthlyCount-q.UsedCount)
	return q
}

func (p QuotaPolicy) counts(r *Request, now time.Time) bool {
	if r == nil || r.Type != RequestTypeShortAbsence || r.ShortAbsence == nil {
		return false
	}
	if r.Status == RequestStatusRejected && !p.CountRejected {
		return false
	}
	return SameMonth(r.ShortAbsence.Date, now)
}
