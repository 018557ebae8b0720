package report

import "github.com/EricWal/hr-app/domain"

type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Pending  int `json:"pending" yaml:"pending"`
	Approved int `json:"approved" yaml:"approved"`
	Rejected int `json:"rejected" yaml:"rejected"`
	// ApprovedAbsenceMinutes sums the duration of approved short absences.
	ApprovedAbsenceMinutes int `json:"approved_absence_minutes" yaml:"approved_absence_minutes"`
	// OldestPending is nil when nothing awaits a decision.
	OldestPending *domain.Request `json:"oldest_pending,omitempty" yaml:"oldest_pending,omitempty"`
}

type ExportFilter struct {
	Statuses []domain.RequestStatus `mapstructure:"statuses"`
	Q        string                 `mapstructure:"q"`
}
