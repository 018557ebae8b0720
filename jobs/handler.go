package jobs

import (
	"context"
	"time"

	"github.com/EricWal/hr-app/core/report"
	"github.com/EricWal/hr-app/pkg/log"
)

type Type string

const (
	PendingRequestsReminder Type = "pending_requests_reminder"
)

type Config map[string]interface{}

type Job struct {
	Enabled bool   `mapstructure:"enabled"`
	Config  Config `mapstructure:"config"`
}

//go:generate mockery --name=reportService --exported --with-expecter
type reportService interface {
	Summary(context.Context) (*report.Summary, error)
}

type handler struct {
	logger        log.Logger
	reportService reportService
	now           func() time.Time
}

func NewHandler(logger log.Logger, reportService reportService) *handler {
	return &handler{
		logger:        logger,
		reportService: reportService,
		now:           time.Now,
	}
}
