package audit

import (
	"context"
	"time"

	"github.com/EricWal/hr-app/pkg/log"
	saltAudit "github.com/goto/salt/audit"
)

// LogRepository records audit entries as structured log lines.
type LogRepository struct {
	logger log.Logger
}

func NewLogRepository(logger log.Logger) *LogRepository {
	return &LogRepository{logger: logger}
}

func (r *LogRepository) Init(context.Context) error {
	return nil
}

func (r *LogRepository) Insert(ctx context.Context, l *saltAudit.Log) error {
	r.logger.Info(ctx, "audit",
		"action", l.Action,
		"audit_actor", l.Actor,
		"timestamp", l.Timestamp.Format(time.RFC3339),
		"data", l.Data,
		"metadata", l.Metadata,
	)
	return nil
}
