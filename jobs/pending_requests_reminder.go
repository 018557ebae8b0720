package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

type PendingRequestsReminderConfig struct {
	// StaleAfterDays flags the oldest pending request once it waited this long.
	StaleAfterDays int `mapstructure:"stale_after_days"`
}

// PendingRequestsReminderResult is what the job found.
type PendingRequestsReminderResult struct {
	Pending         int
	OldestPendingID int64
	OldestAge       time.Duration
	Stale           bool
}

func (h *handler) PendingRequestsReminder(ctx context.Context, cfg Config) error {
	_, err := h.pendingRequestsReminder(ctx, cfg)
	return err
}

func (h *handler) pendingRequestsReminder(ctx context.Context, cfg Config) (*PendingRequestsReminderResult, error) {
	h.logger.Info(ctx, "running pending requests reminder job")

	c := PendingRequestsReminderConfig{StaleAfterDays: 3}
	if err := mapstructure.WeakDecode(cfg, &c); err != nil {
		return nil, fmt.Errorf("parsing job config: %w", err)
	}

	summary, err := h.reportService.Summary(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to summarize requests", "error", err)
		return nil, err
	}

	result := &PendingRequestsReminderResult{Pending: summary.Pending}
	if summary.OldestPending == nil {
		h.logger.Info(ctx, "no pending requests")
		return result, nil
	}

	// ids are submission times in unix milliseconds
	submittedAt := time.UnixMilli(summary.OldestPending.ID)
	result.OldestPendingID = summary.OldestPending.ID
	result.OldestAge = h.now().Sub(submittedAt)
	result.Stale = c.StaleAfterDays > 0 && result.OldestAge >= time.Duration(c.StaleAfterDays)*24*time.Hour

	args := []interface{}{
		"pending", result.Pending,
		"oldest_id", result.OldestPendingID,
		"oldest_type", summary.OldestPending.Type,
		"oldest_waiting_hours", int(result.OldestAge.Hours()),
	}
	if result.Stale {
		h.logger.Warn(ctx, "pending requests are waiting for a decision", args...)
	} else {
		h.logger.Info(ctx, "pending requests are waiting for a decision", args...)
	}
	return result, nil
}
