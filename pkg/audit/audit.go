package audit

import (
	"context"

	"github.com/EricWal/hr-app/pkg/log"
	saltAudit "github.com/goto/salt/audit"
)

const SystemActor = "system"

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// New returns an audit logger stamping each entry with the actor carried by
// ctx (see WithActor), falling back to SystemActor.
func New(repo *LogRepository) *saltAudit.Service {
	return saltAudit.New(
		saltAudit.WithRepository(repo),
		saltAudit.WithActorExtractor(actorFromContext),
		saltAudit.WithMetadataExtractor(func(ctx context.Context) map[string]interface{} {
			md := map[string]interface{}{"app": "hr-app"}
			if traceID, ok := ctx.Value(log.CtxKeyTraceID).(string); ok {
				md[log.CtxKeyTraceID] = traceID
			}
			return md
		}),
	)
}

// WithActor attaches the acting user to ctx for both audit entries and log lines.
func WithActor(ctx context.Context, actor string) context.Context {
	ctx = saltAudit.WithActor(ctx, actor)
	return context.WithValue(ctx, log.CtxKeyActor, actor) //nolint:staticcheck
}

func actorFromContext(ctx context.Context) (string, error) {
	if actor, ok := ctx.Value(log.CtxKeyActor).(string); ok && actor != "" {
		return actor, nil
	}
	return SystemActor, nil
}
