package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent logs a structured record of a state mutation.
//
// Args:
//   - action: what happened (e.g., "submit", "increment", "clear")
//   - widget: the widget whose state changed ("userData", "counter", "note")
//   - key: the storage key written or removed
//   - result: "success" or "failure"
//   - details: optional additional details
func LogAuditEvent(ctx context.Context, action, widget, key, result string, details map[string]any) {
	LoggerFromContext(ctx).Info("Audit event",
		zap.String("audit.action", action),
		zap.String("audit.widget", widget),
		zap.String("audit.key", key),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
