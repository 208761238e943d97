// Package notify provides the logging-backed Notifier used by command
// handlers. Notifications are best-effort by contract, so the sink only
// records them; a push or email adapter can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/domain/model/task"
)

// SlogNotifier logs lifecycle notifications through slog.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// NotifyTaskClaimed announces that a carrier took the task.
func (n *SlogNotifier) NotifyTaskClaimed(ctx context.Context, t *task.Task) {
	n.logger.InfoContext(ctx, "task claimed",
		"task_id", t.ID().String(),
		"request_id", t.RequestID().String(),
		"slot", string(t.Slot()),
	)
}

// NotifyTaskCompleted announces that the task reached Stored or Delivered.
func (n *SlogNotifier) NotifyTaskCompleted(ctx context.Context, t *task.Task) {
	n.logger.InfoContext(ctx, "task completed",
		"task_id", t.ID().String(),
		"request_id", t.RequestID().String(),
		"status", t.Status().String(),
	)
}

// NotifyPickupAwaitingClaim announces that an auto-created pickup segment
// waits for a carrier.
func (n *SlogNotifier) NotifyPickupAwaitingClaim(ctx context.Context, t *task.Task) {
	n.logger.InfoContext(ctx, "pickup awaiting claim",
		"task_id", t.ID().String(),
		"request_id", t.RequestID().String(),
		"destination_city", t.Destination().City(),
	)
}
