package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/ports"
)

// notify wraps an optional ports.Notifier so handlers fire events without nil
// checks. Notifications are best-effort and never fail the command.
type notify struct {
	sink ports.Notifier
}

func (n notify) taskClaimed(ctx context.Context, t *task.Task) {
	if n.sink != nil {
		n.sink.NotifyTaskClaimed(ctx, t)
	}
}

func (n notify) taskCompleted(ctx context.Context, t *task.Task) {
	if n.sink != nil {
		n.sink.NotifyTaskCompleted(ctx, t)
	}
}

func (n notify) pickupAwaitingClaim(ctx context.Context, t *task.Task) {
	if n.sink != nil {
		n.sink.NotifyPickupAwaitingClaim(ctx, t)
	}
}
