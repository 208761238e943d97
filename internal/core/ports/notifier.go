package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/task"
)

// Notifier publishes lifecycle events that interest parties outside the
// claim flow, such as the requester learning their goods were stored.
// Implementations must not fail the surrounding command: delivery of the
// notification is best-effort.
type Notifier interface {
	// NotifyTaskClaimed announces that a carrier took the task.
	NotifyTaskClaimed(ctx context.Context, t *task.Task)

	// NotifyTaskCompleted announces that the task reached a terminal success
	// state, Stored or Delivered.
	NotifyTaskCompleted(ctx context.Context, t *task.Task)

	// NotifyPickupAwaitingClaim announces that an auto-created pickup segment
	// waits for a carrier.
	NotifyPickupAwaitingClaim(ctx context.Context, t *task.Task)
}
