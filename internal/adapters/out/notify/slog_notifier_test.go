package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"parcelflow/internal/adapters/out/notify"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogNotifier_LogsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	notifier := notify.NewSlogNotifier(logger)

	origin, err := kernel.NewAddress("12 rue de la Paix", "Paris")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("4 rue de la République", "Lyon")
	require.NoError(t, err)
	price, err := kernel.NewPrice(30)
	require.NoError(t, err)

	testTask, err := task.NewCompleteTask(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		origin, destination, price, "A1B2C3D4")
	require.NoError(t, err)

	ctx := context.Background()
	notifier.NotifyTaskClaimed(ctx, testTask)
	notifier.NotifyTaskCompleted(ctx, testTask)
	notifier.NotifyPickupAwaitingClaim(ctx, testTask)

	output := buf.String()
	assert.Contains(t, output, "task claimed")
	assert.Contains(t, output, "task completed")
	assert.Contains(t, output, "pickup awaiting claim")
	assert.Contains(t, output, testTask.ID().String())
	assert.Contains(t, output, "component=notifier")
}
