package request_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []request.Status{
		request.Open, request.Assigned, request.InProgress,
		request.Completed, request.Cancelled,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.ErrorIs(t, request.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, request.Status(42).Validate())
		assert.Equal(t, "Unknown", request.Status(42).String())
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("open can be assigned", func(t *testing.T) {
		next, err := request.Open.Assign()

		require.NoError(t, err)
		assert.Equal(t, request.Assigned, next)
	})

	t.Run("later statuses cannot be assigned", func(t *testing.T) {
		for _, s := range []request.Status{
			request.Assigned, request.InProgress, request.Completed, request.Cancelled,
		} {
			_, err := s.Assign()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("open can start directly", func(t *testing.T) {
		next, err := request.Open.Start()

		require.NoError(t, err)
		assert.Equal(t, request.InProgress, next)
	})

	t.Run("assigned can start", func(t *testing.T) {
		next, err := request.Assigned.Start()

		require.NoError(t, err)
		assert.Equal(t, request.InProgress, next)
	})

	t.Run("terminal statuses cannot start", func(t *testing.T) {
		for _, s := range []request.Status{request.Completed, request.Cancelled} {
			_, err := s.Start()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in progress completes", func(t *testing.T) {
		next, err := request.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, request.Completed, next)
	})

	t.Run("open cannot complete without transit", func(t *testing.T) {
		_, err := request.Open.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("non-terminal statuses can cancel", func(t *testing.T) {
		for _, s := range []request.Status{request.Open, request.Assigned, request.InProgress} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, request.Cancelled, next)
		}
	})

	t.Run("terminal statuses cannot cancel", func(t *testing.T) {
		for _, s := range []request.Status{request.Completed, request.Cancelled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})
}

func TestStatus_NeverRegresses(t *testing.T) {
	// Status monotonicity: no transition methods lead backwards.
	t.Run("completed is terminal", func(t *testing.T) {
		assert.True(t, request.Completed.IsTerminal())

		_, err := request.Completed.Assign()
		require.Error(t, err)
		_, err = request.Completed.Start()
		require.Error(t, err)
		_, err = request.Completed.Complete()
		require.Error(t, err)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		assert.True(t, request.Cancelled.IsTerminal())
	})
}
