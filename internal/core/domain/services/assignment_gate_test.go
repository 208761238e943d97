package services_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func newOpenRequest(t *testing.T) *request.Request {
	t.Helper()
	source, err := request.NewIndividualSource(kernel.NewUUID())
	require.NoError(t, err)
	origin, err := kernel.NewAddress("10 Rue A", "Paris")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("5 Rue B", "Lyon")
	require.NoError(t, err)
	price, err := kernel.NewPrice(20.0)
	require.NoError(t, err)

	req, err := request.NewRequest(kernel.NewUUID(), source, origin, destination, price, nil, "")
	require.NoError(t, err)
	return req
}

func eligibleCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.RestoreCarrier(kernel.NewUUID(), "Jean Porter", true)
	require.NoError(t, err)
	return c
}

func TestAssignmentGate_Check(t *testing.T) {
	gate := services.NewAssignmentGate()

	t.Run("eligible carrier may claim open request", func(t *testing.T) {
		require.NoError(t, gate.Check(eligibleCarrier(t), newOpenRequest(t)))
	})

	t.Run("ineligible carrier is rejected", func(t *testing.T) {
		c, err := carrier.NewCarrier(kernel.NewUUID(), "Jean Porter")
		require.NoError(t, err)

		err = gate.Check(c, newOpenRequest(t))

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("assigned request rejects complete claims", func(t *testing.T) {
		req := newOpenRequest(t)
		require.NoError(t, req.Assign())

		require.ErrorIs(t, gate.Check(eligibleCarrier(t), req), errs.ErrInvalidState)
	})
}

func TestAssignmentGate_CheckSegment(t *testing.T) {
	gate := services.NewAssignmentGate()

	t.Run("segment claims stay open while in progress", func(t *testing.T) {
		req := newOpenRequest(t)
		require.NoError(t, req.Start())

		require.NoError(t, gate.CheckSegment(eligibleCarrier(t), req))
	})

	t.Run("fully covered request rejects segment claims", func(t *testing.T) {
		req := newOpenRequest(t)
		require.NoError(t, req.Assign())

		require.ErrorIs(t, gate.CheckSegment(eligibleCarrier(t), req), errs.ErrInvalidState)
	})

	t.Run("cancelled request rejects segment claims", func(t *testing.T) {
		req := newOpenRequest(t)
		require.NoError(t, req.Cancel())

		require.ErrorIs(t, gate.CheckSegment(eligibleCarrier(t), req), errs.ErrInvalidState)
	})
}
