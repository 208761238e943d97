package queries_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	t.Run("list claimable tasks", func(t *testing.T) {
		query := queries.NewListClaimableTasksQuery(true)

		require.NoError(t, query.Validate())
		assert.True(t, query.SortByCreation())

		var zero queries.ListClaimableTasksQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrListClaimableTasksQueryIsNotConstructed)
	})

	t.Run("get segments info", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetSegmentsInfoQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.RequestID().IsEqual(id))

		var missing kernel.UUID
		_, err = queries.NewGetSegmentsInfoQuery(missing)
		require.Error(t, err)
	})

	t.Run("get carrier tasks", func(t *testing.T) {
		query, err := queries.NewGetCarrierTasksQuery(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, query.Validate())

		var missing kernel.UUID
		_, err = queries.NewGetCarrierTasksQuery(missing)
		require.Error(t, err)
	})

	t.Run("get stored in warehouse", func(t *testing.T) {
		query, err := queries.NewGetStoredInWarehouseQuery(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, query.Validate())

		var missing kernel.UUID
		_, err = queries.NewGetStoredInWarehouseQuery(missing)
		require.Error(t, err)
	})
}
