package carrier_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	t.Run("new carrier starts ineligible", func(t *testing.T) {
		c, err := carrier.NewCarrier(kernel.NewUUID(), "Jean Porter")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Jean Porter", c.Name())
		assert.False(t, c.IsEligible())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("id is required", func(t *testing.T) {
		var missing kernel.UUID

		_, err := carrier.NewCarrier(missing, "Jean Porter")

		require.Error(t, err)
	})
}

func TestCarrier_Eligibility(t *testing.T) {
	c, err := carrier.RestoreCarrier(kernel.NewUUID(), "Jean Porter", true)
	require.NoError(t, err)
	assert.True(t, c.IsEligible())

	c.MarkIneligible()
	assert.False(t, c.IsEligible())

	c.MarkEligible()
	assert.True(t, c.IsEligible())
}
