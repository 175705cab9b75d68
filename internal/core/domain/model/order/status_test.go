package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servis/internal/core/domain/model/order"
	"servis/internal/pkg/errs"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should use the storage spelling", func(t *testing.T) {
		assert.Equal(t, "primljen", order.Received.String())
		assert.Equal(t, "zavrsen", order.Completed.String())
		assert.Equal(t, "neuspeh", order.Failed.String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should trim and lower-case raw input", func(t *testing.T) {
		assert.Equal(t, order.Completed, order.StatusFromString("  ZAVRSEN "))
		assert.Equal(t, order.Received, order.StatusFromString("Primljen"))
	})

	t.Run("should pass unknown values through", func(t *testing.T) {
		assert.Equal(t, order.Status("u servisu"), order.StatusFromString("U Servisu"))
	})

	t.Run("should reduce blank input to the empty status", func(t *testing.T) {
		assert.Equal(t, order.Status(""), order.StatusFromString("   "))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept any non-empty status", func(t *testing.T) {
		require.NoError(t, order.Received.Validate())
		require.NoError(t, order.Status("ceka delove").Validate())
	})

	t.Run("should reject the empty status", func(t *testing.T) {
		err := order.Status("").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStatus_IsKnown(t *testing.T) {
	assert.True(t, order.Received.IsKnown())
	assert.True(t, order.Completed.IsKnown())
	assert.True(t, order.Failed.IsKnown())
	assert.False(t, order.Status("u servisu").IsKnown())
	assert.False(t, order.Status("").IsKnown())
}
