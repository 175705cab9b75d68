package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servis/internal/core/domain/model/customer"
	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
)

func makeCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	cust, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "+381651234567")
	require.NoError(t, err)
	return cust
}

func makeDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.NewDevice(kernel.NewUUID(), "Samsung", "S21", "")
	require.NoError(t, err)
	return dev
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		cust := makeCustomer(t)
		dev := makeDevice(t)

		o, err := order.NewOrder(validID, cust, dev, "ne pali se", nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, "ne pali se", o.Problem())
		assert.Nil(t, o.DueDate())
		assert.Same(t, cust, o.Customer())
		assert.Same(t, dev, o.Device())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should copy the due date", func(t *testing.T) {
		due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(validID, makeCustomer(t), makeDevice(t), "puca ekran", &due)

		require.NoError(t, err)
		require.NotNil(t, o.DueDate())
		assert.NotSame(t, &due, o.DueDate())
		assert.True(t, due.Equal(*o.DueDate()))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, makeCustomer(t), makeDevice(t), "ne pali se", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty problem", func(t *testing.T) {
		o, err := order.NewOrder(validID, makeCustomer(t), makeDevice(t), "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "problem description")
	})

	t.Run("should fail with nil customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, makeDevice(t), "ne pali se", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
	})

	t.Run("should fail with nil device", func(t *testing.T) {
		o, err := order.NewOrder(validID, makeCustomer(t), nil, "ne pali se", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, device.ErrDeviceIsNotConstructed)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, nil, nil, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "problem description")
		assert.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
		assert.ErrorIs(t, err, device.ErrDeviceIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with explicit status and creation time", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), createdAt, order.Completed,
			"ne pali se", nil, makeCustomer(t), makeDevice(t))

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, createdAt.Equal(o.CreatedAt()))
	})

	t.Run("should accept a status outside the known set", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), time.Now(), order.Status("u servisu"),
			"ne pali se", nil, makeCustomer(t), makeDevice(t))

		require.NoError(t, err)
		assert.Equal(t, "u servisu", o.Status().String())
	})

	t.Run("should fail with empty status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), time.Now(), "",
			"ne pali se", nil, makeCustomer(t), makeDevice(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ShortID(t *testing.T) {
	id, err := kernel.UUIDFromString("aaaaaaaa-bbbb-cccc-dddd-eeeeffff0000")
	require.NoError(t, err)

	o, err := order.NewOrder(id, makeCustomer(t), makeDevice(t), "ne pali se", nil)
	require.NoError(t, err)

	assert.Equal(t, "ffff0000", o.ShortID())
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should move to any non-empty status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", nil)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())

		require.NoError(t, o.ChangeStatus(order.Received))
		assert.Equal(t, order.Received, o.Status())

		require.NoError(t, o.ChangeStatus(order.Status("ceka delove")))
		assert.Equal(t, "ceka delove", o.Status().String())
	})

	t.Run("should reject empty status and keep the current one", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", nil)
		require.NoError(t, err)

		require.Error(t, o.ChangeStatus(""))
		assert.Equal(t, order.Received, o.Status())
	})
}

func TestOrder_Amend(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should replace intake fields and keep the status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", nil)
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Completed))

		renamed, err := customer.NewCustomer(kernel.NewUUID(), "Marko", "+381641112233")
		require.NoError(t, err)

		require.NoError(t, o.Amend(renamed, "puca ekran", &due))

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, "puca ekran", o.Problem())
		assert.Equal(t, "Marko", o.Customer().Name())
		require.NotNil(t, o.DueDate())
		assert.True(t, due.Equal(*o.DueDate()))
	})

	t.Run("should clear the due date when amended to nil", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", &due)
		require.NoError(t, err)

		require.NoError(t, o.Amend(o.Customer(), "ne pali se", nil))

		assert.Nil(t, o.DueDate())
	})

	t.Run("should reject empty problem and leave the order untouched", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", nil)
		require.NoError(t, err)

		require.Error(t, o.Amend(o.Customer(), "", nil))
		assert.Equal(t, "ne pali se", o.Problem())
	})
}

func TestOrder_Clone(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	original, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", &due)
	require.NoError(t, err)

	clone := original.Clone()

	require.NoError(t, clone.Validate())
	assert.True(t, clone.IsEqual(original))
	assert.NotSame(t, original, clone)
	assert.NotSame(t, original.Customer(), clone.Customer())
	assert.NotSame(t, original.Device(), clone.Device())
	assert.NotSame(t, original.DueDate(), clone.DueDate())

	// Mutating the original must not leak into the clone.
	require.NoError(t, original.ChangeStatus(order.Failed))
	require.NoError(t, original.Customer().Rename("Marko"))

	assert.Equal(t, order.Received, clone.Status())
	assert.Equal(t, "Ana", clone.Customer().Name())
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	first, err := order.NewOrder(id, makeCustomer(t), makeDevice(t), "ne pali se", nil)
	require.NoError(t, err)
	second, err := order.NewOrder(id, makeCustomer(t), makeDevice(t), "puca ekran", nil)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), makeCustomer(t), makeDevice(t), "ne pali se", nil)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}
