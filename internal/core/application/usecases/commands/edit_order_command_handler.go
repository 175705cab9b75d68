package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/domain/model/device"
	"servis/internal/pkg/errs"
)

// EditOrderCommandHandler amends an existing order in one transaction:
// the customer is re-resolved by phone (the number may have been corrected
// to another customer's), the device row is rewritten in place, and the
// order's problem and due date are updated. No notification is sent.
type EditOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	workingSet *session.WorkingSet
	logger     *zap.Logger
}

// NewEditOrderCommandHandler creates a handler for order amendments.
func NewEditOrderCommandHandler(
	uowFactory IntakeUoWFactory,
	workingSet *session.WorkingSet,
	logger *zap.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		workingSet: workingSet,
		logger:     logger,
	}
}

// Handle processes the amendment. An order that no longer exists is a
// benign no-op, consistent with how transitions treat a stale working set.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Debug("order no longer exists, skipping amendment",
			zap.String("order_id", command.OrderID().String()))
		return nil
	}
	if err != nil {
		return err
	}

	cust, err := resolveCustomer(ctx, uow.CustomerRepository(), command.Name(), command.Phone())
	if err != nil {
		return err
	}

	dev, err := device.RestoreDevice(
		existingOrder.Device().ID(), command.Brand(), command.Model(), command.IMEI())
	if err != nil {
		return err
	}
	if err = uow.DeviceRepository().Update(ctx, dev); err != nil {
		return err
	}

	if err = existingOrder.Amend(cust, command.Problem(), command.DueDate()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	refreshWorkingSet(ctx, h.uowFactory.Create().OrderRepository(), h.workingSet, h.logger)

	return nil
}
