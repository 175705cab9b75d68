package commands

import (
	"context"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
)

// DeleteOrderCommandHandler removes an order and refreshes the working set.
// Deleting an id that is already gone succeeds quietly.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	workingSet *session.WorkingSet
	logger     *zap.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	workingSet *session.WorkingSet,
	logger *zap.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		workingSet: workingSet,
		logger:     logger,
	}
}

// Handle processes the deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, command.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	refreshWorkingSet(ctx, h.uowFactory.Create().OrderRepository(), h.workingSet, h.logger)

	return nil
}
