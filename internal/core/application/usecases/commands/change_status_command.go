package commands

import (
	"errors"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
	"servis/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand represents a request to move an order to a new
// lifecycle status and notify the customer about it.
//
// Example:
//
//	cmd, err := NewChangeStatusCommand(orderID, order.StatusCompleted)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewChangeStatusCommandHandler(uowFactory, workingSet, templates, notifier, logger)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrStatusNotPersisted):
//	    // nothing changed, safe to retry
//	case errors.Is(err, ErrNotificationNotSent):
//	    // status saved, customer was not reached
//	}
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to transition an order.
// Validates that the order ID is valid and the status is non-empty; the
// status set itself is open, so unknown statuses are accepted.
func NewChangeStatusCommand(orderID kernel.UUID, targetStatus order.Status) (ChangeStatusCommand, error) {
	statusCommand := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeStatusCommandIsNotConstructed if validation fails.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being transitioned.
func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the status the order should end up in.
func (c ChangeStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *ChangeStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
