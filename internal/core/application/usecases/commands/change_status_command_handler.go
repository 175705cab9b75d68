package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
	"servis/internal/core/domain/services"
	"servis/internal/core/ports"
)

var (
	// ErrStatusNotPersisted means the store rejected the transition. The
	// in-memory working set has been rolled back; nothing changed anywhere.
	ErrStatusNotPersisted = errors.New("order status was not persisted")

	// ErrNotificationNotSent means the transition is saved but the customer
	// was not reached. The new status stands; only the message is lost.
	ErrNotificationNotSent = errors.New("status saved, notification was not sent")
)

// ChangeStatusCommandHandler orchestrates a status transition end to end:
// optimistic in-memory update, durable persistence, customer notification
// and a closing refetch. The two failure modes are kept distinguishable so
// callers can tell "nothing happened" from "saved but customer not told".
//
// Example:
//
//	handler := NewChangeStatusCommandHandler(uowFactory, workingSet, templates, notifier, logger)
//	cmd, _ := NewChangeStatusCommand(orderID, order.StatusFromString("zavrsen"))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrStatusNotPersisted):
//	    log.Println("transition rolled back")
//	case errors.Is(err, ErrNotificationNotSent):
//	    log.Println("saved, but message delivery failed")
//	}
type ChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	workingSet *session.WorkingSet
	templates  *session.TemplateConfig
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(
	uowFactory OrderUoWFactory,
	workingSet *session.WorkingSet,
	templates *session.TemplateConfig,
	notifier ports.Notifier,
	logger *zap.Logger,
) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		workingSet: workingSet,
		templates:  templates,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status transition command.
//
// An order missing from the working set is a benign no-op: it was most
// likely deleted since the last refetch. A transition to the status the
// order already has is skipped the same way. Otherwise the transition is
// applied in memory first, then persisted; a persistence failure restores
// the pre-transition snapshot and returns ErrStatusNotPersisted. Once
// persisted, the notification is rendered and dispatched; a dispatch
// failure returns ErrNotificationNotSent but never rolls anything back.
// The handler closes with a best-effort refetch of the working set.
func (h ChangeStatusCommandHandler) Handle(ctx context.Context, command ChangeStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	target := command.TargetStatus()

	trackedOrder := h.workingSet.Get(command.OrderID())
	if trackedOrder == nil {
		h.logger.Debug("order not in working set, skipping transition",
			zap.String("order_id", command.OrderID().String()))
		return nil
	}
	if trackedOrder.Status() == target {
		h.logger.Debug("order already in target status, skipping transition",
			zap.String("order_id", trackedOrder.ShortID()),
			zap.String("status", target.String()))
		return nil
	}

	// Captured before the transition so a rollback cannot skew the message,
	// except for the status itself which names the state being entered.
	messageTemplate := h.templates.Resolve(target.String())
	messageContext := buildMessageContext(trackedOrder, target)
	recipient := trackedOrder.Customer().Phone()

	snapshot := h.workingSet.Snapshot()

	if err := trackedOrder.ChangeStatus(target); err != nil {
		return err
	}

	if err := h.persistStatus(ctx, trackedOrder.ID(), target); err != nil {
		h.workingSet.Restore(snapshot)
		h.logger.Warn("status transition rolled back",
			zap.String("order_id", trackedOrder.ShortID()),
			zap.String("status", target.String()),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrStatusNotPersisted, err)
	}

	var notificationErr error
	renderer := services.NewMessageRenderer(h.templates.Company())
	if err := h.notifier.Send(ctx, recipient, renderer.Render(messageTemplate, messageContext)); err != nil {
		h.logger.Warn("status notification failed",
			zap.String("order_id", trackedOrder.ShortID()),
			zap.String("status", target.String()),
			zap.Error(err))
		notificationErr = fmt.Errorf("%w: %w", ErrNotificationNotSent, err)
	}

	refreshWorkingSet(ctx, h.uowFactory.Create().OrderRepository(), h.workingSet, h.logger)

	return notificationErr
}

func (h ChangeStatusCommandHandler) persistStatus(
	ctx context.Context, orderID kernel.UUID, status order.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// refreshWorkingSet reloads the working set from storage. The refetch is
// best effort: on failure the current in-memory state stays and the error
// is only logged.
func refreshWorkingSet(
	ctx context.Context, repo ports.OrderRepository, workingSet *session.WorkingSet, logger *zap.Logger,
) {
	orders, err := repo.GetAll(ctx)
	if err != nil {
		logger.Warn("working set refresh failed", zap.Error(err))
		return
	}
	workingSet.Replace(orders)
}
