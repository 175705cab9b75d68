package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/domain/model/customer"
	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
	"servis/internal/core/domain/services"
	"servis/internal/core/ports"
	"servis/internal/pkg/errs"
)

// CreateOrderCommandHandler registers a new service order. The customer is
// resolved by phone number so repeat customers keep a single record, the
// device row is always new, and the order starts in the received status.
// After the commit the customer gets the intake notification; a delivery
// failure there is logged and swallowed because the order itself is saved.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	workingSet *session.WorkingSet
	templates  *session.TemplateConfig
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for intake operations.
func NewCreateOrderCommandHandler(
	uowFactory IntakeUoWFactory,
	workingSet *session.WorkingSet,
	templates *session.TemplateConfig,
	notifier ports.Notifier,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		workingSet: workingSet,
		templates:  templates,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the intake command: resolves or creates the customer,
// creates the device and the order in one transaction, notifies the
// customer and refreshes the working set.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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

	cust, err := resolveCustomer(ctx, uow.CustomerRepository(), command.Name(), command.Phone())
	if err != nil {
		return err
	}

	dev, err := device.NewDevice(kernel.NewUUID(), command.Brand(), command.Model(), command.IMEI())
	if err != nil {
		return err
	}
	if err = uow.DeviceRepository().Add(ctx, dev); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cust, dev, command.Problem(), command.DueDate())
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyIntake(ctx, newOrder)

	refreshWorkingSet(ctx, h.uowFactory.Create().OrderRepository(), h.workingSet, h.logger)

	return nil
}

func (h CreateOrderCommandHandler) notifyIntake(ctx context.Context, newOrder *order.Order) {
	messageTemplate := h.templates.Resolve(order.Received.String())
	renderer := services.NewMessageRenderer(h.templates.Company())
	rendered := renderer.Render(messageTemplate, buildMessageContext(newOrder, order.Received))

	if err := h.notifier.Send(ctx, newOrder.Customer().Phone(), rendered); err != nil {
		h.logger.Warn("intake notification failed",
			zap.String("order_id", newOrder.ShortID()),
			zap.Error(err))
	}
}

// resolveCustomer finds the customer with this phone number, renaming them
// when the intake form carries a different name, or creates a new record
// when the number is unseen.
func resolveCustomer(
	ctx context.Context, repo ports.CustomerRepository, name, phone string,
) (*customer.Customer, error) {
	existing, err := repo.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		if existing.Name() != name {
			if err = existing.Rename(name); err != nil {
				return nil, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		created, createErr := customer.NewCustomer(kernel.NewUUID(), name, phone)
		if createErr != nil {
			return nil, createErr
		}
		if createErr = repo.Add(ctx, created); createErr != nil {
			return nil, createErr
		}
		return created, nil

	default:
		return nil, err
	}
}
