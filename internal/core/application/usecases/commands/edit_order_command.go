package commands

import (
	"errors"
	"time"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents an amendment to an existing order: corrected
// customer details, device details, problem description or due date. Editing
// never triggers a notification, whatever fields change.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	name    string
	phone   string
	brand   string
	model   string
	imei    string
	problem string
	dueDate *time.Time

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to amend an order. The same fields
// are required as on intake.
func NewEditOrderCommand(
	orderID kernel.UUID, name, phone, brand, model, imei, problem string, dueDate *time.Time,
) (EditOrderCommand, error) {
	editCommand := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOrderID(orderID),
		editCommand.setName(name),
		editCommand.setPhone(phone),
		editCommand.setBrand(brand),
		editCommand.setModel(model),
		editCommand.setProblem(problem),
	); err != nil {
		return EditOrderCommand{}, err
	}

	editCommand.imei = imei
	editCommand.dueDate = dueDate
	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being amended.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the customer's display name.
func (c EditOrderCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number as entered.
func (c EditOrderCommand) Phone() string {
	return c.phone
}

// Brand returns the device brand.
func (c EditOrderCommand) Brand() string {
	return c.brand
}

// Model returns the device model.
func (c EditOrderCommand) Model() string {
	return c.model
}

// IMEI returns the device IMEI, possibly empty.
func (c EditOrderCommand) IMEI() string {
	return c.imei
}

// Problem returns the fault description.
func (c EditOrderCommand) Problem() string {
	return c.problem
}

// DueDate returns the promised completion date, or nil when none was given.
func (c EditOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *EditOrderCommand) setBrand(brand string) error {
	if brand == "" {
		return ErrBrandIsRequired
	}

	c.brand = brand
	return nil
}

func (c *EditOrderCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *EditOrderCommand) setProblem(problem string) error {
	if problem == "" {
		return ErrProblemIsRequired
	}

	c.problem = problem
	return nil
}
