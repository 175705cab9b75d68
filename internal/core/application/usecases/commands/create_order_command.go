package commands

import (
	"errors"
	"time"

	"servis/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNameIsRequired    = errors.New("customer name is required")
	ErrPhoneIsRequired   = errors.New("customer phone is required")
	ErrBrandIsRequired   = errors.New("device brand is required")
	ErrModelIsRequired   = errors.New("device model is required")
	ErrProblemIsRequired = errors.New("problem description is required")
)

// CreateOrderCommand represents a device intake: who brought it, what the
// device is and what is wrong with it. The IMEI and the promised completion
// date are optional.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ana", "+381651234567", "Samsung", "S21", "", "ne pali se", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, workingSet, templates, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	brand   string
	model   string
	imei    string
	problem string
	dueDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new service order.
// Name, phone, brand, model and problem are required; imei and dueDate may
// be empty.
func NewCreateOrderCommand(
	name, phone, brand, model, imei, problem string, dueDate *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setName(name),
		orderCommand.setPhone(phone),
		orderCommand.setBrand(brand),
		orderCommand.setModel(model),
		orderCommand.setProblem(problem),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.imei = imei
	orderCommand.dueDate = dueDate
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number as entered.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Brand returns the device brand.
func (c CreateOrderCommand) Brand() string {
	return c.brand
}

// Model returns the device model.
func (c CreateOrderCommand) Model() string {
	return c.model
}

// IMEI returns the device IMEI, possibly empty.
func (c CreateOrderCommand) IMEI() string {
	return c.imei
}

// Problem returns the fault description.
func (c CreateOrderCommand) Problem() string {
	return c.problem
}

// DueDate returns the promised completion date, or nil when none was given.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *CreateOrderCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setBrand(brand string) error {
	if brand == "" {
		return ErrBrandIsRequired
	}

	c.brand = brand
	return nil
}

func (c *CreateOrderCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *CreateOrderCommand) setProblem(problem string) error {
	if problem == "" {
		return ErrProblemIsRequired
	}

	c.problem = problem
	return nil
}
