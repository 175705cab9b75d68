package order

import (
	"errors"
	"time"

	"servis/internal/core/domain/model/customer"
	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// shortIDLength is the number of trailing characters of the order id shown to
// people (notifications, receipts).
const shortIDLength = 8

// Order represents one repair job in the shop. It is the aggregate root that
// tracks a device from intake through resolution.
//
// Order carries the customer and device as a denormalized projection, the way
// the store returns them: the coordinator needs the phone number and device
// details at the moment of a transition without extra lookups. Customer and
// Device still live in their own tables and may outlive the order.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Problem description must be non-empty
//   - Status must be non-empty; the status set itself is open
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	createdAt time.Time
	status    Status
	problem   string
	dueDate   *time.Time
	customer  *customer.Customer
	device    *device.Device

	isConstructed bool
}

// NewOrder creates a new Order on intake. The order starts in Received status
// with the creation time set to the current UTC instant.
//
// Parameters:
//   - id: unique identifier for the order
//   - cust: the (already resolved) customer
//   - dev: the device handed in
//   - problem: description of the fault, required
//   - dueDate: promised completion date, optional
func NewOrder(
	id kernel.UUID,
	cust *customer.Customer,
	dev *device.Device,
	problem string,
	dueDate *time.Time,
) (*Order, error) {
	return RestoreOrder(id, time.Now().UTC(), Received, problem, dueDate, cust, dev)
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// creation time and status. Used by repositories and tests.
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	status Status,
	problem string,
	dueDate *time.Time,
	cust *customer.Customer,
	dev *device.Device,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setProblem(problem),
		order.setCustomer(cust),
		order.setDevice(dev),
	); err != nil {
		return nil, err
	}

	order.setDueDate(dueDate)
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShortID returns the human-facing suffix of the order id, the last eight
// characters of its canonical string form. This is what notifications and
// receipts print as the order number.
func (o *Order) ShortID() string {
	s := o.id.String()
	return s[len(s)-shortIDLength:]
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Problem returns the fault description.
func (o *Order) Problem() string {
	return o.problem
}

// DueDate returns the promised completion date, or nil when none was given.
func (o *Order) DueDate() *time.Time {
	return o.dueDate
}

// Customer returns the customer projection carried by the order.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Device returns the device projection carried by the order.
func (o *Order) Device() *device.Device {
	return o.device
}

// ChangeStatus moves the order to the target status. Any non-empty status is
// accepted; whether a notification goes out is decided by the coordinator,
// not here.
func (o *Order) ChangeStatus(target Status) error {
	return o.setStatus(target)
}

// Amend replaces the mutable intake fields on an edit: the customer
// reference, the fault description and the due date. The status is left
// untouched and no notification is implied.
func (o *Order) Amend(cust *customer.Customer, problem string, dueDate *time.Time) error {
	if err := errors.Join(
		o.setCustomer(cust),
		o.setProblem(problem),
	); err != nil {
		return err
	}
	o.setDueDate(dueDate)
	return nil
}

// Clone returns a deep copy of the order. The working set snapshots orders
// before an optimistic update so a persistence failure can restore them.
func (o *Order) Clone() *Order {
	clone := *o
	if o.dueDate != nil {
		due := *o.dueDate
		clone.dueDate = &due
	}
	if o.customer != nil {
		cust := *o.customer
		clone.customer = &cust
	}
	if o.device != nil {
		dev := *o.device
		clone.device = &dev
	}
	return &clone
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setProblem(problem string) error {
	if problem == "" {
		return errs.NewValueIsRequiredError("problem description")
	}
	o.problem = problem
	return nil
}

func (o *Order) setCustomer(cust *customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	o.customer = cust
	return nil
}

func (o *Order) setDevice(dev *device.Device) error {
	if err := dev.Validate(); err != nil {
		return err
	}
	o.device = dev
	return nil
}

func (o *Order) setDueDate(dueDate *time.Time) {
	if dueDate != nil {
		due := *dueDate
		o.dueDate = &due
		return
	}
	o.dueDate = nil
}
