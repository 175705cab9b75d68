package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servis/internal/core/application/session"
	"servis/internal/core/domain/model/customer"
	"servis/internal/core/domain/model/device"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
	"servis/internal/core/domain/services"
	"servis/internal/pkg/errs"
)

// GetReceiptQueryHandler fetches one order with its customer and device and
// renders the plain-text pickup receipt, stamped with the current company
// name and the current date.
type GetReceiptQueryHandler struct {
	db        *gorm.DB
	templates *session.TemplateConfig
}

// NewGetReceiptQueryHandler creates a handler for receipt rendering.
func NewGetReceiptQueryHandler(db *gorm.DB, templates *session.TemplateConfig) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{db: db, templates: templates}
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// when the order does not exist.
func (h GetReceiptQueryHandler) Handle(ctx context.Context, query GetReceiptQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.created_at,
			o.status,
			o.problem,
			o.due_date,
			c.id,
			c.name,
			c.phone,
			d.id,
			d.brand,
			d.model,
			d.imei
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN devices d ON d.id = o.device_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var orderID, customerID, deviceID uuid.UUID
	var createdAt time.Time
	var status, problem, name, phone, brand, model, imei string
	var dueDate sql.NullTime

	err := row.Scan(
		&orderID, &createdAt, &status, &problem, &dueDate,
		&customerID, &name, &phone,
		&deviceID, &brand, &model, &imei,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return "", err
	}

	restored, err := restoreOrderRow(
		orderID, createdAt, status, problem, dueDate,
		customerID, name, phone,
		deviceID, brand, model, imei,
	)
	if err != nil {
		return "", err
	}

	return services.RenderReceipt(restored, h.templates.Company(), time.Now()), nil
}

func restoreOrderRow(
	orderID uuid.UUID, createdAt time.Time, status, problem string, dueDate sql.NullTime,
	customerID uuid.UUID, name, phone string,
	deviceID uuid.UUID, brand, model, imei string,
) (*order.Order, error) {
	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}
	cid, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	did, err := kernel.UUIDFromBytes(deviceID[:])
	if err != nil {
		return nil, err
	}

	cust, err := customer.RestoreCustomer(cid, name, phone)
	if err != nil {
		return nil, err
	}
	dev, err := device.RestoreDevice(did, brand, model, imei)
	if err != nil {
		return nil, err
	}

	var due *time.Time
	if dueDate.Valid {
		d := dueDate.Time
		due = &d
	}

	return order.RestoreOrder(oid, createdAt, order.Status(status), problem, due, cust, dev)
}
