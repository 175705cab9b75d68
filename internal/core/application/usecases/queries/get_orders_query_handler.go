package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servis/internal/core/domain/model/kernel"
)

const shortIDLength = 8

// GetOrdersQueryHandler reads the order list projection from the database.
// The same joined shape feeds the working set; this handler exists for the
// HTTP read path and server-side search.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first; a search term
// matches case-insensitively against customer name and phone, device brand,
// model and IMEI, and the problem description.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.created_at,
			o.status,
			o.problem,
			o.due_date,
			c.name,
			c.phone,
			d.brand,
			d.model,
			d.imei
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN devices d ON d.id = o.device_id
	`
	const searchFilter = `
		WHERE c.name ILIKE @term
			OR c.phone ILIKE @term
			OR d.brand ILIKE @term
			OR d.model ILIKE @term
			OR d.imei ILIKE @term
			OR o.problem ILIKE @term
	`
	const ordering = ` ORDER BY o.created_at DESC`

	tx := h.db.WithContext(ctx)
	var rows *sql.Rows
	var err error
	if term := query.Search(); term != "" {
		rows, err = tx.Raw(baseQuery+searchFilter+ordering,
			sql.Named("term", "%"+term+"%")).Rows()
	} else {
		rows, err = tx.Raw(baseQuery + ordering).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var dueDate sql.NullTime
		var resp GetOrdersQueryResponse

		err = rows.Scan(
			&id,
			&resp.CreatedAt,
			&resp.Status,
			&resp.Problem,
			&dueDate,
			&resp.Customer.Name,
			&resp.Customer.Phone,
			&resp.Device.Brand,
			&resp.Device.Model,
			&resp.Device.IMEI,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.ShortID = shortID(orderID)
		if dueDate.Valid {
			due := dueDate.Time
			resp.DueDate = &due
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func shortID(id kernel.UUID) string {
	s := id.String()
	return s[len(s)-shortIDLength:]
}
