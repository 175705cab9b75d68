package commands

import (
	"time"

	"servis/internal/core/domain/model/order"
	"servis/internal/core/domain/services"
)

const (
	// dueDateLayout is how promised completion dates appear in messages.
	dueDateLayout = "02.01.2006"
	// dueDateFallback is the word sent when no completion date was promised.
	dueDateFallback = "uskoro"
)

func formatDueDate(due *time.Time) string {
	if due == nil {
		return dueDateFallback
	}
	return due.Format(dueDateLayout)
}

// buildMessageContext captures the order's notification values at the moment
// of a transition. The status is passed separately so the context can be
// assembled before the transition is applied.
func buildMessageContext(o *order.Order, status order.Status) services.MessageContext {
	return services.MessageContext{
		Name:    o.Customer().Name(),
		Brand:   o.Device().Brand(),
		Model:   o.Device().Model(),
		IMEI:    o.Device().IMEI(),
		DueDate: formatDueDate(o.DueDate()),
		Problem: o.Problem(),
		Status:  status.String(),
		OrderID: o.ShortID(),
	}
}
