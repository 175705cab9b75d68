package ports

import "context"

// Notifier sends one outbound message to a customer through the external
// messaging gateway.
//
// Implementations must be total: no panic escapes, every failure comes back
// as an error the coordinator can classify. An empty recipient or message is
// a silent no-op success, because there is nothing to send. Recipients are
// normalized to digits-only inside the implementation, so callers pass phone
// numbers exactly as stored.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}
