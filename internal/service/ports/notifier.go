package ports

import (
	"context"

	"github.com/oryweaver/auction/internal/domain"
)

// Notifier accepts outbound events without blocking the caller. Delivery
// failures are the notifier's concern and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, ev domain.Event)
}
