package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// haltOnInvariant freezes the item when err reports a newly detected
// invariant violation. The error is returned unchanged.
func haltOnInvariant(ctx context.Context, items ports.ItemRepo, log logger.Logger, itemID string, err error) error {
	if err == nil || !errors.Is(err, domain.ErrInvariantViolation) || errors.Is(err, domain.ErrItemFrozen) {
		return err
	}

	log.LogAttrs(ctx, logger.ErrorLevel, "invariant violation detected, halting writes to item",
		logger.String("item_id", itemID),
		logger.String("error", err.Error()),
	)
	if ferr := items.Freeze(context.WithoutCancel(ctx), itemID, err.Error()); ferr != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to freeze item",
			logger.String("item_id", itemID),
			logger.String("error", ferr.Error()),
		)
	}
	return err
}

func newEvent(kind domain.EventKind, at time.Time) domain.Event {
	return domain.Event{ID: uuid.New().String(), Kind: kind, OccurredAt: at}
}
