package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CapacityService sells capacity-bound items through signups and keeps the
// FIFO waitlist moving as seats free up.
type CapacityService struct {
	items    ports.ItemRepo
	notifier ports.Notifier
	clock    ports.Clock
	logger   logger.Logger
}

func NewCapacityService(
	items ports.ItemRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *CapacityService {
	return &CapacityService{
		items:    items,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Signup takes seats when they are free and joins the waitlist otherwise.
// A user holds at most one live signup per item; asking again returns it.
func (s *CapacityService) Signup(ctx context.Context, itemID, userID string, quantity int) (*domain.Signup, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	var (
		out     *domain.Signup
		existed bool
	)
	err := s.items.Atomic(ctx, itemID, func(tx ports.ItemTx) error {
		now := s.clock.Now()
		item := tx.Item()
		if !item.Kind.CapacityBound() {
			return domain.ErrWrongItemKind
		}
		if err := item.WritableErr(); err != nil {
			return err
		}
		if err := item.CheckInvariant(); err != nil {
			return err
		}
		if !tx.Auction().AcceptsSignups(now) {
			return fmt.Errorf("%w: signups are closed", domain.ErrPhaseViolation)
		}

		signups, err := tx.Signups(ctx)
		if err != nil {
			return fmt.Errorf("load signups: %w", err)
		}
		for i := range signups {
			if signups[i].UserID == userID && signups[i].Status != domain.SignupStatusCanceled {
				out, existed = &signups[i], true
				return nil
			}
		}

		su := &domain.Signup{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			UserID:    userID,
			Quantity:  quantity,
			Status:    domain.SignupStatusWaitlisted,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if item.Remaining() >= quantity {
			committed, err := item.CommittedAfter(quantity)
			if err != nil {
				return err
			}
			if err = tx.SetCommitted(ctx, committed); err != nil {
				return fmt.Errorf("set committed: %w", err)
			}
			su.Status = domain.SignupStatusActive
		}
		if err = tx.InsertSignup(ctx, su); err != nil {
			return fmt.Errorf("insert signup: %w", err)
		}
		out = su
		return nil
	})
	if err != nil {
		return nil, haltOnInvariant(ctx, s.items, s.logger, itemID, err)
	}

	if !existed {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "signup created",
			logger.String("signup_id", out.ID),
			logger.String("item_id", itemID),
			logger.String("user_id", userID),
			logger.Int("quantity", quantity),
			logger.String("status", string(out.Status)),
		)
	}
	return out, nil
}

// Cancel releases the signup's seats and promotes waitlisted entries that
// now fit. Canceling twice is a no-op.
func (s *CapacityService) Cancel(ctx context.Context, signupID string) (*domain.Signup, error) {
	return s.mutate(ctx, signupID, "signup canceled", true, func(tx ports.ItemTx, su *domain.Signup, now time.Time) ([]domain.Signup, error) {
		switch su.Status {
		case domain.SignupStatusWaitlisted:
			su.Status = domain.SignupStatusCanceled
			su.UpdatedAt = now
			return nil, tx.UpdateSignup(ctx, su)
		case domain.SignupStatusActive, domain.SignupStatusConfirmed:
		default:
			return nil, domain.ErrSignupNotCancelable
		}

		if err := s.release(ctx, tx, su.Quantity); err != nil {
			return nil, err
		}
		su.Status = domain.SignupStatusCanceled
		su.UpdatedAt = now
		if err := tx.UpdateSignup(ctx, su); err != nil {
			return nil, fmt.Errorf("update signup: %w", err)
		}
		return promoteWaitlist(ctx, tx, now)
	})
}

// Adjust changes the seat count of a live signup. Growing needs free seats;
// shrinking frees seats for the waitlist.
func (s *CapacityService) Adjust(ctx context.Context, signupID string, quantity int) (*domain.Signup, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.mutate(ctx, signupID, "signup adjusted", false, func(tx ports.ItemTx, su *domain.Signup, now time.Time) ([]domain.Signup, error) {
		switch su.Status {
		case domain.SignupStatusWaitlisted:
			su.Quantity = quantity
			su.UpdatedAt = now
			return nil, tx.UpdateSignup(ctx, su)
		case domain.SignupStatusActive, domain.SignupStatusConfirmed:
		default:
			return nil, domain.ErrSignupNotCancelable
		}

		delta := quantity - su.Quantity
		if delta == 0 {
			return nil, nil
		}
		item := tx.Item()
		if delta > 0 && item.Remaining() < delta {
			return nil, fmt.Errorf("%w: only %d seats left", domain.ErrSoldOut, item.Remaining())
		}
		committed, err := item.CommittedAfter(delta)
		if err != nil {
			return nil, err
		}
		if err = tx.SetCommitted(ctx, committed); err != nil {
			return nil, fmt.Errorf("set committed: %w", err)
		}
		su.Quantity = quantity
		su.UpdatedAt = now
		if err = tx.UpdateSignup(ctx, su); err != nil {
			return nil, fmt.Errorf("update signup: %w", err)
		}
		if delta < 0 {
			return promoteWaitlist(ctx, tx, now)
		}
		return nil, nil
	})
}

// MarkAttendance records check-in results for a seat-holding signup. Seats
// stay committed whatever the outcome.
func (s *CapacityService) MarkAttendance(ctx context.Context, signupID string, status domain.SignupStatus) (*domain.Signup, error) {
	switch status {
	case domain.SignupStatusConfirmed, domain.SignupStatusAttended, domain.SignupStatusNoShow:
	default:
		return nil, fmt.Errorf("%w: unsupported attendance status %q", domain.ErrValidation, status)
	}

	su, err := s.items.GetSignup(ctx, signupID)
	if err != nil {
		return nil, err
	}

	var out *domain.Signup
	err = s.items.Atomic(ctx, su.ItemID, func(tx ports.ItemTx) error {
		cur, err := findSignup(ctx, tx, signupID)
		if err != nil {
			return err
		}
		if tx.Item().Frozen {
			return fmt.Errorf("%w: %s", domain.ErrItemFrozen, tx.Item().FrozenReason)
		}
		if tx.Auction().Phase.Before(domain.PhaseRegistration) {
			return fmt.Errorf("%w: auction is not open", domain.ErrPhaseViolation)
		}
		if !cur.Status.HoldsCapacity() {
			return domain.ErrSignupNotCancelable
		}
		cur.Status = status
		cur.UpdatedAt = s.clock.Now()
		if err = tx.UpdateSignup(ctx, cur); err != nil {
			return fmt.Errorf("update signup: %w", err)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type signupMutation func(tx ports.ItemTx, su *domain.Signup, now time.Time) ([]domain.Signup, error)

// mutate locks the signup's item, applies fn and notifies promoted users.
// With cancel set an already canceled signup is returned untouched.
func (s *CapacityService) mutate(ctx context.Context, signupID, msg string, cancel bool, fn signupMutation) (*domain.Signup, error) {
	su, err := s.items.GetSignup(ctx, signupID)
	if err != nil {
		return nil, err
	}

	var (
		out      *domain.Signup
		promoted []domain.Signup
		auction  string
	)
	err = s.items.Atomic(ctx, su.ItemID, func(tx ports.ItemTx) error {
		cur, err := findSignup(ctx, tx, signupID)
		if err != nil {
			return err
		}
		if cancel && cur.Status == domain.SignupStatusCanceled {
			out = cur
			return nil
		}
		now := s.clock.Now()
		item := tx.Item()
		if item.Frozen {
			return fmt.Errorf("%w: %s", domain.ErrItemFrozen, item.FrozenReason)
		}
		if err = item.CheckInvariant(); err != nil {
			return err
		}
		if !tx.Auction().AcceptsSignups(now) {
			return fmt.Errorf("%w: signups are closed", domain.ErrPhaseViolation)
		}

		promoted, err = fn(tx, cur, now)
		if err != nil {
			return err
		}
		out, auction = cur, item.AuctionID
		return nil
	})
	if err != nil {
		return nil, haltOnInvariant(ctx, s.items, s.logger, su.ItemID, err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, msg,
		logger.String("signup_id", out.ID),
		logger.String("item_id", out.ItemID),
		logger.String("status", string(out.Status)),
		logger.Int("promoted", len(promoted)),
	)
	for _, p := range promoted {
		ev := newEvent(domain.EventWaitlistPromoted, p.UpdatedAt)
		ev.AuctionID = auction
		ev.ItemID = p.ItemID
		ev.UserID = p.UserID
		ev.Quantity = p.Quantity
		s.notifier.Notify(ctx, ev)
	}
	return out, nil
}

func (s *CapacityService) release(ctx context.Context, tx ports.ItemTx, quantity int) error {
	committed, err := tx.Item().CommittedAfter(-quantity)
	if err != nil {
		return err
	}
	if err = tx.SetCommitted(ctx, committed); err != nil {
		return fmt.Errorf("set committed: %w", err)
	}
	return nil
}

// promoteWaitlist activates waitlisted signups in FIFO order while seats
// remain. An entry larger than the free seats is skipped, not blocking the
// ones behind it.
func promoteWaitlist(ctx context.Context, tx ports.ItemTx, now time.Time) ([]domain.Signup, error) {
	item := tx.Item()
	free := item.Remaining()
	if free <= 0 {
		return nil, nil
	}

	signups, err := tx.Signups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load signups: %w", err)
	}

	var (
		promoted []domain.Signup
		taken    int
	)
	for _, su := range signups {
		if free == 0 {
			break
		}
		if su.Status != domain.SignupStatusWaitlisted || su.Quantity > free {
			continue
		}
		su.Status = domain.SignupStatusActive
		su.UpdatedAt = now
		if err = tx.UpdateSignup(ctx, &su); err != nil {
			return nil, fmt.Errorf("promote signup: %w", err)
		}
		free -= su.Quantity
		taken += su.Quantity
		promoted = append(promoted, su)
	}
	if taken == 0 {
		return nil, nil
	}

	committed, err := item.CommittedAfter(taken)
	if err != nil {
		return nil, err
	}
	if err = tx.SetCommitted(ctx, committed); err != nil {
		return nil, fmt.Errorf("set committed: %w", err)
	}
	return promoted, nil
}

func findSignup(ctx context.Context, tx ports.ItemTx, id string) (*domain.Signup, error) {
	signups, err := tx.Signups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load signups: %w", err)
	}
	for i := range signups {
		if signups[i].ID == id {
			return &signups[i], nil
		}
	}
	return nil, domain.ErrSignupNotFound
}
