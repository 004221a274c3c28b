package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrSignupNotFound  = errors.New("signup not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidAmount   = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrWrongItemKind   = fmt.Errorf("%w: operation not supported for item kind", ErrValidation)
	ErrUsernameTaken   = errors.New("username is already taken")
)

var (
	ErrPhaseViolation   = errors.New("operation not allowed in current auction phase")
	ErrItemNotPublished = fmt.Errorf("%w: item is not published", ErrPhaseViolation)
)

var (
	ErrConflict            = errors.New("conflict")
	ErrSoldOut             = fmt.Errorf("%w: sold out", ErrConflict)
	ErrNotOffered          = fmt.Errorf("%w: item is not offered for reoffer", ErrConflict)
	ErrSignupNotCancelable = fmt.Errorf("%w: signup can no longer be changed", ErrConflict)
)

var (
	ErrStorageUnavailable = errors.New("ledger store unavailable")
	ErrResolutionPending  = errors.New("winner resolution incomplete")
)

var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrItemFrozen         = fmt.Errorf("%w: item frozen pending manual intervention", ErrInvariantViolation)
)
