package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateAuction(ctx context.Context, input domain.CreateAuctionInput) (*domain.Auction, error)
	GetAuction(ctx context.Context, id string) (*domain.Auction, error)
	ListActive(ctx context.Context) ([]*domain.Auction, error)
	CreateItem(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, auctionID string) ([]*domain.Item, error)
	PublishItem(ctx context.Context, itemID string) (*domain.Item, error)
	ArchiveItem(ctx context.Context, itemID string) (*domain.Item, error)
	UnfreezeItem(ctx context.Context, itemID string) (*domain.Item, error)
	UpdateReofferSettings(ctx context.Context, settings domain.ReofferSettings) (*domain.ReofferSettings, error)
	RegisterBidder(ctx context.Context, auctionID, userID string) error
}

type BiddingSvc interface {
	PlaceBid(ctx context.Context, in domain.PlaceBidInput) (*domain.BidResult, error)
	Standing(ctx context.Context, itemID string) (*domain.Standing, error)
}

type CapacitySvc interface {
	Signup(ctx context.Context, itemID, userID string, quantity int) (*domain.Signup, error)
	Cancel(ctx context.Context, signupID string) (*domain.Signup, error)
	Adjust(ctx context.Context, signupID string, quantity int) (*domain.Signup, error)
	MarkAttendance(ctx context.Context, signupID string, status domain.SignupStatus) (*domain.Signup, error)
}

type ReofferSvc interface {
	Listings(ctx context.Context, auctionID string) ([]*domain.ReofferListing, error)
	Buy(ctx context.Context, in domain.BuyInput) (*domain.BuyResult, error)
}

type LifecycleSvc interface {
	Advance(ctx context.Context, auctionID string, now time.Time) ([]domain.PhaseChange, error)
}

type WinnerSvc interface {
	ResolveWinners(ctx context.Context, auctionID string) (*domain.ResolutionReport, error)
}

type LedgerSvc interface {
	Commitments(ctx context.Context, userID string) (*domain.Statement, error)
	Sales(ctx context.Context, donorID string) (*domain.Statement, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Clock interface {
	Now() time.Time
}

type Services struct {
	Catalog   CatalogSvc
	Bidding   BiddingSvc
	Capacity  CapacitySvc
	Reoffer   ReofferSvc
	Lifecycle LifecycleSvc
	Winners   WinnerSvc
	Ledger    LedgerSvc
	Users     UserSvc
	Clock     Clock
}

type Handler struct {
	catalog   CatalogSvc
	bidding   BiddingSvc
	capacity  CapacitySvc
	reoffer   ReofferSvc
	lifecycle LifecycleSvc
	winners   WinnerSvc
	ledger    LedgerSvc
	users     UserSvc
	clock     Clock
}

func NewHandler(s Services) *Handler {
	return &Handler{
		catalog:   s.Catalog,
		bidding:   s.Bidding,
		capacity:  s.Capacity,
		reoffer:   s.Reoffer,
		lifecycle: s.Lifecycle,
		winners:   s.Winners,
		ledger:    s.Ledger,
		users:     s.Users,
		clock:     s.Clock,
	}
}

// pathID reads a uuid path parameter and answers 400 itself when it is not one.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id", Code: "invalid_request"})
		return "", false
	}
	return id, true
}

func bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return false
	}
	return true
}

// idempotencyKey prefers the body field and falls back to the header.
func idempotencyKey(c *ginext.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.GetHeader("Idempotency-Key")
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAuctionNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrSignupNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})

	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "invalid_amount"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "invalid_request"})

	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "username_taken"})

	case errors.Is(err, domain.ErrPhaseViolation):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "closed_phase"})

	case errors.Is(err, domain.ErrSoldOut):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "sold_out"})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "conflict"})

	case errors.Is(err, domain.ErrResolutionPending):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error(), Code: "resolution_pending"})

	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable, retry with the same idempotency key", Code: "transient_storage"})

	case errors.Is(err, domain.ErrInvariantViolation):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: "invariant_violation"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "internal"})
	}
}
