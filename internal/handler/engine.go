package handler

import (
	"net/http"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Bidding

func (h *Handler) PlaceBid(c *ginext.Context) {
	itemID, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.bidding.PlaceBid(c.Request.Context(), domain.PlaceBidInput{
		ItemID:         itemID,
		BidderID:       req.BidderID,
		Amount:         *req.Amount,
		MaxProxyAmount: req.MaxProxyAmount,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToBidResponse(res))
}

func (h *Handler) GetStanding(c *ginext.Context) {
	itemID, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	st, err := h.bidding.Standing(c.Request.Context(), itemID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStandingResponse(st))
}

// Signups

func (h *Handler) Signup(c *ginext.Context) {
	itemID, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	su, err := h.capacity.Signup(c.Request.Context(), itemID, req.UserID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(su))
}

func (h *Handler) CancelSignup(c *ginext.Context) {
	id, ok := pathID(c, "id", "signup")
	if !ok {
		return
	}

	su, err := h.capacity.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupResponse(su))
}

func (h *Handler) AdjustSignup(c *ginext.Context) {
	id, ok := pathID(c, "id", "signup")
	if !ok {
		return
	}

	var req dto.AdjustSignupRequest
	if !bindJSON(c, &req) {
		return
	}

	su, err := h.capacity.Adjust(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupResponse(su))
}

func (h *Handler) MarkAttendance(c *ginext.Context) {
	id, ok := pathID(c, "id", "signup")
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	su, err := h.capacity.MarkAttendance(c.Request.Context(), id, domain.SignupStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupResponse(su))
}

// Reoffer

func (h *Handler) ListReoffer(c *ginext.Context) {
	auctionID, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	listings, err := h.reoffer.Listings(c.Request.Context(), auctionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BuyReoffer(c *ginext.Context) {
	itemID, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	var req dto.BuyRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.reoffer.Buy(c.Request.Context(), domain.BuyInput{
		ItemID:         itemID,
		UserID:         req.UserID,
		Quantity:       req.Quantity,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToBuyResponse(res))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Ledger

func (h *Handler) GetCommitments(c *ginext.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	st, err := h.ledger.Commitments(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(st))
}

func (h *Handler) GetSales(c *ginext.Context) {
	donorID, ok := pathID(c, "id", "donor")
	if !ok {
		return
	}

	st, err := h.ledger.Sales(c.Request.Context(), donorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(st))
}
