package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Auctions

func (h *Handler) CreateAuction(c *ginext.Context) {
	var req dto.CreateAuctionRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := parseBoundaries(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid boundary format, expected RFC3339",
			Code:  "invalid_request",
		})
		return
	}

	a, err := h.catalog.CreateAuction(c.Request.Context(), domain.CreateAuctionInput{
		Title:      req.Title,
		Year:       req.Year,
		Boundaries: b,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuctionResponse(a))
}

func parseBoundaries(req dto.CreateAuctionRequest) (domain.Boundaries, error) {
	var b domain.Boundaries
	fields := []struct {
		raw string
		dst *time.Time
	}{
		{req.RegistrationOpen, &b.RegistrationOpen},
		{req.CatalogPublish, &b.CatalogPublish},
		{req.BiddingOpen, &b.BiddingOpen},
		{req.BiddingClose, &b.BiddingClose},
		{req.ReofferOpen, &b.ReofferOpen},
		{req.ReofferClose, &b.ReofferClose},
		{req.SettlementOpen, &b.SettlementOpen},
	}
	for _, f := range fields {
		t, err := time.Parse(time.RFC3339, f.raw)
		if err != nil {
			return b, err
		}
		*f.dst = t.UTC()
	}
	return b, nil
}

func (h *Handler) GetAuction(c *ginext.Context) {
	id, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	a, err := h.catalog.GetAuction(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuctionResponse(a))
}

func (h *Handler) ListAuctions(c *ginext.Context) {
	auctions, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, dto.ToAuctionResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterBidder(c *ginext.Context) {
	id, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	var req dto.RegisterBidderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.catalog.RegisterBidder(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "registered"})
}

func (h *Handler) TickAuction(c *ginext.Context) {
	id, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	changes, err := h.lifecycle.Advance(c.Request.Context(), id, h.clock.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTickResponse(id, changes))
}

func (h *Handler) ResolveWinners(c *ginext.Context) {
	id, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	report, err := h.winners.ResolveWinners(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResolutionResponse(report))
}

// Items

func (h *Handler) CreateItem(c *ginext.Context) {
	auctionID, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateItemInput{
		AuctionID:       auctionID,
		DonorID:         req.DonorID,
		Title:           req.Title,
		Kind:            domain.ItemKind(req.Kind),
		OpeningMinPrice: *req.OpeningMinPrice,
		Increment:       req.Increment,
		QuantityTotal:   req.QuantityTotal,
		Publish:         req.Publish,
	}
	if req.Reoffer != nil {
		s := reofferSettings("", req.Reoffer)
		input.Reoffer = &s
	}

	item, err := h.catalog.CreateItem(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func reofferSettings(itemID string, req *dto.ReofferSettingsRequest) domain.ReofferSettings {
	return domain.ReofferSettings{
		ItemID:           itemID,
		Participate:      req.Participate,
		Price:            req.Price,
		QuantityOverride: req.QuantityOverride,
		AllowBelowMin:    req.AllowBelowMin,
	}
}

func (h *Handler) ListItems(c *ginext.Context) {
	auctionID, ok := pathID(c, "id", "auction")
	if !ok {
		return
	}

	items, err := h.catalog.ListItems(c.Request.Context(), auctionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetItem(c *ginext.Context) {
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) PublishItem(c *ginext.Context) {
	h.itemAction(c, h.catalog.PublishItem)
}

func (h *Handler) ArchiveItem(c *ginext.Context) {
	h.itemAction(c, h.catalog.ArchiveItem)
}

func (h *Handler) UnfreezeItem(c *ginext.Context) {
	h.itemAction(c, h.catalog.UnfreezeItem)
}

func (h *Handler) itemAction(c *ginext.Context, action func(ctx context.Context, id string) (*domain.Item, error)) {
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	item, err := action(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) UpdateReofferSettings(c *ginext.Context) {
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	var req dto.ReofferSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.catalog.UpdateReofferSettings(c.Request.Context(), reofferSettings(id, &req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReofferSettingsResponse(s))
}
