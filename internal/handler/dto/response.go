package dto

import (
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Year             int    `json:"year"`
	Phase            string `json:"phase"`
	RegistrationOpen string `json:"registration_open_at"`
	CatalogPublish   string `json:"catalog_publish_at"`
	BiddingOpen      string `json:"bidding_open_at"`
	BiddingClose     string `json:"bidding_close_at"`
	ReofferOpen      string `json:"reoffer_open_at"`
	ReofferClose     string `json:"reoffer_close_at"`
	SettlementOpen   string `json:"settlement_open_at"`
	CreatedAt        string `json:"created_at"`
}

type ItemResponse struct {
	ID                string  `json:"id"`
	AuctionID         string  `json:"auction_id"`
	DonorID           string  `json:"donor_id"`
	Title             string  `json:"title"`
	Kind              string  `json:"kind"`
	Status            string  `json:"status"`
	OpeningMinPrice   string  `json:"opening_min_price"`
	Increment         *string `json:"increment,omitempty"`
	QuantityTotal     int     `json:"quantity_total"`
	QuantityCommitted int     `json:"quantity_committed"`
	Frozen            bool    `json:"frozen"`
	FrozenReason      string  `json:"frozen_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type ReofferSettingsResponse struct {
	ItemID           string  `json:"item_id"`
	Participate      bool    `json:"participate"`
	Price            *string `json:"price,omitempty"`
	QuantityOverride *int    `json:"quantity_override,omitempty"`
	AllowBelowMin    bool    `json:"allow_below_min"`
}

type BidResponse struct {
	BidID        string `json:"bid_id"`
	Leading      bool   `json:"leading"`
	CurrentPrice string `json:"current_price"`
	Replayed     bool   `json:"replayed"`
}

type StandingResponse struct {
	ItemID       string `json:"item_id"`
	Leader       string `json:"leader,omitempty"`
	CurrentPrice string `json:"current_price"`
	BidderCount  int    `json:"bidder_count"`
	MinNextBid   string `json:"min_next_bid"`
}

type SignupResponse struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	UserID    string `json:"user_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ListingResponse struct {
	ItemID            string `json:"item_id"`
	Title             string `json:"title"`
	Price             string `json:"price"`
	QuantityRemaining int    `json:"quantity_remaining"`
}

type BuyResponse struct {
	CommitmentID      string `json:"commitment_id"`
	PriceEach         string `json:"price_each"`
	QuantityRemaining int    `json:"quantity_remaining"`
	Replayed          bool   `json:"replayed"`
}

type WinnerResponse struct {
	ItemID   string `json:"item_id"`
	BidderID string `json:"bidder_id"`
	Amount   string `json:"amount"`
}

type ResolutionResponse struct {
	AuctionID string           `json:"auction_id"`
	Winners   []WinnerResponse `json:"winners"`
	NoBids    []string         `json:"no_bids"`
	Failed    []string         `json:"failed"`
}

type PhaseChangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	At   string `json:"at"`
}

type TickResponse struct {
	AuctionID string                `json:"auction_id"`
	Changed   bool                  `json:"changed"`
	Changes   []PhaseChangeResponse `json:"changes"`
}

type CommitmentResponse struct {
	ID        string `json:"id"`
	AuctionID string `json:"auction_id"`
	ItemID    string `json:"item_id"`
	DonorID   string `json:"donor_id"`
	UserID    string `json:"user_id"`
	Quantity  int    `json:"quantity"`
	Amount    string `json:"amount"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}

type StatementResponse struct {
	OwnerID string               `json:"owner_id"`
	Lines   []CommitmentResponse `json:"lines"`
	Total   string               `json:"total"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

func ToAuctionResponse(a *domain.Auction) AuctionResponse {
	b := a.Boundaries
	return AuctionResponse{
		ID:               a.ID,
		Title:            a.Title,
		Year:             a.Year,
		Phase:            string(a.Phase),
		RegistrationOpen: b.RegistrationOpen.Format(time.RFC3339),
		CatalogPublish:   b.CatalogPublish.Format(time.RFC3339),
		BiddingOpen:      b.BiddingOpen.Format(time.RFC3339),
		BiddingClose:     b.BiddingClose.Format(time.RFC3339),
		ReofferOpen:      b.ReofferOpen.Format(time.RFC3339),
		ReofferClose:     b.ReofferClose.Format(time.RFC3339),
		SettlementOpen:   b.SettlementOpen.Format(time.RFC3339),
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}

func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		AuctionID:         it.AuctionID,
		DonorID:           it.DonorID,
		Title:             it.Title,
		Kind:              string(it.Kind),
		Status:            string(it.Status),
		OpeningMinPrice:   money(it.OpeningMinPrice),
		Increment:         optMoney(it.Increment),
		QuantityTotal:     it.QuantityTotal,
		QuantityCommitted: it.QuantityCommitted,
		Frozen:            it.Frozen,
		FrozenReason:      it.FrozenReason,
		CreatedAt:         it.CreatedAt.Format(time.RFC3339),
	}
}

func ToReofferSettingsResponse(s *domain.ReofferSettings) ReofferSettingsResponse {
	return ReofferSettingsResponse{
		ItemID:           s.ItemID,
		Participate:      s.Participate,
		Price:            optMoney(s.Price),
		QuantityOverride: s.QuantityOverride,
		AllowBelowMin:    s.AllowBelowMin,
	}
}

func ToBidResponse(r *domain.BidResult) BidResponse {
	return BidResponse{
		BidID:        r.BidID,
		Leading:      r.Leading,
		CurrentPrice: money(r.CurrentPrice),
		Replayed:     r.Replayed,
	}
}

func ToStandingResponse(s *domain.Standing) StandingResponse {
	return StandingResponse{
		ItemID:       s.ItemID,
		Leader:       s.Leader,
		CurrentPrice: money(s.CurrentPrice),
		BidderCount:  s.BidderCount,
		MinNextBid:   money(s.MinNextBid),
	}
}

func ToSignupResponse(s *domain.Signup) SignupResponse {
	return SignupResponse{
		ID:        s.ID,
		ItemID:    s.ItemID,
		UserID:    s.UserID,
		Quantity:  s.Quantity,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingResponse(l *domain.ReofferListing) ListingResponse {
	return ListingResponse{
		ItemID:            l.ItemID,
		Title:             l.Title,
		Price:             money(l.Price),
		QuantityRemaining: l.QuantityRemaining,
	}
}

func ToBuyResponse(r *domain.BuyResult) BuyResponse {
	return BuyResponse{
		CommitmentID:      r.CommitmentID,
		PriceEach:         money(r.PriceEach),
		QuantityRemaining: r.QuantityRemaining,
		Replayed:          r.Replayed,
	}
}

func ToResolutionResponse(r *domain.ResolutionReport) ResolutionResponse {
	winners := make([]WinnerResponse, 0, len(r.Winners))
	for _, w := range r.Winners {
		winners = append(winners, WinnerResponse{
			ItemID:   w.ItemID,
			BidderID: w.BidderID,
			Amount:   money(w.Amount),
		})
	}

	return ResolutionResponse{
		AuctionID: r.AuctionID,
		Winners:   winners,
		NoBids:    append([]string{}, r.NoBids...),
		Failed:    append([]string{}, r.Failed...),
	}
}

func ToTickResponse(auctionID string, changes []domain.PhaseChange) TickResponse {
	resp := TickResponse{
		AuctionID: auctionID,
		Changed:   len(changes) > 0,
		Changes:   make([]PhaseChangeResponse, 0, len(changes)),
	}
	for _, c := range changes {
		resp.Changes = append(resp.Changes, PhaseChangeResponse{
			From: string(c.From),
			To:   string(c.To),
			At:   c.At.Format(time.RFC3339),
		})
	}
	return resp
}

func ToStatementResponse(s *domain.Statement) StatementResponse {
	lines := make([]CommitmentResponse, 0, len(s.Lines))
	for _, c := range s.Lines {
		lines = append(lines, CommitmentResponse{
			ID:        c.ID,
			AuctionID: c.AuctionID,
			ItemID:    c.ItemID,
			DonorID:   c.DonorID,
			UserID:    c.UserID,
			Quantity:  c.Quantity,
			Amount:    money(c.Amount),
			Source:    string(c.Source),
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}

	return StatementResponse{
		OwnerID: s.OwnerID,
		Lines:   lines,
		Total:   money(s.Total),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
