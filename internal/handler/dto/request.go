package dto

import "github.com/shopspring/decimal"

type CreateAuctionRequest struct {
	Title            string `json:"title" binding:"required"`
	Year             int    `json:"year" binding:"required,gt=0"`
	RegistrationOpen string `json:"registration_open_at" binding:"required"`
	CatalogPublish   string `json:"catalog_publish_at" binding:"required"`
	BiddingOpen      string `json:"bidding_open_at" binding:"required"`
	BiddingClose     string `json:"bidding_close_at" binding:"required"`
	ReofferOpen      string `json:"reoffer_open_at" binding:"required"`
	ReofferClose     string `json:"reoffer_close_at" binding:"required"`
	SettlementOpen   string `json:"settlement_open_at" binding:"required"`
}

type CreateItemRequest struct {
	DonorID         string                  `json:"donor_id" binding:"required,uuid"`
	Title           string                  `json:"title" binding:"required"`
	Kind            string                  `json:"kind" binding:"required,oneof=competitive fixed_price_event fixed_price_item service"`
	OpeningMinPrice *decimal.Decimal        `json:"opening_min_price" binding:"required"`
	Increment       *decimal.Decimal        `json:"increment"`
	QuantityTotal   int                     `json:"quantity_total" binding:"required,gt=0"`
	Publish         bool                    `json:"publish"`
	Reoffer         *ReofferSettingsRequest `json:"reoffer"`
}

type ReofferSettingsRequest struct {
	Participate      bool             `json:"participate"`
	Price            *decimal.Decimal `json:"price"`
	QuantityOverride *int             `json:"quantity_override"`
	AllowBelowMin    bool             `json:"allow_below_min"`
}

type RegisterBidderRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type PlaceBidRequest struct {
	BidderID       string           `json:"bidder_id" binding:"required,uuid"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	MaxProxyAmount *decimal.Decimal `json:"max_proxy_amount"`
	IdempotencyKey string           `json:"idempotency_key" binding:"max=128"`
}

type SignupRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type AdjustSignupRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type AttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed attended no_show"`
}

type BuyRequest struct {
	UserID         string `json:"user_id" binding:"required,uuid"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key" binding:"max=128"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
