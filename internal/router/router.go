package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateAuction(c *ginext.Context)
	ListAuctions(c *ginext.Context)
	GetAuction(c *ginext.Context)
	RegisterBidder(c *ginext.Context)
	TickAuction(c *ginext.Context)
	ResolveWinners(c *ginext.Context)
	ListReoffer(c *ginext.Context)

	CreateItem(c *ginext.Context)
	ListItems(c *ginext.Context)
	GetItem(c *ginext.Context)
	PublishItem(c *ginext.Context)
	ArchiveItem(c *ginext.Context)
	UnfreezeItem(c *ginext.Context)
	UpdateReofferSettings(c *ginext.Context)

	PlaceBid(c *ginext.Context)
	GetStanding(c *ginext.Context)
	BuyReoffer(c *ginext.Context)

	Signup(c *ginext.Context)
	CancelSignup(c *ginext.Context)
	AdjustSignup(c *ginext.Context)
	MarkAttendance(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetCommitments(c *ginext.Context)
	GetSales(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auctions
		api.POST("/auctions", h.CreateAuction)
		api.GET("/auctions", h.ListAuctions)
		api.GET("/auctions/:id", h.GetAuction)
		api.POST("/auctions/:id/bidders", h.RegisterBidder)
		api.POST("/auctions/:id/tick", h.TickAuction)
		api.POST("/auctions/:id/resolve-winners", h.ResolveWinners)
		api.GET("/auctions/:id/reoffer", h.ListReoffer)

		// Items
		api.POST("/auctions/:id/items", h.CreateItem)
		api.GET("/auctions/:id/items", h.ListItems)
		api.GET("/items/:id", h.GetItem)
		api.POST("/items/:id/publish", h.PublishItem)
		api.POST("/items/:id/archive", h.ArchiveItem)
		api.POST("/items/:id/unfreeze", h.UnfreezeItem)
		api.POST("/items/:id/reoffer-settings", h.UpdateReofferSettings)

		// Bidding and reoffer
		api.POST("/items/:id/bids", h.PlaceBid)
		api.GET("/items/:id/standing", h.GetStanding)
		api.POST("/items/:id/buy", h.BuyReoffer)

		// Signups
		api.POST("/items/:id/signups", h.Signup)
		api.POST("/signups/:id/cancel", h.CancelSignup)
		api.POST("/signups/:id/adjust", h.AdjustSignup)
		api.POST("/signups/:id/attendance", h.MarkAttendance)

		// Users and ledger
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/commitments", h.GetCommitments)
		api.GET("/users/:id/sales", h.GetSales)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
