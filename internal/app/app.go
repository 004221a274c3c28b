package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/oryweaver/auction/internal/config"
	"github.com/oryweaver/auction/internal/handler"
	"github.com/oryweaver/auction/internal/middleware"
	"github.com/oryweaver/auction/internal/router"
	"github.com/oryweaver/auction/internal/scheduler"
	"github.com/oryweaver/auction/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	stores     Stores
	notifier   *Notifier
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"AuctionEngine",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initNotifier(); err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStore() error {
	if a.cfg.Store.InMemory() {
		a.log.Warn("using in-memory store, data is lost on restart")
		a.stores = MemoryStores()
		return nil
	}

	if err := Migrate(a.cfg.Postgres.DSN(), a.log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := OpenDB(a.cfg.Postgres)
	if err != nil {
		return err
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.stores = PostgresStores(db)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initNotifier() error {
	n, err := NewNotifier(context.Background(), a.cfg, a.stores, a.log)
	if err != nil {
		return err
	}
	a.notifier = n
	return nil
}

func (a *App) initServices() {
	clock := service.SystemClock{}
	engine := NewEngine(a.stores, a.notifier, clock, a.cfg.Engine, a.log)

	a.scheduler = scheduler.New(
		engine.Lifecycle,
		clock,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Catalog:   engine.Catalog,
		Bidding:   engine.Bidding,
		Capacity:  engine.Capacity,
		Reoffer:   engine.Reoffer,
		Lifecycle: engine.Lifecycle,
		Winners:   engine.Winners,
		Ledger:    engine.Ledger,
		Users:     engine.Users,
		Clock:     clock,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var bg sync.WaitGroup
	bg.Add(2)
	go func() {
		defer bg.Done()
		a.scheduler.Start(ctx)
	}()
	go func() {
		defer bg.Done()
		a.notifier.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	if err := a.shutdown(&bg); err != nil {
		return err
	}
	return runErr
}

func (a *App) shutdown(bg *sync.WaitGroup) error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// scheduler stops, dispatcher drains its queue
	bg.Wait()

	if err := a.notifier.Close(); err != nil {
		a.log.Error("nats drain failed", logger.String("error", err.Error()))
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
