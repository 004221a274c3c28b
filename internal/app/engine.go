package app

import (
	"database/sql"
	"fmt"

	"github.com/oryweaver/auction/internal/config"
	"github.com/oryweaver/auction/internal/repository"
	"github.com/oryweaver/auction/internal/repository/memory"
	"github.com/oryweaver/auction/internal/service"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/oryweaver/auction/migrations"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	_ "github.com/lib/pq"
)

// Stores is the Ledger Store seen through the service ports.
type Stores struct {
	Auctions ports.AuctionRepo
	Items    ports.ItemRepo
	Ledger   ports.LedgerRepo
	Users    ports.UserRepo
}

func PostgresStores(db *dbpg.DB) Stores {
	return Stores{
		Auctions: repository.NewAuctionRepo(db),
		Items:    repository.NewItemRepo(db),
		Ledger:   repository.NewLedgerRepo(db),
		Users:    repository.NewUserRepo(db),
	}
}

func MemoryStores() Stores {
	s := memory.New()
	return Stores{
		Auctions: s.Auctions(),
		Items:    s.Items(),
		Ledger:   s.Ledger(),
		Users:    s.Users(),
	}
}

// Engine groups the engine components over one store.
type Engine struct {
	Catalog   *service.AuctionService
	Users     *service.UserService
	Bidding   *service.BiddingService
	Capacity  *service.CapacityService
	Winners   *service.WinnerResolver
	Reoffer   *service.ReofferService
	Lifecycle *service.LifecycleService
	Ledger    *service.LedgerService
}

func NewEngine(st Stores, n ports.Notifier, clock ports.Clock, cfg config.EngineConfig, log logger.Logger) *Engine {
	winners := service.NewWinnerResolver(st.Auctions, st.Items, n, clock, log, cfg.ResolveConcurrency)
	reoffer := service.NewReofferService(st.Auctions, st.Items, n, clock, log)

	return &Engine{
		Catalog:   service.NewAuctionService(st.Auctions, st.Items, st.Users, clock, log),
		Users:     service.NewUserService(st.Users),
		Bidding:   service.NewBiddingService(st.Items, n, clock, log),
		Capacity:  service.NewCapacityService(st.Items, n, clock, log),
		Winners:   winners,
		Reoffer:   reoffer,
		Lifecycle: service.NewLifecycleService(st.Auctions, winners, reoffer, n, log),
		Ledger:    service.NewLedgerService(st.Ledger),
	}
}

func OpenDB(cfg config.PostgresConfig) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(dsn string, log logger.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
