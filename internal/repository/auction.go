package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const auctionColumns = `id, title, year, phase,
	registration_open_at, catalog_publish_at, bidding_open_at, bidding_close_at,
	reoffer_open_at, reoffer_close_at, settlement_open_at, created_at, updated_at`

type AuctionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuctionRepo(db *dbpg.DB) *AuctionRepository {
	return &AuctionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanAuction(row rowScanner) (*domain.Auction, error) {
	var a domain.Auction
	b := &a.Boundaries
	err := row.Scan(
		&a.ID, &a.Title, &a.Year, &a.Phase,
		&b.RegistrationOpen, &b.CatalogPublish, &b.BiddingOpen, &b.BiddingClose,
		&b.ReofferOpen, &b.ReofferClose, &b.SettlementOpen, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuctionRepository) Create(ctx context.Context, a *domain.Auction) error {
	query := `INSERT INTO auctions (` + auctionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	b := a.Boundaries
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Title, a.Year, a.Phase,
		b.RegistrationOpen, b.CatalogPublish, b.BiddingOpen, b.BiddingClose,
		b.ReofferOpen, b.ReofferClose, b.SettlementOpen, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auction: %w", err)
	}

	return nil
}

func (r *AuctionRepository) GetByID(ctx context.Context, id string) (*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get auction: %w", domain.ErrStorageUnavailable, err)
	}

	a, err := scanAuction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("scan auction: %w", err)
	}

	return a, nil
}

func (r *AuctionRepository) ListActive(ctx context.Context) ([]*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + `
			  FROM auctions
			  WHERE phase <> $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PhaseSettlement)
	if err != nil {
		return nil, fmt.Errorf("%w: list auctions: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// CompareAndSwapPhase waits for item transactions holding the auction row
// FOR SHARE, then moves the phase only if nobody moved it first.
func (r *AuctionRepository) CompareAndSwapPhase(ctx context.Context, id string, from, to domain.Phase) (bool, error) {
	query := `UPDATE auctions
			  SET phase = $3, updated_at = now()
			  WHERE id = $1 AND phase = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("%w: update phase: %w", domain.ErrStorageUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	// ноль строк: либо фазу уже сдвинули, либо аукциона нет
	if _, err = r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *AuctionRepository) RegisterBidder(ctx context.Context, auctionID, userID string) error {
	query := `INSERT INTO registrations (auction_id, user_id, created_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (auction_id, user_id) DO NOTHING`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, auctionID, userID); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *AuctionRepository) ListBidders(ctx context.Context, auctionID string) ([]string, error) {
	query := `SELECT user_id FROM registrations
			  WHERE auction_id = $1
			  ORDER BY created_at, user_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list bidders: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan bidder: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
