package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const itemColumns = `id, auction_id, donor_id, title, kind, status,
	opening_min_price, increment, quantity_total, quantity_committed,
	frozen, frozen_reason, created_at, updated_at`

const listingColumns = `item_id, auction_id, title, participate, price,
	quantity_offered, quantity_remaining, opened_at`

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		it  domain.Item
		inc decimal.NullDecimal
	)
	err := row.Scan(
		&it.ID, &it.AuctionID, &it.DonorID, &it.Title, &it.Kind, &it.Status,
		&it.OpeningMinPrice, &inc, &it.QuantityTotal, &it.QuantityCommitted,
		&it.Frozen, &it.FrozenReason, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if inc.Valid {
		it.Increment = &inc.Decimal
	}
	return &it, nil
}

func scanListing(row rowScanner) (*domain.ReofferListing, error) {
	var l domain.ReofferListing
	err := row.Scan(
		&l.ItemID, &l.AuctionID, &l.Title, &l.Participate, &l.Price,
		&l.QuantityOffered, &l.QuantityRemaining, &l.OpenedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item, settings *domain.ReofferSettings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO items (` + itemColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query,
		item.ID, item.AuctionID, item.DonorID, item.Title, item.Kind, item.Status,
		item.OpeningMinPrice, decimal.NullDecimal{Decimal: deref(item.Increment), Valid: item.Increment != nil},
		item.QuantityTotal, item.QuantityCommitted,
		item.Frozen, item.FrozenReason, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	s := domain.DefaultReofferSettings(item.ID)
	if settings != nil {
		s = *settings
	}
	if err = saveSettings(ctx, tx, item.ID, &s); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get item: %w", domain.ErrStorageUnavailable, err)
	}

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return it, nil
}

func (r *ItemRepository) ListByAuction(ctx context.Context, auctionID string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE auction_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, it)
	}

	return res, rows.Err()
}

func (r *ItemRepository) GetSignup(ctx context.Context, id string) (*domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signups WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get signup: %w", domain.ErrStorageUnavailable, err)
	}

	var s domain.Signup
	if err = scanSignup(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("scan signup: %w", err)
	}

	return &s, nil
}

func (r *ItemRepository) ListListings(ctx context.Context, auctionID string) ([]*domain.ReofferListing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM reoffer_listings
			  WHERE auction_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("%w: list listings: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.ReofferListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

// Atomic locks the item row FOR UPDATE and its auction row FOR SHARE for the
// lifetime of fn. Writes to one item queue behind each other, and a phase
// change waits until every in-flight item transaction has finished.
func (r *ItemRepository) Atomic(ctx context.Context, itemID string, fn func(tx ports.ItemTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", domain.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	item, err := scanItem(tx.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("%w: lock item: %w", domain.ErrStorageUnavailable, err)
	}

	auction, err := scanAuction(tx.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auctions WHERE id = $1 FOR SHARE`, item.AuctionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAuctionNotFound
		}
		return fmt.Errorf("%w: lock auction: %w", domain.ErrStorageUnavailable, err)
	}

	if err = fn(&itemTx{tx: tx, auction: auction, item: item}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *ItemRepository) Freeze(ctx context.Context, itemID, reason string) error {
	return r.setFrozen(ctx, itemID, true, reason)
}

func (r *ItemRepository) Unfreeze(ctx context.Context, itemID string) error {
	return r.setFrozen(ctx, itemID, false, "")
}

func (r *ItemRepository) setFrozen(ctx context.Context, itemID string, frozen bool, reason string) error {
	query := `UPDATE items
			  SET frozen = $2, frozen_reason = $3, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, itemID, frozen, reason)
	if err != nil {
		return fmt.Errorf("%w: update item: %w", domain.ErrStorageUnavailable, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func saveSettings(ctx context.Context, tx *sql.Tx, itemID string, s *domain.ReofferSettings) error {
	query := `INSERT INTO reoffer_settings (item_id, participate, price, quantity_override, allow_below_min)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (item_id) DO UPDATE
			  SET participate = EXCLUDED.participate,
			      price = EXCLUDED.price,
			      quantity_override = EXCLUDED.quantity_override,
			      allow_below_min = EXCLUDED.allow_below_min`

	override := sql.NullInt64{}
	if s.QuantityOverride != nil {
		override = sql.NullInt64{Int64: int64(*s.QuantityOverride), Valid: true}
	}
	_, err := tx.ExecContext(
		ctx, query, itemID, s.Participate,
		decimal.NullDecimal{Decimal: deref(s.Price), Valid: s.Price != nil},
		override, s.AllowBelowMin,
	)
	if err != nil {
		return fmt.Errorf("save reoffer settings: %w", err)
	}
	return nil
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
