package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/shopspring/decimal"
)

const bidColumns = `id, seq, item_id, bidder_id, amount, max_proxy_amount,
	idempotency_key, leading, price_after, created_at`

const signupColumns = `id, seq, item_id, user_id, quantity, status, created_at, updated_at`

const commitmentColumns = `id, auction_id, item_id, donor_id, user_id, quantity,
	amount, source, idempotency_key, remaining_after, created_at`

// itemTx runs every statement on the transaction opened by Atomic. The item
// and auction it hands out were read under lock and are kept in step with
// the writes.
type itemTx struct {
	tx      *sql.Tx
	auction *domain.Auction
	item    *domain.Item
}

func (t *itemTx) Auction() *domain.Auction { return t.auction }
func (t *itemTx) Item() *domain.Item       { return t.item }

func (t *itemTx) SetCommitted(ctx context.Context, committed int) error {
	now := time.Now().UTC()
	query := `UPDATE items SET quantity_committed = $2, updated_at = $3 WHERE id = $1`
	if _, err := t.tx.ExecContext(ctx, query, t.item.ID, committed, now); err != nil {
		return fmt.Errorf("update committed: %w", err)
	}
	t.item.QuantityCommitted = committed
	t.item.UpdatedAt = now
	return nil
}

func (t *itemTx) SetStatus(ctx context.Context, status domain.ItemStatus) error {
	now := time.Now().UTC()
	query := `UPDATE items SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := t.tx.ExecContext(ctx, query, t.item.ID, status, now); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	t.item.Status = status
	t.item.UpdatedAt = now
	return nil
}

func scanBid(row rowScanner) (*domain.Bid, error) {
	var (
		b       domain.Bid
		ceiling decimal.NullDecimal
		key     sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.Seq, &b.ItemID, &b.BidderID, &b.Amount, &ceiling,
		&key, &b.Leading, &b.PriceAfter, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ceiling.Valid {
		b.MaxProxyAmount = &ceiling.Decimal
	}
	b.IdempotencyKey = key.String
	return &b, nil
}

func (t *itemTx) Bids(ctx context.Context) ([]domain.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE item_id = $1 ORDER BY seq`

	rows, err := t.tx.QueryContext(ctx, query, t.item.ID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	var res []domain.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		res = append(res, *b)
	}

	return res, rows.Err()
}

func (t *itemTx) BidByKey(ctx context.Context, bidderID, key string) (*domain.Bid, error) {
	query := `SELECT ` + bidColumns + `
			  FROM bids
			  WHERE item_id = $1 AND bidder_id = $2 AND idempotency_key = $3`

	b, err := scanBid(t.tx.QueryRowContext(ctx, query, t.item.ID, bidderID, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid by key: %w", err)
	}
	return b, nil
}

func (t *itemTx) InsertBid(ctx context.Context, b *domain.Bid) error {
	query := `INSERT INTO bids (id, item_id, bidder_id, amount, max_proxy_amount,
			  	idempotency_key, leading, price_after, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING seq`

	ceiling := decimal.NullDecimal{Decimal: deref(b.MaxProxyAmount), Valid: b.MaxProxyAmount != nil}
	err := t.tx.QueryRowContext(
		ctx, query,
		b.ID, b.ItemID, b.BidderID, b.Amount, ceiling,
		nullString(b.IdempotencyKey), b.Leading, b.PriceAfter, b.CreatedAt,
	).Scan(&b.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate bid key", domain.ErrConflict)
		}
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

func (t *itemTx) Winner(ctx context.Context) (*domain.Winner, error) {
	query := `SELECT id, item_id, auction_id, bidder_id, amount, quantity, determined_at
			  FROM winners
			  WHERE item_id = $1`

	var w domain.Winner
	err := t.tx.QueryRowContext(ctx, query, t.item.ID).Scan(
		&w.ID, &w.ItemID, &w.AuctionID, &w.BidderID, &w.Amount, &w.Quantity, &w.DeterminedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get winner: %w", err)
	}
	return &w, nil
}

func (t *itemTx) InsertWinner(ctx context.Context, w *domain.Winner) error {
	query := `INSERT INTO winners (id, item_id, auction_id, bidder_id, amount, quantity, determined_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := t.tx.ExecContext(ctx, query,
		w.ID, w.ItemID, w.AuctionID, w.BidderID, w.Amount, w.Quantity, w.DeterminedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item already has a winner", domain.ErrConflict)
		}
		return fmt.Errorf("insert winner: %w", err)
	}
	return nil
}

func scanSignup(row rowScanner, s *domain.Signup) error {
	return row.Scan(
		&s.ID, &s.Seq, &s.ItemID, &s.UserID, &s.Quantity, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (t *itemTx) Signups(ctx context.Context) ([]domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signups WHERE item_id = $1 ORDER BY seq`

	rows, err := t.tx.QueryContext(ctx, query, t.item.ID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	defer rows.Close()

	var res []domain.Signup
	for rows.Next() {
		var s domain.Signup
		if err = scanSignup(rows, &s); err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (t *itemTx) InsertSignup(ctx context.Context, s *domain.Signup) error {
	query := `INSERT INTO signups (id, item_id, user_id, quantity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING seq`

	err := t.tx.QueryRowContext(ctx, query,
		s.ID, s.ItemID, s.UserID, s.Quantity, s.Status, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user already signed up", domain.ErrConflict)
		}
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

func (t *itemTx) UpdateSignup(ctx context.Context, s *domain.Signup) error {
	query := `UPDATE signups
			  SET quantity = $3, status = $4, updated_at = $5
			  WHERE id = $1 AND item_id = $2`

	res, err := t.tx.ExecContext(ctx, query, s.ID, t.item.ID, s.Quantity, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update signup: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrSignupNotFound
	}
	return nil
}

func (t *itemTx) ReofferSettings(ctx context.Context) (*domain.ReofferSettings, error) {
	query := `SELECT participate, price, quantity_override, allow_below_min
			  FROM reoffer_settings
			  WHERE item_id = $1`

	var (
		s        = domain.ReofferSettings{ItemID: t.item.ID}
		price    decimal.NullDecimal
		override sql.NullInt64
	)
	err := t.tx.QueryRowContext(ctx, query, t.item.ID).Scan(&s.Participate, &price, &override, &s.AllowBelowMin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			d := domain.DefaultReofferSettings(t.item.ID)
			return &d, nil
		}
		return nil, fmt.Errorf("get reoffer settings: %w", err)
	}
	if price.Valid {
		s.Price = &price.Decimal
	}
	if override.Valid {
		n := int(override.Int64)
		s.QuantityOverride = &n
	}
	return &s, nil
}

func (t *itemTx) SaveReofferSettings(ctx context.Context, s *domain.ReofferSettings) error {
	return saveSettings(ctx, t.tx, t.item.ID, s)
}

func (t *itemTx) Listing(ctx context.Context) (*domain.ReofferListing, error) {
	query := `SELECT ` + listingColumns + ` FROM reoffer_listings WHERE item_id = $1`

	l, err := scanListing(t.tx.QueryRowContext(ctx, query, t.item.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (t *itemTx) InsertListing(ctx context.Context, l *domain.ReofferListing) error {
	query := `INSERT INTO reoffer_listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := t.tx.ExecContext(ctx, query,
		l.ItemID, l.AuctionID, l.Title, l.Participate, l.Price,
		l.QuantityOffered, l.QuantityRemaining, l.OpenedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: listing already frozen", domain.ErrConflict)
		}
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func (t *itemTx) SetListingRemaining(ctx context.Context, remaining int) error {
	query := `UPDATE reoffer_listings SET quantity_remaining = $2 WHERE item_id = $1`

	res, err := t.tx.ExecContext(ctx, query, t.item.ID, remaining)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotOffered
	}
	return nil
}

func scanCommitment(row rowScanner) (*domain.Commitment, error) {
	var (
		c   domain.Commitment
		key sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.AuctionID, &c.ItemID, &c.DonorID, &c.UserID, &c.Quantity,
		&c.Amount, &c.Source, &key, &c.RemainingAfter, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.IdempotencyKey = key.String
	return &c, nil
}

func (t *itemTx) CommitmentByKey(ctx context.Context, userID, key string) (*domain.Commitment, error) {
	query := `SELECT ` + commitmentColumns + `
			  FROM commitments
			  WHERE item_id = $1 AND user_id = $2 AND idempotency_key = $3`

	c, err := scanCommitment(t.tx.QueryRowContext(ctx, query, t.item.ID, userID, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commitment by key: %w", err)
	}
	return c, nil
}

func (t *itemTx) InsertCommitment(ctx context.Context, c *domain.Commitment) error {
	query := `INSERT INTO commitments (` + commitmentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := t.tx.ExecContext(ctx, query,
		c.ID, c.AuctionID, c.ItemID, c.DonorID, c.UserID, c.Quantity,
		c.Amount, c.Source, nullString(c.IdempotencyKey), c.RemainingAfter, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate commitment key", domain.ErrConflict)
		}
		return fmt.Errorf("insert commitment: %w", err)
	}
	return nil
}
