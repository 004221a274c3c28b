package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *LedgerRepository) CommitmentsByUser(ctx context.Context, userID string) ([]domain.Commitment, error) {
	return r.commitments(ctx, "user_id", userID)
}

func (r *LedgerRepository) CommitmentsByDonor(ctx context.Context, donorID string) ([]domain.Commitment, error) {
	return r.commitments(ctx, "donor_id", donorID)
}

func (r *LedgerRepository) HeldSignupsByUser(ctx context.Context, userID string) ([]domain.HeldSignup, error) {
	return r.held(ctx, "s.user_id", userID)
}

func (r *LedgerRepository) HeldSignupsByDonor(ctx context.Context, donorID string) ([]domain.HeldSignup, error) {
	return r.held(ctx, "i.donor_id", donorID)
}

// column is always one of the literals above, never caller input.
func (r *LedgerRepository) commitments(ctx context.Context, column, id string) ([]domain.Commitment, error) {
	query := `SELECT ` + commitmentColumns + `
			  FROM commitments
			  WHERE ` + column + ` = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: list commitments: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []domain.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commitment: %w", err)
		}
		res = append(res, *c)
	}

	return res, rows.Err()
}

func (r *LedgerRepository) held(ctx context.Context, column, id string) ([]domain.HeldSignup, error) {
	query := `SELECT s.id, s.seq, s.item_id, s.user_id, s.quantity, s.status, s.created_at, s.updated_at,
			  	i.auction_id, i.donor_id, i.opening_min_price
			  FROM signups s
			  JOIN items i ON i.id = s.item_id
			  WHERE ` + column + ` = $1 AND s.status = ANY($2)
			  ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id, pq.Array(domain.HoldingStatuses))
	if err != nil {
		return nil, fmt.Errorf("%w: list held signups: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var res []domain.HeldSignup
	for rows.Next() {
		var h domain.HeldSignup
		s := &h.Signup
		err = rows.Scan(
			&s.ID, &s.Seq, &s.ItemID, &s.UserID, &s.Quantity, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&h.AuctionID, &h.DonorID, &h.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan held signup: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}
