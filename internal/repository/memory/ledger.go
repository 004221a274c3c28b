package memory

import (
	"context"

	"github.com/oryweaver/auction/internal/domain"
)

type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) CommitmentsByUser(_ context.Context, userID string) ([]domain.Commitment, error) {
	return r.commitments(func(c *domain.Commitment) bool { return c.UserID == userID }), nil
}

func (r *LedgerRepo) CommitmentsByDonor(_ context.Context, donorID string) ([]domain.Commitment, error) {
	return r.commitments(func(c *domain.Commitment) bool { return c.DonorID == donorID }), nil
}

func (r *LedgerRepo) HeldSignupsByUser(_ context.Context, userID string) ([]domain.HeldSignup, error) {
	return r.held(func(_ *domain.Item, su *domain.Signup) bool { return su.UserID == userID }), nil
}

func (r *LedgerRepo) HeldSignupsByDonor(_ context.Context, donorID string) ([]domain.HeldSignup, error) {
	return r.held(func(it *domain.Item, _ *domain.Signup) bool { return it.DonorID == donorID }), nil
}

func (r *LedgerRepo) commitments(match func(*domain.Commitment) bool) []domain.Commitment {
	var out []domain.Commitment
	for _, row := range r.s.allItemRows() {
		row.mu.Lock()
		for i := range row.state.commitments {
			if match(&row.state.commitments[i]) {
				out = append(out, row.state.commitments[i])
			}
		}
		row.mu.Unlock()
	}
	return out
}

func (r *LedgerRepo) held(match func(*domain.Item, *domain.Signup) bool) []domain.HeldSignup {
	var out []domain.HeldSignup
	for _, row := range r.s.allItemRows() {
		row.mu.Lock()
		it := &row.state.item
		for i := range row.state.signups {
			su := &row.state.signups[i]
			if su.Status.HoldsCapacity() && match(it, su) {
				out = append(out, domain.HeldSignup{
					Signup:    *su,
					AuctionID: it.AuctionID,
					DonorID:   it.DonorID,
					Price:     it.OpeningMinPrice,
				})
			}
		}
		row.mu.Unlock()
	}
	return out
}
