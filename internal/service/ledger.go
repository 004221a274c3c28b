package service

import (
	"context"
	"fmt"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
)

// LedgerService merges stored commitments with held signups into statements.
type LedgerService struct {
	repo ports.LedgerRepo
}

func NewLedgerService(repo ports.LedgerRepo) *LedgerService {
	return &LedgerService{repo: repo}
}

// Commitments is everything userID owes.
func (s *LedgerService) Commitments(ctx context.Context, userID string) (*domain.Statement, error) {
	stored, err := s.repo.CommitmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("commitments by user: %w", err)
	}
	held, err := s.repo.HeldSignupsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("held signups by user: %w", err)
	}
	st := domain.BuildStatement(userID, merge(stored, held))
	return &st, nil
}

// Sales is everything owed to donorID.
func (s *LedgerService) Sales(ctx context.Context, donorID string) (*domain.Statement, error) {
	stored, err := s.repo.CommitmentsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("commitments by donor: %w", err)
	}
	held, err := s.repo.HeldSignupsByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("held signups by donor: %w", err)
	}
	st := domain.BuildStatement(donorID, merge(stored, held))
	return &st, nil
}

func merge(stored []domain.Commitment, held []domain.HeldSignup) []domain.Commitment {
	out := make([]domain.Commitment, 0, len(stored)+len(held))
	out = append(out, stored...)
	for _, h := range held {
		out = append(out, h.Commitment())
	}
	return out
}
