package ports

import (
	"context"

	"github.com/oryweaver/auction/internal/domain"
)

type LedgerRepo interface {
	CommitmentsByUser(ctx context.Context, userID string) ([]domain.Commitment, error)
	CommitmentsByDonor(ctx context.Context, donorID string) ([]domain.Commitment, error)
	HeldSignupsByUser(ctx context.Context, userID string) ([]domain.HeldSignup, error)
	HeldSignupsByDonor(ctx context.Context, donorID string) ([]domain.HeldSignup, error)
}
