package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
)

const maxUsernameLen = 64

// UserService manages bidders and donors. Both are plain users; the role is
// implied by what they do in an auction.
type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(username) > maxUsernameLen || strings.ContainsAny(username, " \t\n") {
		return nil, fmt.Errorf("%w: username must be a single word of at most %d characters", domain.ErrValidation, maxUsernameLen)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, strings.TrimSpace(username))
}

// Resolve accepts either a user id or a username.
func (s *UserService) Resolve(ctx context.Context, ref string) (*domain.User, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return s.repo.GetByID(ctx, ref)
	}
	return s.GetByUsername(ctx, ref)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
