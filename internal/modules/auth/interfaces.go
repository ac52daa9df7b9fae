package auth

import (
	"context"

	"staybook/internal/domain"
)

// AccountRepositoryInterface is the subset of the account repository
// the auth service uses.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByEmailToken(ctx context.Context, token string) (*domain.Account, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	Update(ctx context.Context, a *domain.Account) error
}
