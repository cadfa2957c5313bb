package ports

import (
	"context"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Email uniqueness is enforced by the store (unique index).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
