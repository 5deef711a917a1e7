package repository

import (
	"context"
	"errors"

	"github.com/dvukovic/devconnect/internal/domain"
)

// ErrDuplicateEmail reports an insert that hit the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	// Create inserts the user and fills the store-generated ID and
	// CreatedAt. Returns ErrDuplicateEmail on a unique violation.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
