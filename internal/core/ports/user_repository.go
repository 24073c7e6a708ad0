package ports

import (
	"context"

	"github.com/userdesk/user-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// Insert must enforce username uniqueness at the store level and return
// domain.ErrUsernameExists on a duplicate, so that two concurrent creates
// racing past the service's existence check still resolve correctly.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// DeleteByID removes the record. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// RoleRepository reads shared role reference data. Roles are seeded
// out-of-band; the core only looks them up during bootstrap.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
}
