package ports

import (
	"context"

	"github.com/userdesk/user-api/internal/core/domain"
)

// UserInput carries all data needed to create or update a user. Password is
// plaintext on the way in; the service replaces it with a hashed form before
// anything touches the store.
type UserInput struct {
	ID       int64 // ignored on create, required on update
	Name     string
	Surname  string
	Age      int
	Email    string
	Username string
	Password string
	Roles    []domain.Role
}

// UserService defines the user lifecycle use cases.
type UserService interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, input UserInput) (*domain.User, error)
	DeleteByID(ctx context.Context, id int64) error
	// BootstrapDefaults seeds the default accounts when the store holds no
	// users. It must complete before the service accepts traffic.
	BootstrapDefaults(ctx context.Context) error
}
