package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/core/ports"
)

// UserService implements the user lifecycle: listing, lookups, create with
// uniqueness enforcement and credential hashing, partial update, delete, and
// one-time bootstrap of default accounts.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, logger: logger}
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Create persists a new user. The existence check is a best-effort shortcut;
// the store's unique index on username is the source of truth, so a
// duplicate-key failure from Insert is reported as the same conflict.
func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	existing, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Age:          input.Age,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        input.Roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameExists) {
			return nil, domain.ErrUsernameExists
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update merges the input into the stored record. Profile fields and roles
// are always overwritten. The credential is re-hashed only when the submitted
// plaintext no longer matches the stored hash, so an unchanged password keeps
// its original hash intact.
func (s *UserService) Update(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(input.Password, existing.PasswordHash) {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		existing.PasswordHash = hash
	}

	existing.Name = input.Name
	existing.Surname = input.Surname
	existing.Age = input.Age
	existing.Email = input.Email
	existing.Roles = input.Roles
	existing.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.ID).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", existing.ID).Str("username", existing.Username).Msg("user updated")
	return existing, nil
}

// DeleteByID removes the user. Deleting a missing id succeeds, matching the
// store's idempotent delete.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// BootstrapDefaults seeds two default accounts on an empty store. Any
// pre-existing user makes it a no-op. A missing seeded role is fatal: the
// caller is expected to abort startup.
func (s *UserService) BootstrapDefaults(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("users", count).Msg("bootstrap skipped, store not empty")
		return nil
	}

	userRole, err := s.roles.FindByID(ctx, domain.RoleUserID)
	if err != nil {
		return fmt.Errorf("%s not found: %w", domain.RoleUser, err)
	}
	adminRole, err := s.roles.FindByID(ctx, domain.RoleAdminID)
	if err != nil {
		return fmt.Errorf("%s not found: %w", domain.RoleAdmin, err)
	}

	defaults := []ports.UserInput{
		{
			Name:     "Ivan",
			Surname:  "Ivanov",
			Age:      45,
			Email:    "user@mail.com",
			Username: "user",
			Password: "12345",
			Roles:    []domain.Role{*userRole},
		},
		{
			Name:     "Nasty",
			Surname:  "Killina",
			Age:      36,
			Email:    "admin@mail.com",
			Username: "admin",
			Password: "admin",
			Roles:    []domain.Role{*userRole, *adminRole},
		},
	}

	for _, input := range defaults {
		if _, err := s.Create(ctx, input); err != nil {
			return fmt.Errorf("seed %q: %w", input.Username, err)
		}
	}

	s.logger.Info().Msg("default accounts seeded")
	return nil
}
