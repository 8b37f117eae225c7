package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/identity"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// UserService handles user registration, role lookups and seller verification
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewUserService creates a new UserService. blacklist may be nil, in which
// case deleted users keep their outstanding tokens until they expire.
func NewUserService(
	userRepo identity.UserRepository,
	blacklist auth.TokenBlacklist,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a buyer or seller account
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (shared.InsertResult, error) {
	user, err := identity.NewUser(input.Name, input.Email, input.Role, input.PhotoURL)
	if err != nil {
		return shared.InsertResult{}, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return shared.InsertResult{}, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
		}
		return shared.InsertResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	return shared.NewInsertResult(user.ID), nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	return s.ListByRole(ctx, "")
}

// ListByRole returns the users holding role; an empty role lists everyone
func (s *UserService) ListByRole(ctx context.Context, role identity.Role) ([]UserResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role")
	}
	users, err := s.userRepo.FindAll(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return ToUserResponses(users), nil
}

// Delete removes a user and revokes every token issued to them
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (shared.DeleteResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, err
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == 0 {
		return shared.DeleteResult{}, shared.ErrNotFound
	}

	if s.blacklist != nil {
		if err := s.blacklist.InvalidateUserTokens(ctx, user.Email, s.tokenTTL); err != nil {
			s.logger.Error("Failed to revoke tokens of deleted user",
				zap.String("user_id", id.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	return shared.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// Roles resolves the role predicates for email. An unknown email has no
// roles and is not an error.
func (s *UserService) Roles(ctx context.Context, email string) (identity.RoleSet, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return identity.RoleSet{}, nil
		}
		return identity.RoleSet{}, fmt.Errorf("failed to resolve roles: %w", err)
	}
	return user.Roles(), nil
}

// IsBuyer reports whether email belongs to a buyer
func (s *UserService) IsBuyer(ctx context.Context, email string) (bool, error) {
	roles, err := s.Roles(ctx, email)
	return roles.IsBuyer, err
}

// IsSeller reports whether email belongs to a seller
func (s *UserService) IsSeller(ctx context.Context, email string) (bool, error) {
	roles, err := s.Roles(ctx, email)
	return roles.IsSeller, err
}

// IsAdmin reports whether email belongs to an admin
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	roles, err := s.Roles(ctx, email)
	return roles.IsAdmin, err
}

// VerifySeller marks a user verified. Verifying twice matches without modifying.
func (s *UserService) VerifySeller(ctx context.Context, id uuid.UUID) (shared.UpdateResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return shared.UpdateResult{}, err
	}

	if !user.Verify() {
		return shared.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return shared.UpdateResult{}, fmt.Errorf("failed to verify seller: %w", err)
	}

	s.logger.Info("Seller verified", zap.String("user_id", id.String()))
	return shared.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// GetVerifiedSeller returns the user registered with email when verified, nil otherwise
func (s *UserService) GetVerifiedSeller(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}
	if !user.IsVerified() {
		return nil, nil
	}
	resp := ToUserResponse(user)
	return &resp, nil
}
