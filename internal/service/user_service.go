package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// ProfileUpdate is a partial update of a user's own profile. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
}

// UserUpdate is an admin-side partial update of a user. Nil fields are
// left unchanged.
type UserUpdate struct {
	Name      *string
	Role      *string
	AvatarURL *string
}

// UserService handles user profile and admin user management.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, patch ProfileUpdate) (*model.User, error)
	SetFoodBudget(ctx context.Context, id uint, budget *decimal.Decimal) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, patch UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	LoginHistory(ctx context.Context, id uint, limit int) ([]model.LoginLog, error)
}

type userService struct {
	userRepo     repository.UserRepository
	loginLogRepo repository.LoginLogRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, loginLogRepo repository.LoginLogRepository) UserService {
	return &userService{userRepo: userRepo, loginLogRepo: loginLogRepo}
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update to the user's own record.
func (s *userService) UpdateProfile(ctx context.Context, id uint, patch ProfileUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// SetFoodBudget sets or clears the user's daily food budget. A nil budget
// clears it.
func (s *userService) SetFoodBudget(ctx context.Context, id uint, budget *decimal.Decimal) (*model.User, error) {
	if budget != nil && budget.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.DailyFoodBudget = budget
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ListUsers lists all users.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies an admin-side partial update to any user.
func (s *userService) UpdateUser(ctx context.Context, id uint, patch UserUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		if *patch.Role != model.RoleAdmin && *patch.Role != model.RoleUser {
			return nil, errors.ErrForbidden
		}
		user.Role = *patch.Role
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// LoginHistory lists the user's most recent logins, newest first.
func (s *userService) LoginHistory(ctx context.Context, id uint, limit int) ([]model.LoginLog, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return s.loginLogRepo.ListByUser(ctx, id, limit)
}
