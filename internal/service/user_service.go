package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService covers admin-side account management: listing, role changes
// and disabling accounts.
type UserService struct {
	UserRepo *repository.UserRepository
	Logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{UserRepo: userRepo, Logger: logger}
}

func (s *UserService) List(page, limit int, role model.UserRole) ([]model.User, int64, error) {
	if role != "" && !role.Valid() {
		return nil, 0, util.ErrPermissionDenied
	}
	return s.UserRepo.List(page, limit, role)
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateRoleRequest struct {
	Role model.UserRole `json:"role" binding:"required"`
}

func (s *UserService) UpdateRole(id uint, req UpdateRoleRequest) (*model.User, error) {
	if !req.Role.Valid() {
		return nil, errors.New("invalid role")
	}
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user.Role = req.Role
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	s.Logger.Info("user role changed",
		zap.Uint("userId", user.ID),
		zap.String("role", string(req.Role)))
	return user, nil
}

func (s *UserService) SetDisabled(id uint, disabled bool) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user.Disabled = disabled
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	s.Logger.Info("user account status changed",
		zap.Uint("userId", user.ID),
		zap.Bool("disabled", disabled))
	return user, nil
}
