package service

import (
	"errors"
	"obe_backend/internal/config"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

type RegisterRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Role     model.UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" || !roleAllowed(role) {
		role = model.RoleStudent
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// roleAllowed limits self-registration to student and teacher; admin
// accounts are seeded or promoted, never self-registered.
func roleAllowed(role model.UserRole) bool {
	return role == model.RoleStudent || role == model.RoleTeacher
}

func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if user.Disabled {
		return nil, util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrPermissionDenied
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	user.LastLogin = time.Now()

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
