package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mycontacts/internal/apperr"
	"mycontacts/internal/model"
	"mycontacts/internal/repository"
	"mycontacts/internal/utils"
)

var (
	ErrAllFieldsMandatory = apperr.New(apperr.KindValidation, "All fields are mandatory")
	ErrUserAlreadyExists  = apperr.New(apperr.KindConflict, "User already registered")
	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so clients cannot probe which emails are registered.
	ErrInvalidCredentials = apperr.New(apperr.KindAuthentication, "Invalid password")
	ErrInvalidUserData    = apperr.New(apperr.KindInvalidData, "Invalid user data")
)

// AuthService provides registration and login.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	log      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		log:      log,
	}
}

// Register creates a new user account. Validation runs before any store
// or hash work. Duplicate emails fail with ErrUserAlreadyExists whether
// caught by the pre-check or by the unique constraint under a concurrent
// race.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrAllFieldsMandatory
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to register user", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to register user", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, apperr.Wrap(apperr.KindInvalidData, ErrInvalidUserData.Message, err)
	}

	s.log.Info("user registered", zap.String("id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Login authenticates a user and returns a signed access token.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrAllFieldsMandatory
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Failed to login", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Failed to login", err)
	}
	return token, nil
}
