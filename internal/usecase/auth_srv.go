package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seedco-api/internal/data/entity"
	"seedco-api/internal/data/repository"
	"seedco-api/internal/dto/request"
	"seedco-api/internal/dto/response"
	"seedco-api/pkg/apperr"
	"seedco-api/pkg/utils"
)

type AuthService interface {
	RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.AuthResponse, error)
	RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

func (s *authService) RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer registration validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	user := &entity.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      entity.RoleCustomer,
	}

	// 2. Create and auto-login
	return s.createWithToken(ctx, user, req.Password)
}

func (s *authService) RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin registration validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	// 2. Check admin registration code. Any caller with the code may
	// register an admin; there is no single-admin rule server side.
	code := s.config.Admin.RegistrationCode
	if code == "" || subtle.ConstantTimeCompare([]byte(req.AdminCode), []byte(code)) != 1 {
		s.log.Warn("Admin registration with wrong code", zap.String("email", req.Email))
		return nil, apperr.ErrInvalidAdminCode
	}

	user := &entity.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.RoleAdmin,
	}

	// 3. Create and auto-login
	return s.createWithToken(ctx, user, req.Password)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	// 2. Find user by email
	user, err := s.userRepo.FindByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if user == nil {
		// Same category and message as a wrong password
		s.log.Warn("Login for unknown email")
		return nil, apperr.ErrInvalidCredentials
	}

	// 3. Deactivated accounts are rejected before the hash compare, so no
	// bcrypt work is spent on them
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperr.ErrAccountDeactivated
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.ErrInvalidCredentials
	}

	// 5. Update last login
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("Failed to update last login",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// login still succeeds
	} else {
		user.LastLogin = &now
	}

	// 6. Issue token
	resp, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return &apperr.ValidationError{Fields: errs}
	}

	// 2. Load user
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for password change", zap.Error(err))
		return fmt.Errorf("change password lookup: %w", err)
	}
	if user == nil {
		return apperr.ErrNotFound
	}

	// 3. Verify current password
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Password change with wrong current password",
			zap.String("user_id", user.ID.String()))
		return apperr.ErrWrongPassword
	}

	// 4. Hash and store the new password. Previously issued tokens stay
	// valid until they expire.
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to store new password",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("store password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// createWithToken finishes both registration paths: duplicate check, hash,
// insert, token issue. No partial writes: nothing is stored until every
// check has passed.
func (s *authService) createWithToken(ctx context.Context, user *entity.User, password string) (*response.AuthResponse, error) {
	user.Email = utils.NormalizeEmail(user.Email)

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.Base = entity.Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.PasswordHash = hash
	user.IsActive = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	resp, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return resp, nil
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, s.config.JWT.TTL())
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
