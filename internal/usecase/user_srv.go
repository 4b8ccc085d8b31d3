package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seedco-api/internal/data/entity"
	"seedco-api/internal/data/repository"
	"seedco-api/internal/dto/request"
	"seedco-api/internal/dto/response"
	"seedco-api/pkg/apperr"
	"seedco-api/pkg/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// UserService covers self-service profile operations and the admin
// management surface. Role enforcement happens at the call site (REST
// middleware or GraphQL resolver), not here.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context, req *request.ListUsersRequest) (*response.UserListResponse, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	ActivateUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateProfile touches only the fields present in the request; setting a
// field to the empty string is a real write, an absent field is skipped.
func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	// 1. Validate supplied fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	// 2. Make sure the user still exists
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update profile lookup: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	// 3. Field-level partial update
	updated, err := us.userRepo.UpdateProfile(ctx, userID, entity.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		us.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	us.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(updated)
	return &resp, nil
}

func (us *userService) GetUsers(ctx context.Context, req *request.ListUsersRequest) (*response.UserListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("List users validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var role *entity.UserRole
	if req.Role != "" {
		r := entity.UserRole(req.Role)
		role = &r
	}

	users, err := us.userRepo.FindAll(ctx, role, limit, offset)
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.userRepo.Count(ctx, role)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	resp := &response.UserListResponse{
		Users:  make([]response.UserResponse, 0, len(users)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, response.UserToResponse(u))
	}

	return resp, nil
}

func (us *userService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	return us.setActive(ctx, id, false)
}

func (us *userService) ActivateUser(ctx context.Context, id uuid.UUID) error {
	return us.setActive(ctx, id, true)
}

// Deactivation does not revoke outstanding tokens; the per-request
// isActive check in the auth middleware makes it bite on the next request.
func (us *userService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("set active lookup: %w", err)
	}
	if user == nil {
		return apperr.ErrNotFound
	}

	if err := us.userRepo.SetActive(ctx, id, active); err != nil {
		us.log.Error("Failed to set active flag",
			zap.Error(err), zap.String("user_id", id.String()), zap.Bool("active", active))
		return fmt.Errorf("set active: %w", err)
	}

	us.log.Info("User active flag changed",
		zap.String("user_id", id.String()), zap.Bool("active", active))
	return nil
}
