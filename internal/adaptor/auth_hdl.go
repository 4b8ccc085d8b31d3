package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"seedco-api/internal/dto/request"
	"seedco-api/internal/usecase"
	"seedco-api/pkg/apperr"
	"seedco-api/pkg/utils"
)

type AuthHandler struct {
	service usecase.AuthService
	users   usecase.UserService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, users usecase.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		users:   users,
		log:     log,
	}
}

// RegisterCustomer handles POST /api/auth/register/customer
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.RegisterCustomer(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register customer")
		return
	}

	utils.ResponseCreated(w, "Customer registered successfully", resp)
}

// RegisterAdmin handles POST /api/auth/register/admin
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.RegisterAdmin(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register admin")
		return
	}

	utils.ResponseCreated(w, "Admin registered successfully", resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// GetProfile handles GET /api/auth/profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.users.GetProfile(r.Context(), user.ID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", map[string]any{"user": profile})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.users.UpdateProfile(r.Context(), user.ID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", map[string]any{"user": profile})
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ChangePassword(r.Context(), user.ID, &req); err != nil {
		h.handleServiceError(w, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed successfully", nil)
}

// handleServiceError maps business errors onto HTTP status codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var ve *apperr.ValidationError

	switch {
	case errors.As(err, &ve):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)

	case errors.Is(err, apperr.ErrDuplicateEmail):
		h.log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrWrongPassword):
		// wrong current password on the change-password path is a 400
		h.log.Warn(operation+" failed - wrong current password", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrAccountDeactivated):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, apperr.ErrInvalidAdminCode):
		h.log.Warn(operation+" failed - bad admin code", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperr.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
