package response

import (
	"time"

	"seedco-api/internal/data/entity"
)

// UserResponse is the public projection of a user. The password hash is
// stripped here and only here; every surface that serializes a user must
// go through UserToResponse.
type UserResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Role         entity.UserRole `json:"role"`
	IsActive     bool            `json:"isActive"`
	LastLogin    *time.Time      `json:"lastLogin,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Address      *string         `json:"address,omitempty"`
	ProfileImage *string         `json:"profileImage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		IsActive:     user.IsActive,
		LastLogin:    user.LastLogin,
		Phone:        user.Phone,
		Address:      user.Address,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
