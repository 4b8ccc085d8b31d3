package request

// UpdateProfileRequest is a partial update: nil pointers mean "leave
// unchanged", a pointer to "" is an explicit write of the empty string.
type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName     *string `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// ListUsersRequest carries admin listing parameters. Limit and Offset are
// clamped by the service, never rejected.
type ListUsersRequest struct {
	Role   string `json:"role" validate:"omitempty,oneof=customer admin"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
