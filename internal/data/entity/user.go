package entity

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Role         UserRole   `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
	Phone        *string    `db:"phone"`
	Address      *string    `db:"address"`
	ProfileImage *string    `db:"profile_image"`
}

// ProfileUpdate carries the mutable profile fields for a partial update.
// A nil pointer means the field was not supplied; a pointer to an empty
// string is an explicit write.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Address      *string
	ProfileImage *string
}

// Empty reports whether no field was supplied at all.
func (p ProfileUpdate) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil &&
		p.Address == nil && p.ProfileImage == nil
}
