package domain

import "time"

type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleVendor   AccountRole = "vendor"
)

// Account is a single principal with exactly one role. Customer and
// vendor are values of the role column, not separate tables, so role
// resolution is one lookup.
type Account struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"-"`
	Role         AccountRole `json:"role"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Phone        string      `json:"phone,omitempty"`
	BusinessName string      `json:"business_name,omitempty"`
	Verified     bool        `json:"verified"`
	EmailToken   string      `json:"-"`
	OTPHash      string      `json:"-"`
	OTPExpiresAt *time.Time  `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (a *Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
