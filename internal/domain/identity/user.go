package identity

import (
	"regexp"
	"strings"

	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// Role is the marketplace role a user acts under
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// VerificationStatus is the admin-granted trust marker on a seller account
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a registered marketplace account
type User struct {
	shared.BaseEntity
	Name               string
	Email              string
	Role               Role
	VerificationStatus VerificationStatus
	PhotoURL           string
}

// NewUser registers a buyer or seller. Admin accounts are never self-registered.
func NewUser(name, email string, role Role, photoURL string) (*User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleBuyer
	}
	if role != RoleBuyer && role != RoleSeller {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role must be buyer or seller")
	}
	name = strings.TrimSpace(name)
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name cannot exceed 100 characters")
	}

	return &User{
		BaseEntity:         shared.NewBaseEntity(),
		Name:               name,
		Email:              email,
		Role:               role,
		VerificationStatus: VerificationUnverified,
		PhotoURL:           strings.TrimSpace(photoURL),
	}, nil
}

// NormalizeEmail trims and lower-cases email and checks its shape
func NormalizeEmail(email string) (string, error) {
	email = shared.CanonicalEmail(email)
	if email == "" {
		return "", shared.NewDomainError("INVALID_INPUT", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_INPUT", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_INPUT", "Invalid email format")
	}
	return email, nil
}

// IsVerified reports whether an admin has verified the account
func (u *User) IsVerified() bool {
	return u.VerificationStatus == VerificationVerified
}

// Verify marks the account verified. It returns false when it already was.
func (u *User) Verify() bool {
	if u.IsVerified() {
		return false
	}
	u.VerificationStatus = VerificationVerified
	u.Touch()
	return true
}

// RoleSet holds the derived role predicates for an email.
// The zero value is the answer for an unknown email.
type RoleSet struct {
	IsBuyer  bool
	IsSeller bool
	IsAdmin  bool
}

// Roles derives the predicates for u; a nil user has no roles
func (u *User) Roles() RoleSet {
	if u == nil {
		return RoleSet{}
	}
	return RoleSet{
		IsBuyer:  u.Role == RoleBuyer,
		IsSeller: u.Role == RoleSeller,
		IsAdmin:  u.Role == RoleAdmin,
	}
}
