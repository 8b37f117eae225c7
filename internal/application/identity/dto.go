package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/identity"
)

// RegisterUserInput carries a self-registration
type RegisterUserInput struct {
	Name     string
	Email    string
	Role     identity.Role
	PhotoURL string
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                 uuid.UUID `json:"_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	VerificationStatus string    `json:"status"`
	PhotoURL           string    `json:"photoURL,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		VerificationStatus: string(u.VerificationStatus),
		PhotoURL:           u.PhotoURL,
		CreatedAt:          u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users, never returning nil
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// TokenResult is an issued access token
type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
}
