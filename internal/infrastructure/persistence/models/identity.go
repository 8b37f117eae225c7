package models

import "github.com/recyclezone/marketplace/internal/domain/identity"

// UserModel is the persistence model for the User entity
type UserModel struct {
	BaseModel
	Name               string                      `gorm:"type:varchar(100)"`
	Email              string                      `gorm:"type:varchar(200);not null;uniqueIndex"`
	Role               identity.Role               `gorm:"type:varchar(20);not null;index;default:'buyer'"`
	VerificationStatus identity.VerificationStatus `gorm:"type:varchar(20);not null;default:'unverified'"`
	PhotoURL           string                      `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:         m.BaseModel.ToDomain(),
		Name:               m.Name,
		Email:              m.Email,
		Role:               m.Role,
		VerificationStatus: m.VerificationStatus,
		PhotoURL:           m.PhotoURL,
	}
}

// UserModelFromDomain creates a model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		VerificationStatus: u.VerificationStatus,
		PhotoURL:           u.PhotoURL,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}
