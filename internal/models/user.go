package models

import (
	"fmt"

	"gostore/pkg/hashing"
)

// DemoUserID is the fallback principal used when a request carries no
// credentials. The cart workflow provisions this user on first use.
const DemoUserID uint = 1

// User represents a registered customer of the store.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(50)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // always a hashed digest, never plaintext
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Carts  []Cart  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders []Order `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// NewUser builds a User with the password run through the credential hasher.
// Values that are already digests pass through unchanged, so re-saving a
// loaded user never double-hashes.
func NewUser(name, email, password string) (*User, error) {
	hashed := password
	if !hashing.IsHashed(password) {
		var err error
		hashed, err = hashing.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return &User{
		Name:     name,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}, nil
}

// CheckPassword verifies a candidate password against the stored digest.
func (u *User) CheckPassword(candidate string) bool {
	return hashing.Verify(u.Password, candidate)
}

// NewDemoUser builds the hardcoded demo principal.
func NewDemoUser() (*User, error) {
	user, err := NewUser("Demo User", "demo@demo.com", "demo")
	if err != nil {
		return nil, err
	}
	user.ID = DemoUserID
	return user, nil
}
