// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultProfileName is shown until the user sets a name.
const DefaultProfileName = "Saver"

// Profile is the display-only name/email pair of the single user.
type Profile struct {
	Name      string
	Email     string
	UpdatedAt time.Time
}

// NewProfile creates a Profile.
func NewProfile(name, email string) *Profile {
	return &Profile{
		Name:      name,
		Email:     email,
		UpdatedAt: time.Now().UTC(),
	}
}

// DefaultProfile returns the profile used before anything is saved.
func DefaultProfile() *Profile {
	return NewProfile(DefaultProfileName, "")
}
