package models

import "time"

const (
	DefaultPreferredLanguage = "fr-FR"
	DefaultAccessType        = 1
)

// User is a stored account. HashedPassword never leaves the server; the
// API exposes PublicUser instead.
type User struct {
	ID                int64
	UID               string
	Email             string
	Username          string
	HashedPassword    string
	Name              *string
	City              *string
	PreferredLanguage string
	AccessType        int
	IsActive          bool
	IsSuperuser       bool
	CreatedAt         time.Time
}

// PublicUser is the API representation of a User.
type PublicUser struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	Name              *string `json:"name"`
	City              *string `json:"city"`
	PreferredLanguage string  `json:"preferred_language"`
	AccessType        int     `json:"access_type"`
	IsActive          bool    `json:"is_active"`
	IsSuperuser       bool    `json:"is_superuser"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		Name:              u.Name,
		City:              u.City,
		PreferredLanguage: u.PreferredLanguage,
		AccessType:        u.AccessType,
		IsActive:          u.IsActive,
		IsSuperuser:       u.IsSuperuser,
	}
}
