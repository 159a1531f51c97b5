// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity: one email, one password hash.
// It is created once at registration and never deleted.
type Account struct {
	ID           uuid.UUID `json:"id"`         // Assigned at creation, immutable.
	Email        string    `json:"email"`      // Normalised with NormalizeEmail before it is stored.
	Name         string    `json:"name"`       // Display name.
	Avatar       string    `json:"avatar"`     // Avatar URL derived from the email at registration.
	PasswordHash string    `json:"-"`          // bcrypt hash; never serialised.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of registration.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// NormalizeEmail trims and lower-cases an email address. Uniqueness and
// login lookups both go through it, so email matching is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Summary returns the public part of the account embedded in profiles.
func (a *Account) Summary() *OwnerSummary {
	if a == nil {
		return nil
	}

	return &OwnerSummary{
		ID:     a.ID,
		Name:   a.Name,
		Avatar: a.Avatar,
	}
}
