package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SocialPlatform is one of the fixed set of social networks a profile may link.
type SocialPlatform string

const (
	SocialYouTube   SocialPlatform = "youtube"
	SocialTwitter   SocialPlatform = "twitter"
	SocialFacebook  SocialPlatform = "facebook"
	SocialInstagram SocialPlatform = "instagram"
)

// SocialPlatforms lists every accepted SocialPlatform key.
var SocialPlatforms = []SocialPlatform{
	SocialYouTube,
	SocialTwitter,
	SocialFacebook,
	SocialInstagram,
}

// Valid reports whether p belongs to the enumerated set.
func (p SocialPlatform) Valid() bool {
	for _, known := range SocialPlatforms {
		if p == known {
			return true
		}
	}

	return false
}

// Social maps a platform to the owner's handle on it.
type Social map[SocialPlatform]string

// OwnerSummary is the public view of the account that owns a profile.
type OwnerSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// Profile is the descriptive record owned by exactly one Account.
type Profile struct {
	OwnerID       uuid.UUID     `json:"-"`
	Owner         *OwnerSummary `json:"user"`
	Genre         string        `json:"genre"`
	FavoriteItems []string      `json:"favorite_items"`
	Website       string        `json:"website,omitempty"`
	Location      string        `json:"location,omitempty"`
	Bio           string        `json:"bio,omitempty"`
	Social        Social        `json:"social"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ProfilePatch is a sparse set of profile changes. A nil field is absent and
// leaves the stored value untouched. A non-nil Social replaces the stored map
// wholesale.
type ProfilePatch struct {
	Genre         *string
	FavoriteItems []string
	Website       *string
	Location      *string
	Bio           *string
	Social        Social
}

// IsEmpty reports whether the patch carries no field at all.
func (p *ProfilePatch) IsEmpty() bool {
	return p == nil || (p.Genre == nil && p.FavoriteItems == nil && p.Website == nil &&
		p.Location == nil && p.Bio == nil && p.Social == nil)
}

// Apply writes every present field of patch onto the profile.
func (p *Profile) Apply(patch *ProfilePatch) {
	if patch == nil {
		return
	}
	if patch.Genre != nil {
		p.Genre = *patch.Genre
	}
	if patch.FavoriteItems != nil {
		p.FavoriteItems = append([]string(nil), patch.FavoriteItems...)
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Social != nil {
		social := make(Social, len(patch.Social))
		for k, v := range patch.Social {
			social[k] = v
		}
		p.Social = social
	}
}

// NewProfile returns an empty profile for owner with non-nil collections.
func NewProfile(ownerID uuid.UUID) *Profile {
	return &Profile{
		OwnerID:       ownerID,
		FavoriteItems: []string{},
		Social:        Social{},
	}
}

// SplitFavoriteItems turns "Chess, Go ,," into ["Chess", "Go"].
func SplitFavoriteItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	return items
}
