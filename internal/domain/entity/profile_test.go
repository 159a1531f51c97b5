package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSplitFavoriteItems(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "Chess, Go", want: []string{"Chess", "Go"}},
		{raw: "  Chess  ", want: []string{"Chess"}},
		{raw: "Chess,, ,Go,", want: []string{"Chess", "Go"}},
		{raw: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFavoriteItems(tt.raw))
		})
	}
}

func TestProfile_Apply_PartialUpdate(t *testing.T) {
	genre := "RPG"
	website := "x.io"

	profile := NewProfile(uuid.New())
	profile.Apply(&ProfilePatch{
		Genre:         &genre,
		FavoriteItems: []string{"Chess"},
		Social:        Social{SocialTwitter: "@a", SocialYouTube: "a"},
	})
	profile.Apply(&ProfilePatch{
		Website: &website,
		Social:  Social{SocialFacebook: "fb"},
	})

	assert.Equal(t, "RPG", profile.Genre)
	assert.Equal(t, []string{"Chess"}, profile.FavoriteItems)
	assert.Equal(t, "x.io", profile.Website)
	assert.Equal(t, Social{SocialFacebook: "fb"}, profile.Social)
}

func TestProfilePatch_IsEmpty(t *testing.T) {
	bio := ""

	assert.True(t, (*ProfilePatch)(nil).IsEmpty())
	assert.True(t, (&ProfilePatch{}).IsEmpty())
	assert.False(t, (&ProfilePatch{Bio: &bio}).IsEmpty())
	assert.False(t, (&ProfilePatch{Social: Social{}}).IsEmpty())
}

func TestSocialPlatform_Valid(t *testing.T) {
	assert.True(t, SocialInstagram.Valid())
	assert.False(t, SocialPlatform("myspace").Valid())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}
