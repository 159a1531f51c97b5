// Package avatar derives profile pictures from account emails.
package avatar

import (
	"crypto/md5" //nolint:gosec // gravatar addresses images by the md5 of the email.
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"lobby/config"
	"lobby/internal/domain/service"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

type gravatarResolver struct {
	query string
}

// NewGravatarResolver builds a resolver using the avatar section of the config.
func NewGravatarResolver(cfg *config.Config) service.AvatarResolver {
	size, rating, fallback := 200, "pg", "mm"
	if cfg != nil && cfg.Avatar != nil {
		if cfg.Avatar.Size > 0 {
			size = cfg.Avatar.Size
		}
		if cfg.Avatar.Rating != "" {
			rating = cfg.Avatar.Rating
		}
		if cfg.Avatar.Fallback != "" {
			fallback = cfg.Avatar.Fallback
		}
	}

	values := url.Values{}
	values.Set("s", strconv.Itoa(size))
	values.Set("r", rating)
	values.Set("d", fallback)

	return &gravatarResolver{query: values.Encode()}
}

// Resolve returns the gravatar URL for email. Case and surrounding space are ignored.
func (r *gravatarResolver) Resolve(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec

	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?" + r.query
}
