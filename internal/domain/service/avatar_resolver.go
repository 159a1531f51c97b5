package service

// AvatarResolver derives an avatar URL from an email address.
// The result must be deterministic for a given email.
type AvatarResolver interface {
	Resolve(email string) string
}
