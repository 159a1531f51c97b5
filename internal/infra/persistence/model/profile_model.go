package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"lobby/internal/errors"
)

// ProfileModel mirrors the 'profiles' table. OwnerID is both the primary key
// and a foreign key to accounts.id, so each account has at most one profile.
type ProfileModel struct {
	OwnerID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Owner         *AccountModel `gorm:"foreignKey:OwnerID;references:ID"`
	Genre         string        `gorm:"type:varchar(100);not null;default:''"`
	FavoriteItems StringList    `gorm:"type:jsonb;not null"`
	Website       string        `gorm:"type:text;not null;default:''"`
	Location      string        `gorm:"type:varchar(255);not null;default:''"`
	Bio           string        `gorm:"type:text;not null;default:''"`
	Social        SocialLinks   `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// StringList is an ordered list stored as a JSON array.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, errors.Wrap(err, "encode string list")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return errors.Wrap(err, "decode string list")
	}
	*l = out

	return nil
}

// SocialLinks maps a platform name to a URL, stored as a JSON object.
type SocialLinks map[string]string

// Value implements driver.Valuer. A nil map is stored as {}.
func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}

	b, err := json.Marshal(map[string]string(s))
	if err != nil {
		return nil, errors.Wrap(err, "encode social links")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *SocialLinks) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*s = SocialLinks{}
		return nil
	}

	out := map[string]string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return errors.Wrap(err, "decode social links")
	}
	*s = out

	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported json column type %T", src)
	}
}
