package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Summary(t *testing.T) {
	id := uuid.New()
	account := &Account{ID: id, Email: "a@x.com", Name: "A", Avatar: "av", PasswordHash: "hash"}

	assert.Equal(t, &OwnerSummary{ID: id, Name: "A", Avatar: "av"}, account.Summary())

	var missing *Account
	assert.Nil(t, missing.Summary())
}
