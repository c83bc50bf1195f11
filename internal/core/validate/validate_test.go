package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("alice"))
	assert.Error(t, Username(""))
	assert.Error(t, Username("   "))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("pw"))
	assert.Error(t, Password(""))
}

func TestTitle(t *testing.T) {
	assert.NoError(t, Title("Buy milk"))
	assert.Error(t, Title(""))
	assert.Error(t, Title("\t "))
}

func TestFieldValidators(t *testing.T) {
	assert.NoError(t, UsernameField("username", "alice"))
	assert.Error(t, UsernameField("username", ""))
	assert.NoError(t, PasswordField("password", "pw"))
	assert.Error(t, PasswordField("password", ""))
	assert.NoError(t, TitleField("title", "t"))
	assert.Error(t, TitleField("title", " "))
}
