package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := User{Username: "alice"}

	assert.Error(t, user.SetPassword("short"))
	require.NoError(t, user.SetPassword("hunter22"))
	assert.NotEqual(t, []byte("hunter22"), user.PasswordHash)

	assert.True(t, user.CheckPassword("hunter22"))
	assert.False(t, user.CheckPassword("hunter23"))
	assert.NoError(t, user.Validate())
}

func TestUserValidate(t *testing.T) {
	user := User{Username: "a", PasswordHash: []byte("x")}
	assert.Error(t, user.Validate())

	user.Username = "bad<name>"
	assert.Error(t, user.Validate())

	user.Username = "Zoë O_Neil"
	assert.NoError(t, user.Validate())

	user.PasswordHash = nil
	assert.Error(t, user.Validate())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alice", User{Username: "alice"}.DisplayName())
	assert.Equal(t, FormerUserDisplayName, User{}.DisplayName())
}

func TestNotificationValidate(t *testing.T) {
	n := Notification{Type: NotificationTypeGroupInvite}
	assert.Equal(t, ErrNoNotificationId, n.Validate())

	n.Nid = "group:a:uid:1:invite"
	assert.NoError(t, n.Validate())
}
