package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupValidate(t *testing.T) {
	tests := []struct {
		name      string
		groupName string
		wantField string
	}{
		{"ok", "Kitchen Staff", ""},
		{"blank", "   ", "name"},
		{"too long", strings.Repeat("a", MaxGroupNameLength+1), "name"},
		{"slash", "a/b", "name"},
		{"no slug", "!!!", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := Group{Name: tt.groupName}
			group.MakeSlug()

			err := group.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			inputError, ok := err.(InputError)
			if assert.True(t, ok, "want InputError, got %v", err) {
				assert.Equal(t, tt.wantField, inputError.Field)
			}
		})
	}
}

func TestGroupPath(t *testing.T) {
	assert.Equal(t, "/groups/kitchen-staff", GroupPath("Kitchen Staff"))
	assert.Equal(t, "/groups/kitchen-staff", Group{Name: "Kitchen Staff"}.Path())
}

func TestSetKeys(t *testing.T) {
	assert.Equal(t, "group:Kitchen Staff:pending", PendingSetKey("Kitchen Staff"))
	assert.Equal(t, "group:Kitchen Staff:invited", InvitedSetKey("Kitchen Staff"))
	assert.Equal(t, "group:Kitchen Staff:owners", OwnersSetKey("Kitchen Staff"))
}
