package main

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideMembership(t *testing.T) {
	tests := []struct {
		name       string
		member     bool
		invited    bool
		private    bool
		wantAction membershipAction
		wantStatus string
	}{
		{"member of private group", true, false, true, actionNone, StatusMember},
		{"member of public group", true, false, false, actionNone, StatusMember},
		{"member with stale invite", true, true, true, actionNone, StatusMember},
		{"invited to private group", false, true, true, actionAccept, StatusMember},
		{"invited to public group", false, true, false, actionAccept, StatusMember},
		{"stranger to private group", false, false, true, actionRequest, StatusPending},
		{"stranger to public group", false, false, false, actionJoin, StatusMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, status := decideMembership(tt.member, tt.invited, tt.private)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestHandleRejectsMissingToken(t *testing.T) {
	response, err := Handle(events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"slug": "kitchen-staff"},
	})
	require.NoError(t, err)
	assert.Equal(t, 401, response.StatusCode)
}
