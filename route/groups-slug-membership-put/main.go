package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

const (
	StatusMember  = "member"
	StatusPending = "pending"
)

type Response struct {
	Membership MembershipResponse `json:"membership"`
}

type MembershipResponse struct {
	Group  string `json:"group"`
	Uid    int64  `json:"uid"`
	Status string `json:"status"`
}

type membershipAction int

const (
	actionNone membershipAction = iota
	actionAccept
	actionRequest
	actionJoin
)

var groups = service.NewGroups()

// decideMembership picks what joining means for the current user and the
// status reported back. Existing members are left untouched.
func decideMembership(member, invited, private bool) (membershipAction, string) {
	switch {
	case member:
		return actionNone, StatusMember
	case invited:
		return actionAccept, StatusMember
	case private:
		return actionRequest, StatusPending
	default:
		return actionJoin, StatusMember
	}
}

// Handle joins the current user: an invitation is accepted, a private group
// gets a membership request, a public group is joined directly.
func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
	}

	group, err := service.GetGroupBySlug(input.PathParameters["slug"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	isMembers, err := service.IsMembers([]int64{user.Uid}, group.Name)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	invited := false
	if !isMembers[0] {
		invited, err = groups.IsInvited(user.Uid, group.Name)
		if err != nil {
			return util.NewErrorResponse(err)
		}
	}

	action, status := decideMembership(isMembers[0], invited, group.Private)

	switch action {
	case actionAccept:
		err = groups.AcceptMembership(group.Name, user.Uid)
	case actionRequest:
		err = groups.RequestMembership(group.Name, user.Uid)
	case actionJoin:
		err = groups.RejectMembership([]string{group.Name}, user.Uid)
		if err == nil {
			err = service.JoinGroup(group.Name, user.Uid)
		}
	}

	if err != nil {
		return util.NewErrorResponse(err)
	}

	response := Response{
		Membership: MembershipResponse{
			Group:  group.Name,
			Uid:    user.Uid,
			Status: status,
		},
	}

	return util.NewSuccessResponse(200, response)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
