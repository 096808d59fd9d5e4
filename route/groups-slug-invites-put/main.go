package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

var groups = service.NewGroups()

// Handle lets an invited user accept their own invitation.
func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
	}

	uid, err := util.ParseUid(input.PathParameters["uid"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	if uid != user.Uid {
		return util.NewForbiddenResponse()
	}

	group, err := service.GetGroupBySlug(input.PathParameters["slug"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	invited, err := groups.IsInvited(uid, group.Name)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	if !invited {
		return util.NewErrorResponse(model.NewInputError("uid", "has not been invited"))
	}

	err = groups.AcceptMembership(group.Name, uid)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	return util.NewSuccessResponse(204, nil)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
