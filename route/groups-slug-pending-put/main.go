package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

var groups = service.NewGroups()

// Handle lets an owner approve a pending membership request.
func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
	}

	uid, err := util.ParseUid(input.PathParameters["uid"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	group, err := service.GetGroupBySlug(input.PathParameters["slug"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	isOwner, err := service.IsGroupOwner(group.Name, user.Uid)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	if !isOwner {
		return util.NewForbiddenResponse()
	}

	pending, err := groups.IsPending(uid, group.Name)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	if !pending {
		return util.NewErrorResponse(model.NewInputError("uid", "has not requested membership"))
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
