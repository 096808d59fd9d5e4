package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
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

	err = service.DeleteGroup(group)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	return util.NewSuccessResponse(204, nil)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
