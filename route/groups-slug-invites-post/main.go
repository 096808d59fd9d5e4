package main

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

type Request struct {
	Invite InviteRequest `json:"invite"`
}

type InviteRequest struct {
	Uids []int64 `json:"uids"`
}

var groups = service.NewGroups()

func parseRequest(body string) (Request, error) {
	request := Request{}
	err := json.Unmarshal([]byte(body), &request)
	if err != nil {
		return Request{}, model.NewInputError("body", "is not valid json")
	}

	if len(request.Invite.Uids) == 0 {
		return Request{}, model.NewInputError("uids", "can't be empty")
	}

	return request, nil
}

// Handle lets an owner invite one or more users.
func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
	}

	request, err := parseRequest(input.Body)
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

	err = groups.Invite(group.Name, request.Invite.Uids)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	return util.NewSuccessResponse(204, nil)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
