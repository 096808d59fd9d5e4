package main

import (
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

type Request struct {
	Group GroupRequest `json:"group"`
}

type GroupRequest struct {
	Description *string `json:"description"`
	Private     *bool   `json:"private"`
}

type Response struct {
	Group GroupResponse `json:"group"`
}

type GroupResponse struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	OwnerUid    int64  `json:"ownerUid"`
	MemberCount int64  `json:"memberCount"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	user, _, err := service.GetCurrentUser(input.Headers["Authorization"])
	if err != nil {
		return util.NewUnauthorizedResponse()
	}

	oldGroup, err := service.GetGroupBySlug(input.PathParameters["slug"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	isOwner, err := service.IsGroupOwner(oldGroup.Name, user.Uid)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	if !isOwner {
		return util.NewForbiddenResponse()
	}

	request := Request{}
	err = json.Unmarshal([]byte(input.Body), &request)
	if err != nil {
		return util.NewErrorResponse(model.NewInputError("body", "is not valid json"))
	}

	newGroup := createNewGroup(request, oldGroup)

	err = service.UpdateGroup(oldGroup, &newGroup)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	response := Response{
		Group: GroupResponse{
			Name:        newGroup.Name,
			Slug:        newGroup.Slug,
			Description: newGroup.Description,
			Private:     newGroup.Private,
			OwnerUid:    newGroup.OwnerUid,
			MemberCount: newGroup.MemberCount,
			CreatedAt:   time.Unix(0, newGroup.CreatedAt).UTC().Format(model.TimestampFormat),
			UpdatedAt:   time.Unix(0, newGroup.UpdatedAt).UTC().Format(model.TimestampFormat),
		},
	}

	return util.NewSuccessResponse(200, response)
}

func createNewGroup(request Request, oldGroup model.Group) model.Group {
	newGroup := oldGroup
	newGroup.UpdatedAt = time.Now().UTC().UnixNano()

	if request.Group.Description != nil {
		newGroup.Description = *request.Group.Description
	}

	if request.Group.Private != nil {
		newGroup.Private = *request.Group.Private
	}

	return newGroup
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
