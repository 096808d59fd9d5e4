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
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
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

	request := Request{}
	err = json.Unmarshal([]byte(input.Body), &request)
	if err != nil {
		return util.NewErrorResponse(model.NewInputError("body", "is not valid json"))
	}

	now := time.Now().UTC()
	nowUnixNano := now.UnixNano()
	nowStr := now.Format(model.TimestampFormat)

	group := model.Group{
		Name:        request.Group.Name,
		Description: request.Group.Description,
		Private:     request.Group.Private,
		CreatedAt:   nowUnixNano,
		UpdatedAt:   nowUnixNano,
		OwnerUid:    user.Uid,
	}

	err = service.PutGroup(&group)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	response := Response{
		Group: GroupResponse{
			Name:        group.Name,
			Slug:        group.Slug,
			Description: group.Description,
			Private:     group.Private,
			OwnerUid:    group.OwnerUid,
			MemberCount: group.MemberCount,
			CreatedAt:   nowStr,
			UpdatedAt:   nowStr,
		},
	}

	return util.NewSuccessResponse(201, response)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
