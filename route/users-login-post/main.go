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
	User UserRequest `json:"user"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Response struct {
	User UserResponse `json:"user"`
}

type UserResponse struct {
	Uid      int64  `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	request := Request{}
	err := json.Unmarshal([]byte(input.Body), &request)
	if err != nil {
		return util.NewErrorResponse(model.NewInputError("body", "is not valid json"))
	}

	user, err := service.GetUserByUsername(request.User.Username)
	if err == model.ErrNotFound {
		return util.NewErrorResponse(model.NewInputError("username or password", "is invalid"))
	}

	if err != nil {
		return util.NewErrorResponse(err)
	}

	if !user.CheckPassword(request.User.Password) {
		return util.NewErrorResponse(model.NewInputError("username or password", "is invalid"))
	}

	token, err := service.GenerateToken(user.Uid)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	response := Response{
		User: UserResponse{
			Uid:      user.Uid,
			Username: user.Username,
			Email:    user.Email,
			Token:    token,
		},
	}

	return util.NewSuccessResponse(200, response)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
