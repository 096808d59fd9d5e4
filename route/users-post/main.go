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
	User UserRequest `json:"user"`
}

type UserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
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

	user := model.User{
		Username:  request.User.Username,
		Email:     request.User.Email,
		CreatedAt: time.Now().UTC().UnixNano(),
	}

	err = user.SetPassword(request.User.Password)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	err = service.PutUser(&user)
	if err != nil {
		return util.NewErrorResponse(err)
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

	return util.NewSuccessResponse(201, response)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
