package util

import (
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/logging"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin": "*",
	"Content-Type":                "application/json",
}

type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

func NewSuccessResponse(statusCode int, body interface{}) (events.APIGatewayProxyResponse, error) {
	if body == nil {
		return events.APIGatewayProxyResponse{
			StatusCode: statusCode,
			Headers:    CORSHeaders,
		}, nil
	}

	b, err := json.Marshal(body)
	if err != nil {
		return NewErrorResponse(err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    CORSHeaders,
		Body:       string(b),
	}, nil
}

func newMessageResponse(statusCode int, field, message string) (events.APIGatewayProxyResponse, error) {
	b, _ := json.Marshal(ErrorResponse{
		Errors: map[string][]string{field: {message}},
	})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    CORSHeaders,
		Body:       string(b),
	}, nil
}

// NewErrorResponse maps validation errors to 422, missing groups and users
// to 404, privilege errors to 403 and anything else to a logged 500.
func NewErrorResponse(err error) (events.APIGatewayProxyResponse, error) {
	var inputError model.InputError
	if errors.As(err, &inputError) {
		return newMessageResponse(422, inputError.Field, inputError.Message)
	}

	switch {
	case errors.Is(err, model.ErrNoGroup):
		return newMessageResponse(404, "group", err.Error())
	case errors.Is(err, model.ErrNotFound):
		return newMessageResponse(404, "body", err.Error())
	case errors.Is(err, model.ErrForbidden):
		return newMessageResponse(403, "body", err.Error())
	}

	logging.Log.Error().Err(err).Msg("request failed")
	return newMessageResponse(500, "body", "internal error")
}

func NewUnauthorizedResponse() (events.APIGatewayProxyResponse, error) {
	return newMessageResponse(401, "body", "unauthorized")
}

func NewForbiddenResponse() (events.APIGatewayProxyResponse, error) {
	return NewErrorResponse(model.ErrForbidden)
}
