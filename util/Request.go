package util

import (
	"strconv"

	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

// ParseUid reads a uid path parameter.
func ParseUid(s string) (int64, error) {
	uid, err := strconv.ParseInt(s, 10, 64)
	if err != nil || uid <= 0 {
		return 0, model.NewInputError("uid", "must be a positive integer")
	}
	return uid, nil
}
