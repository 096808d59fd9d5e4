package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/dgrijalva/jwt-go"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/config"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

const tokenScheme = "Token "

var errInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Uid int64 `json:"uid"`
	jwt.StandardClaims
}

func PutUser(user *model.User) error {
	err := user.Validate()
	if err != nil {
		return err
	}

	const maxAttempt = 5

	// Try to find a unique uid
	for attempt := 0; ; attempt++ {
		retry, err := putUserWithRandomUid(user)

		if err == nil {
			return nil
		}

		if attempt >= maxAttempt || !retry {
			return err
		}

		UidRand.RenewSeed()
	}
}

// putUserWithRandomUid reports whether a failure was a uid collision worth retrying.
func putUserWithRandomUid(user *model.User) (bool, error) {
	user.Uid = 1 + UidRand.Int63n(model.MaxUid-1) // range: [1, MaxUid)

	userItem, err := dynamodbattribute.MarshalMap(user)
	if err != nil {
		return false, err
	}

	usernameUserItem, err := dynamodbattribute.MarshalMap(model.UsernameUser{
		Username: user.Username,
		Uid:      user.Uid,
	})
	if err != nil {
		return false, err
	}

	transactItems := []*dynamodb.TransactWriteItem{
		{
			Put: &dynamodb.Put{
				TableName:           aws.String(UserTableName),
				Item:                userItem,
				ConditionExpression: aws.String("attribute_not_exists(Uid)"),
			},
		},
		{
			Put: &dynamodb.Put{
				TableName:           aws.String(UsernameUserTableName),
				Item:                usernameUserItem,
				ConditionExpression: aws.String("attribute_not_exists(Username)"),
			},
		},
	}

	_, err = DynamoDB().TransactWriteItems(&dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})

	for _, index := range FailedConditionIndexes(err) {
		if index == 1 {
			return false, model.NewInputError("username", "has already been taken")
		}
	}

	return IsConditionalCheckFailed(err), err
}

func GetUserByUid(uid int64) (model.User, error) {
	user := model.User{}
	found, err := GetItemByKey(UserTableName, Int64Key("Uid", uid), &user)

	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

func GetUserByUsername(username string) (model.User, error) {
	usernameUser := model.UsernameUser{}
	found, err := GetItemByKey(UsernameUserTableName, StringKey("Username", username), &usernameUser)

	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, model.ErrNotFound
	}

	return GetUserByUid(usernameUser.Uid)
}

// GetDisplayName never fails for a deleted user; it returns the former-user
// placeholder instead.
func GetDisplayName(uid int64) (string, error) {
	user, err := GetUserByUid(uid)
	if err == model.ErrNotFound {
		return model.FormerUserDisplayName, nil
	}

	if err != nil {
		return "", err
	}

	return user.DisplayName(), nil
}

func GenerateToken(uid int64) (string, error) {
	cfg := config.MustGet()
	return signToken(uid, cfg.JWTSecret, cfg.TokenTTL, time.Now().UTC())
}

// ParseToken validates an "Authorization: Token <jwt>" header and returns the uid.
func ParseToken(authHeader string) (int64, string, error) {
	return parseToken(authHeader, config.MustGet().JWTSecret)
}

func signToken(uid int64, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET is not configured")
	}

	claims := tokenClaims{
		Uid: uid,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(authHeader, secret string) (int64, string, error) {
	if !strings.HasPrefix(authHeader, tokenScheme) || secret == "" {
		return 0, "", errInvalidToken
	}

	tokenString := strings.TrimPrefix(authHeader, tokenScheme)
	claims := tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	if !token.Valid || claims.Uid <= 0 {
		return 0, "", errInvalidToken
	}

	return claims.Uid, tokenString, nil
}

func GetCurrentUser(authHeader string) (model.User, string, error) {
	uid, token, err := ParseToken(authHeader)
	if err != nil {
		return model.User{}, "", err
	}

	user, err := GetUserByUid(uid)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

// dynamoUserDirectory exposes the user functions as a UserDirectory.
type dynamoUserDirectory struct{}

func (dynamoUserDirectory) GetDisplayName(uid int64) (string, error) {
	return GetDisplayName(uid)
}
