package service

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/logging"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

// CreateNotification stores n under its nid, replacing an earlier
// notification with the same nid, and returns it with Datetime set.
func CreateNotification(n model.Notification) (model.Notification, error) {
	err := n.Validate()
	if err != nil {
		return model.Notification{}, err
	}

	n.Datetime = time.Now().UTC().UnixNano()

	item, err := dynamodbattribute.MarshalMap(n)
	if err != nil {
		return model.Notification{}, err
	}

	_, err = DynamoDB().PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(NotificationTableName),
		Item:      item,
	})
	if err != nil {
		return model.Notification{}, err
	}

	return n, nil
}

// PushNotification delivers n to the inbox of every distinct positive uid.
func PushNotification(n model.Notification, uids []int64, hooks HookFirer) error {
	uids = uniquePositiveUids(uids)
	if len(uids) == 0 {
		return nil
	}

	requests := make([]*dynamodb.WriteRequest, 0, len(uids))
	for _, uid := range uids {
		item, err := dynamodbattribute.MarshalMap(model.UserNotification{
			Uid:      uid,
			Nid:      n.Nid,
			Datetime: n.Datetime,
		})
		if err != nil {
			return err
		}

		requests = append(requests, &dynamodb.WriteRequest{
			PutRequest: &dynamodb.PutRequest{Item: item},
		})
	}

	err := BatchWriteItems(UserNotificationTableName, requests)
	if err != nil {
		return err
	}

	logging.Log.Debug().Str("nid", n.Nid).Int("count", len(uids)).Msg("notification pushed")

	if hooks != nil {
		hooks.Fire(model.HookNotificationPushed, model.NotificationHookData{
			Notification: n,
			Uids:         uids,
		})
	}

	return nil
}

func uniquePositiveUids(uids []int64) []int64 {
	seen := make(map[int64]struct{}, len(uids))
	result := make([]int64, 0, len(uids))

	for _, uid := range uids {
		if uid <= 0 {
			continue
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		result = append(result, uid)
	}

	return result
}

// dynamoNotifier stores notifications in DynamoDB and announces pushes on hooks.
type dynamoNotifier struct {
	hooks HookFirer
}

func (dynamoNotifier) Create(n model.Notification) (model.Notification, error) {
	return CreateNotification(n)
}

func (d dynamoNotifier) Push(n model.Notification, uids []int64) error {
	return PushNotification(n, uids, d.hooks)
}
