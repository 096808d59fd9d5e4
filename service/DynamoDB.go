package service

import (
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/config"
)

var (
	GroupTableName            = config.MustGet().TableName("Group")
	GroupSlugTableName        = config.MustGet().TableName("GroupSlug")
	MembershipsTableName      = config.MustGet().TableName("Membership")
	SetTableName              = config.MustGet().TableName("Set")
	UserTableName             = config.MustGet().TableName("User")
	UsernameUserTableName     = config.MustGet().TableName("UsernameUser")
	NotificationTableName     = config.MustGet().TableName("Notification")
	UserNotificationTableName = config.MustGet().TableName("UserNotification")
)

// DynamoDB limits on a single batch call.
const (
	maxBatchGetItems   = 100
	maxBatchWriteItems = 25
)

var (
	awsSessionOnce sync.Once
	awsSession     *session.Session

	dynamoDBOnce sync.Once
	dynamoDB     dynamodbiface.DynamoDBAPI
)

func AWSSession() *session.Session {
	awsSessionOnce.Do(func() {
		cfg := config.MustGet()
		awsSession = session.Must(session.NewSession(aws.NewConfig().WithRegion(cfg.Region)))
	})
	return awsSession
}

func DynamoDB() dynamodbiface.DynamoDBAPI {
	dynamoDBOnce.Do(func() {
		awsConfig := aws.NewConfig()
		if endpoint := config.MustGet().DynamoDBEndpoint; endpoint != "" {
			awsConfig = awsConfig.WithEndpoint(endpoint)
		}
		dynamoDB = dynamodb.New(AWSSession(), awsConfig)
	})
	return dynamoDB
}

func StringKey(key, value string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		key: {S: aws.String(value)},
	}
}

func Int64Key(key string, value int64) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		key: {N: aws.String(strconv.FormatInt(value, 10))},
	}
}

func StringInt64Key(hashKey, hashValue, rangeKey string, rangeValue int64) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		hashKey:  {S: aws.String(hashValue)},
		rangeKey: {N: aws.String(strconv.FormatInt(rangeValue, 10))},
	}
}

// GetItemByKey reads one item into out and reports whether it exists.
func GetItemByKey(tableName string, key map[string]*dynamodb.AttributeValue, out interface{}) (bool, error) {
	response, err := DynamoDB().GetItem(&dynamodb.GetItemInput{
		TableName:      aws.String(tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}

	if response.Item == nil {
		return false, nil
	}

	err = dynamodbattribute.UnmarshalMap(response.Item, out)
	if err != nil {
		return false, err
	}

	return true, nil
}

// QueryItems follows LastEvaluatedKey until offset+limit items are read (or
// the query is exhausted) and returns the items after offset.
func QueryItems(query *dynamodb.QueryInput, offset, limit int) ([]map[string]*dynamodb.AttributeValue, error) {
	items := make([]map[string]*dynamodb.AttributeValue, 0, offset+limit)

	for len(items) < offset+limit {
		response, err := DynamoDB().Query(query)
		if err != nil {
			return nil, err
		}

		items = append(items, response.Items...)

		if response.LastEvaluatedKey == nil {
			break
		}
		query.ExclusiveStartKey = response.LastEvaluatedKey
	}

	if len(items) <= offset {
		return nil, nil
	}

	if len(items) > offset+limit {
		items = items[:offset+limit]
	}

	return items[offset:], nil
}

// BatchWriteItems writes requests in chunks DynamoDB accepts and resubmits
// unprocessed items until none remain.
func BatchWriteItems(tableName string, requests []*dynamodb.WriteRequest) error {
	for _, chunk := range chunkWriteRequests(requests, maxBatchWriteItems) {
		pending := map[string][]*dynamodb.WriteRequest{tableName: chunk}

		for len(pending) > 0 {
			response, err := DynamoDB().BatchWriteItem(&dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = response.UnprocessedItems
		}
	}

	return nil
}

func chunkWriteRequests(requests []*dynamodb.WriteRequest, size int) [][]*dynamodb.WriteRequest {
	chunks := make([][]*dynamodb.WriteRequest, 0, (len(requests)+size-1)/size)
	for size < len(requests) {
		requests, chunks = requests[size:], append(chunks, requests[:size])
	}
	if len(requests) > 0 {
		chunks = append(chunks, requests)
	}
	return chunks
}

func IsConditionalCheckFailed(err error) bool {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return false
	}

	switch aerr.Code() {
	case dynamodb.ErrCodeConditionalCheckFailedException:
		return true
	case dynamodb.ErrCodeTransactionCanceledException:
		return len(FailedConditionIndexes(err)) > 0
	}

	return false
}

// FailedConditionIndexes lists the transaction items whose condition check
// failed, in TransactItems order.
func FailedConditionIndexes(err error) []int {
	canceled, ok := err.(*dynamodb.TransactionCanceledException)
	if !ok {
		return nil
	}

	indexes := make([]int, 0, len(canceled.CancellationReasons))
	for i, reason := range canceled.CancellationReasons {
		if aws.StringValue(reason.Code) == "ConditionalCheckFailed" {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
