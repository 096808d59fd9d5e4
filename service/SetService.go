package service

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"golang.org/x/sync/errgroup"
)

// Set items hold a DynamoDB string set under Members. An item whose set
// becomes empty loses the attribute and reads as an empty set.
type setItem struct {
	Key     string
	Members []string `dynamodbav:",stringset,omitempty"`
}

func SetAdd(key string, members []string) error {
	if len(members) == 0 {
		return nil
	}

	_, err := DynamoDB().UpdateItem(&dynamodb.UpdateItemInput{
		TableName:        aws.String(SetTableName),
		Key:              StringKey("Key", key),
		UpdateExpression: aws.String("ADD Members :members"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":members": {SS: aws.StringSlice(members)},
		},
	})

	return err
}

// SetsRemove removes member from every set in keys. Sets that do not exist
// are left alone.
func SetsRemove(keys []string, member string) error {
	var g errgroup.Group

	for _, key := range keys {
		key := key
		g.Go(func() error {
			return setRemove(key, member)
		})
	}

	return g.Wait()
}

func setRemove(key, member string) error {
	_, err := DynamoDB().UpdateItem(&dynamodb.UpdateItemInput{
		TableName:           aws.String(SetTableName),
		Key:                 StringKey("Key", key),
		UpdateExpression:    aws.String("DELETE Members :member"),
		ConditionExpression: aws.String("attribute_exists(#key)"),
		ExpressionAttributeNames: map[string]*string{
			"#key": aws.String("Key"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":member": {SS: aws.StringSlice([]string{member})},
		},
	})

	if IsConditionalCheckFailed(err) {
		return nil
	}

	return err
}

func GetSetMembers(key string) ([]string, error) {
	item := setItem{}
	found, err := GetItemByKey(SetTableName, StringKey("Key", key), &item)
	if err != nil {
		return nil, err
	}

	if !found || item.Members == nil {
		return []string{}, nil
	}

	return item.Members, nil
}

func IsSetMember(key, member string) (bool, error) {
	isMembers, err := IsSetMembers(key, []string{member})
	if err != nil {
		return false, err
	}

	return isMembers[0], nil
}

// IsSetMembers reports, for each of members in order, whether it is in the set.
func IsSetMembers(key string, members []string) ([]bool, error) {
	if len(members) == 0 {
		return []bool{}, nil
	}

	setMembers, err := GetSetMembers(key)
	if err != nil {
		return nil, err
	}

	return containsEach(setMembers, members), nil
}

func DeleteSets(keys []string) error {
	requests := make([]*dynamodb.WriteRequest, 0, len(keys))
	for _, key := range keys {
		requests = append(requests, &dynamodb.WriteRequest{
			DeleteRequest: &dynamodb.DeleteRequest{Key: StringKey("Key", key)},
		})
	}

	return BatchWriteItems(SetTableName, requests)
}

func containsEach(set, values []string) []bool {
	lookup := make(map[string]struct{}, len(set))
	for _, member := range set {
		lookup[member] = struct{}{}
	}

	result := make([]bool, len(values))
	for i, value := range values {
		_, result[i] = lookup[value]
	}
	return result
}

// dynamoSetStore exposes the package-level set functions as a SetStore.
type dynamoSetStore struct{}

func (dynamoSetStore) SetAdd(key string, members []string) error {
	return SetAdd(key, members)
}

func (dynamoSetStore) SetsRemove(keys []string, member string) error {
	return SetsRemove(keys, member)
}

func (dynamoSetStore) IsSetMembers(key string, members []string) ([]bool, error) {
	return IsSetMembers(key, members)
}

func (dynamoSetStore) GetSetMembers(key string) ([]string, error) {
	return GetSetMembers(key)
}
