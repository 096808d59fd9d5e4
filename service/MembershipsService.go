package service

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

const maxMembershipsPerGroup = 1000

func GetMembershipsByGroupName(groupName string) ([]model.Membership, error) {
	if groupName == "" {
		return nil, model.NewInputError("groupName", "not specified")
	}

	queryMemberships := dynamodb.QueryInput{
		TableName:                 aws.String(MembershipsTableName),
		KeyConditionExpression:    aws.String("GroupName=:groupName"),
		ExpressionAttributeValues: StringKey(":groupName", groupName),
		Limit:                     aws.Int64(int64(maxMembershipsPerGroup)),
	}

	items, err := QueryItems(&queryMemberships, 0, maxMembershipsPerGroup)
	if err != nil {
		return nil, err
	}

	memberships := make([]model.Membership, len(items))
	err = dynamodbattribute.UnmarshalListOfMaps(items, &memberships)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

// IsMembers reports, for each uid in order, whether it is a member of the group.
func IsMembers(uids []int64, groupName string) ([]bool, error) {
	result := make([]bool, len(uids))
	if len(uids) == 0 || groupName == "" {
		return result, nil
	}

	members := make(map[int64]bool, len(uids))

	for start := 0; start < len(uids); start += maxBatchGetItems {
		end := start + maxBatchGetItems
		if end > len(uids) {
			end = len(uids)
		}

		found, err := batchGetMemberships(groupName, uids[start:end])
		if err != nil {
			return nil, err
		}

		for _, membership := range found {
			members[membership.Uid] = true
		}
	}

	for i, uid := range uids {
		result[i] = members[uid]
	}

	return result, nil
}

func batchGetMemberships(groupName string, uids []int64) ([]model.Membership, error) {
	keys := make([]map[string]*dynamodb.AttributeValue, 0, len(uids))
	seen := make(map[int64]bool, len(uids))
	for _, uid := range uids {
		if seen[uid] {
			continue
		}
		seen[uid] = true
		keys = append(keys, StringInt64Key("GroupName", groupName, "Uid", uid))
	}

	pending := map[string]*dynamodb.KeysAndAttributes{
		MembershipsTableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
	}

	memberships := make([]model.Membership, 0, len(keys))

	for len(pending) > 0 {
		response, err := DynamoDB().BatchGetItem(&dynamodb.BatchGetItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return nil, err
		}

		page := make([]model.Membership, 0, len(response.Responses[MembershipsTableName]))
		err = dynamodbattribute.UnmarshalListOfMaps(response.Responses[MembershipsTableName], &page)
		if err != nil {
			return nil, err
		}

		memberships = append(memberships, page...)
		pending = response.UnprocessedKeys
	}

	return memberships, nil
}
