package service

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
)

// PutGroup stores a new group and makes its creator the first owner and member.
func PutGroup(group *model.Group) error {
	group.MakeSlug()

	err := group.Validate()
	if err != nil {
		return err
	}

	groupItem, err := dynamodbattribute.MarshalMap(group)
	if err != nil {
		return err
	}

	membershipItem, err := dynamodbattribute.MarshalMap(model.Membership{
		GroupName: group.Name,
		Uid:       group.OwnerUid,
		JoinedAt:  group.CreatedAt,
	})
	if err != nil {
		return err
	}

	groupSlugItem, err := dynamodbattribute.MarshalMap(model.GroupSlug{
		Slug: group.Slug,
		Name: group.Name,
	})
	if err != nil {
		return err
	}

	groupItem["MemberCount"] = &dynamodb.AttributeValue{N: aws.String("1")}

	transactItems := []*dynamodb.TransactWriteItem{
		{
			Put: &dynamodb.Put{
				TableName:                aws.String(GroupTableName),
				Item:                     groupItem,
				ConditionExpression:      aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]*string{"#name": aws.String("Name")},
			},
		},
		{
			Put: &dynamodb.Put{
				TableName:           aws.String(GroupSlugTableName),
				Item:                groupSlugItem,
				ConditionExpression: aws.String("attribute_not_exists(Slug)"),
			},
		},
		{
			Put: &dynamodb.Put{
				TableName: aws.String(MembershipsTableName),
				Item:      membershipItem,
			},
		},
		{
			Update: &dynamodb.Update{
				TableName:        aws.String(SetTableName),
				Key:              StringKey("Key", model.OwnersSetKey(group.Name)),
				UpdateExpression: aws.String("ADD Members :owner"),
				ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
					":owner": {SS: aws.StringSlice([]string{uidMember(group.OwnerUid)})},
				},
			},
		},
	}

	_, err = DynamoDB().TransactWriteItems(&dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})

	// Either the name or its slug is in use
	if IsConditionalCheckFailed(err) {
		return model.NewInputError("name", "has already been taken")
	}

	if err != nil {
		return err
	}

	group.MemberCount = 1
	return nil
}

func GetGroupByName(groupName string) (model.Group, error) {
	group := model.Group{}
	found, err := GetItemByKey(GroupTableName, StringKey("Name", groupName), &group)

	if err != nil {
		return model.Group{}, err
	}

	if !found {
		return model.Group{}, model.ErrNoGroup
	}

	return group, nil
}

func GetGroupBySlug(slug string) (model.Group, error) {
	if slug == "" {
		return model.Group{}, model.NewInputError("slug", "not specified")
	}

	groupSlug := model.GroupSlug{}
	found, err := GetItemByKey(GroupSlugTableName, StringKey("Slug", slug), &groupSlug)
	if err != nil {
		return model.Group{}, err
	}

	if !found {
		return model.Group{}, model.ErrNoGroup
	}

	return GetGroupByName(groupSlug.Name)
}

func GroupExists(groupName string) (bool, error) {
	if groupName == "" {
		return false, nil
	}

	_, err := GetGroupByName(groupName)
	if err == model.ErrNoGroup {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// Name and slug are the group's identity and never change here.
func UpdateGroup(oldGroup model.Group, newGroup *model.Group) error {
	newGroup.Name = oldGroup.Name
	newGroup.Slug = oldGroup.Slug

	err := newGroup.Validate()
	if err != nil {
		return err
	}

	expr, changed, err := buildGroupUpdateExpression(oldGroup, *newGroup)
	if err != nil {
		return err
	}

	// No field changed
	if !changed {
		return nil
	}

	names := expr.Names()
	names["#name"] = aws.String("Name")

	_, err = DynamoDB().UpdateItem(&dynamodb.UpdateItemInput{
		TableName:                 aws.String(GroupTableName),
		Key:                       StringKey("Name", oldGroup.Name),
		ConditionExpression:       aws.String("attribute_exists(#name)"),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: expr.Values(),
	})

	if IsConditionalCheckFailed(err) {
		return model.ErrNoGroup
	}

	return err
}

func buildGroupUpdateExpression(oldGroup model.Group, newGroup model.Group) (expression.Expression, bool, error) {
	update := expression.UpdateBuilder{}
	changed := false

	if oldGroup.Description != newGroup.Description {
		update = update.Set(expression.Name("Description"), expression.Value(newGroup.Description))
		changed = true
	}

	if oldGroup.Private != newGroup.Private {
		update = update.Set(expression.Name("Private"), expression.Value(newGroup.Private))
		changed = true
	}

	if !changed {
		return expression.Expression{}, false, nil
	}

	if oldGroup.UpdatedAt != newGroup.UpdatedAt {
		update = update.Set(expression.Name("UpdatedAt"), expression.Value(newGroup.UpdatedAt))
	}

	builder := expression.NewBuilder().WithUpdate(update)
	expr, err := builder.Build()
	return expr, true, err
}

// DeleteGroup removes the group item, releases its slug, and deletes its
// pending/invited/owners sets and every membership row.
func DeleteGroup(group model.Group) error {
	memberships, err := GetMembershipsByGroupName(group.Name)
	if err != nil {
		return err
	}

	if group.Slug == "" {
		group.MakeSlug()
	}

	transactItems := []*dynamodb.TransactWriteItem{
		{
			Delete: &dynamodb.Delete{
				TableName: aws.String(GroupTableName),
				Key:       StringKey("Name", group.Name),
			},
		},
		{
			Delete: &dynamodb.Delete{
				TableName: aws.String(GroupSlugTableName),
				Key:       StringKey("Slug", group.Slug),
			},
		},
	}

	for _, key := range groupSetKeys(group.Name) {
		transactItems = append(transactItems, &dynamodb.TransactWriteItem{
			Delete: &dynamodb.Delete{
				TableName: aws.String(SetTableName),
				Key:       StringKey("Key", key),
			},
		})
	}

	_, err = DynamoDB().TransactWriteItems(&dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		return err
	}

	requests := make([]*dynamodb.WriteRequest, 0, len(memberships))
	for _, membership := range memberships {
		requests = append(requests, &dynamodb.WriteRequest{
			DeleteRequest: &dynamodb.DeleteRequest{
				Key: StringInt64Key("GroupName", membership.GroupName, "Uid", membership.Uid),
			},
		})
	}

	return BatchWriteItems(MembershipsTableName, requests)
}

func groupSetKeys(groupName string) []string {
	return []string{
		model.PendingSetKey(groupName),
		model.InvitedSetKey(groupName),
		model.OwnersSetKey(groupName),
	}
}

func GetOwners(groupName string) ([]int64, error) {
	members, err := GetSetMembers(model.OwnersSetKey(groupName))
	if err != nil {
		return nil, err
	}

	return membersToUids(members), nil
}

func IsGroupOwner(groupName string, uid int64) (bool, error) {
	if uid <= 0 {
		return false, nil
	}
	return IsSetMember(model.OwnersSetKey(groupName), uidMember(uid))
}

// JoinGroup adds uid to the group's members. Joining twice is a no-op.
func JoinGroup(groupName string, uid int64) error {
	if uid <= 0 {
		return model.NewInputError("uid", "must be positive")
	}

	membershipItem, err := dynamodbattribute.MarshalMap(model.Membership{
		GroupName: groupName,
		Uid:       uid,
		JoinedAt:  time.Now().UTC().UnixNano(),
	})
	if err != nil {
		return err
	}

	transactItems := []*dynamodb.TransactWriteItem{
		{
			Put: &dynamodb.Put{
				TableName:           aws.String(MembershipsTableName),
				Item:                membershipItem,
				ConditionExpression: aws.String("attribute_not_exists(Uid)"),
			},
		},
		{
			Update: &dynamodb.Update{
				TableName:                aws.String(GroupTableName),
				Key:                      StringKey("Name", groupName),
				ConditionExpression:      aws.String("attribute_exists(#name)"),
				UpdateExpression:         aws.String("ADD MemberCount :one"),
				ExpressionAttributeNames: map[string]*string{"#name": aws.String("Name")},
				ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
					":one": {N: aws.String("1")},
				},
			},
		},
	}

	_, err = DynamoDB().TransactWriteItems(&dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})

	for _, index := range FailedConditionIndexes(err) {
		if index == 1 {
			return model.ErrNoGroup
		}
	}

	if IsConditionalCheckFailed(err) {
		return nil
	}

	return err
}

func uidMember(uid int64) string {
	return strconv.FormatInt(uid, 10)
}

func uidMembers(uids []int64) []string {
	members := make([]string, len(uids))
	for i, uid := range uids {
		members[i] = uidMember(uid)
	}
	return members
}

// membersToUids skips members that are not decimal uids.
func membersToUids(members []string) []int64 {
	uids := make([]int64, 0, len(members))
	for _, member := range members {
		uid, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		uids = append(uids, uid)
	}
	return uids
}

// dynamoGroupDirectory exposes the group functions as a GroupDirectory.
type dynamoGroupDirectory struct{}

func (dynamoGroupDirectory) Exists(groupName string) (bool, error) {
	return GroupExists(groupName)
}

func (dynamoGroupDirectory) IsMembers(uids []int64, groupName string) ([]bool, error) {
	return IsMembers(uids, groupName)
}

func (dynamoGroupDirectory) GetOwners(groupName string) ([]int64, error) {
	return GetOwners(groupName)
}

func (dynamoGroupDirectory) Join(groupName string, uid int64) error {
	return JoinGroup(groupName, uid)
}
