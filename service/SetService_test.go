package service

import (
	"testing"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsEach(t *testing.T) {
	set := []string{"3", "5", "8"}

	assert.Equal(t, []bool{true, false, true, true}, containsEach(set, []string{"5", "4", "8", "5"}))
	assert.Equal(t, []bool{false}, containsEach(nil, []string{"1"}))
	assert.Equal(t, []bool{}, containsEach(set, nil))
}

func TestSetItemUnmarshal(t *testing.T) {
	item := map[string]*dynamodb.AttributeValue{
		"Key":     {S: stringPtr("group:a:pending")},
		"Members": {SS: []*string{stringPtr("7"), stringPtr("9")}},
	}

	decoded := setItem{}
	require.NoError(t, dynamodbattribute.UnmarshalMap(item, &decoded))
	assert.Equal(t, "group:a:pending", decoded.Key)
	assert.ElementsMatch(t, []string{"7", "9"}, decoded.Members)

	emptied := setItem{}
	require.NoError(t, dynamodbattribute.UnmarshalMap(map[string]*dynamodb.AttributeValue{
		"Key": {S: stringPtr("group:a:pending")},
	}, &emptied))
	assert.Nil(t, emptied.Members)
}

func stringPtr(s string) *string {
	return &s
}
