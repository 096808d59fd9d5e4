package service

import (
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dynamoDBMock struct {
	dynamodbiface.DynamoDBAPI
	mock.Mock
}

// useDynamoDB makes DynamoDB() return m for the rest of the test.
func useDynamoDB(t *testing.T) *dynamoDBMock {
	m := &dynamoDBMock{}
	dynamoDBOnce.Do(func() {})
	dynamoDB = m
	t.Cleanup(func() {
		dynamoDB = nil
		dynamoDBOnce = sync.Once{}
	})
	return m
}

func (m *dynamoDBMock) GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *dynamoDBMock) Query(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.QueryOutput)
	return out, args.Error(1)
}

func (m *dynamoDBMock) UpdateItem(input *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.UpdateItemOutput)
	return out, args.Error(1)
}

func (m *dynamoDBMock) TransactWriteItems(input *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.TransactWriteItemsOutput)
	return out, args.Error(1)
}

func (m *dynamoDBMock) BatchGetItem(input *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.BatchGetItemOutput)
	return out, args.Error(1)
}

func (m *dynamoDBMock) BatchWriteItem(input *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*dynamodb.BatchWriteItemOutput)
	return out, args.Error(1)
}

func item(t *testing.T, in interface{}) map[string]*dynamodb.AttributeValue {
	t.Helper()
	av, err := dynamodbattribute.MarshalMap(in)
	require.NoError(t, err)
	return av
}

func onTable(table string) interface{} {
	return mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return aws.StringValue(input.TableName) == table
	})
}
