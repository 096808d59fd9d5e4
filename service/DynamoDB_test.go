package service

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
)

func canceled(codes ...string) error {
	reasons := make([]*dynamodb.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = &dynamodb.CancellationReason{Code: aws.String(code)}
	}
	return &dynamodb.TransactionCanceledException{
		Message_:            aws.String("Transaction cancelled"),
		CancellationReasons: reasons,
	}
}

func TestIsConditionalCheckFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"conditional check", awserr.New(dynamodb.ErrCodeConditionalCheckFailedException, "failed", nil), true},
		{"throughput", awserr.New(dynamodb.ErrCodeProvisionedThroughputExceededException, "slow down", nil), false},
		{"transaction condition", canceled("None", "ConditionalCheckFailed"), true},
		{"transaction conflict", canceled("TransactionConflict", "None"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConditionalCheckFailed(tt.err))
		})
	}
}

func TestFailedConditionIndexes(t *testing.T) {
	assert.Equal(t, []int{0, 2}, FailedConditionIndexes(canceled("ConditionalCheckFailed", "None", "ConditionalCheckFailed")))
	assert.Empty(t, FailedConditionIndexes(canceled("None")))
	assert.Nil(t, FailedConditionIndexes(errors.New("boom")))
	assert.Nil(t, FailedConditionIndexes(nil))
}

func TestChunkWriteRequests(t *testing.T) {
	requests := make([]*dynamodb.WriteRequest, 60)
	for i := range requests {
		requests[i] = &dynamodb.WriteRequest{}
	}

	chunks := chunkWriteRequests(requests, maxBatchWriteItems)
	if assert.Len(t, chunks, 3) {
		assert.Len(t, chunks[0], 25)
		assert.Len(t, chunks[1], 25)
		assert.Len(t, chunks[2], 10)
		assert.Same(t, requests[59], chunks[2][9])
	}

	assert.Empty(t, chunkWriteRequests(nil, maxBatchWriteItems))
	assert.Len(t, chunkWriteRequests(requests[:25], maxBatchWriteItems), 1)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "group:a:pending", aws.StringValue(StringKey("Key", "group:a:pending")["Key"].S))
	assert.Equal(t, "42", aws.StringValue(Int64Key("Uid", 42)["Uid"].N))

	key := StringInt64Key("GroupName", "a", "Uid", 7)
	assert.Equal(t, "a", aws.StringValue(key["GroupName"].S))
	assert.Equal(t, "7", aws.StringValue(key["Uid"].N))
}
