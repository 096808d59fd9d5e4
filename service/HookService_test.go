package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHookBusOrder(t *testing.T) {
	bus := NewHookBus()
	var calls []string

	bus.Register(model.HookInviteMember, func(name string, data interface{}) error {
		calls = append(calls, "first:"+name)
		return nil
	})
	bus.Register("", func(name string, data interface{}) error {
		calls = append(calls, "all:"+name)
		return nil
	})
	bus.Register(model.HookInviteMember, func(name string, data interface{}) error {
		calls = append(calls, "second:"+name)
		return errors.New("listener failed")
	})

	bus.Fire(model.HookInviteMember, model.GroupHookData{GroupName: "a", Uids: []int64{1}})
	bus.Fire(model.HookRequestMembership, nil)

	assert.Equal(t, []string{
		"first:action:group.inviteMember",
		"second:action:group.inviteMember",
		"all:action:group.inviteMember",
		"all:action:group.requestMembership",
	}, calls)
}

type snsMock struct {
	snsiface.SNSAPI
	mock.Mock
}

func (m *snsMock) Publish(input *sns.PublishInput) (*sns.PublishOutput, error) {
	args := m.Called(input)
	return &sns.PublishOutput{MessageId: aws.String("1")}, args.Error(0)
}

func TestTopicPublisher(t *testing.T) {
	client := &snsMock{}
	var published *sns.PublishInput
	client.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(0).(*sns.PublishInput)
	}).Return(nil).Once()

	bus := NewHookBus()
	bus.Register("", NewTopicPublisher(client, "arn:aws:sns:us-east-1:123456789012:hooks"))
	bus.Fire(model.HookRequestMembership, model.GroupHookData{GroupName: "a", Uids: []int64{7}})

	client.AssertExpectations(t)
	require.NotNil(t, published)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:hooks", aws.StringValue(published.TopicArn))
	assert.Equal(t, model.HookRequestMembership, aws.StringValue(published.MessageAttributes["hook"].StringValue))

	message := struct {
		Hook string              `json:"hook"`
		Data model.GroupHookData `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(aws.StringValue(published.Message)), &message))
	assert.Equal(t, model.HookRequestMembership, message.Hook)
	assert.Equal(t, model.GroupHookData{GroupName: "a", Uids: []int64{7}}, message.Data)
}

func TestTopicPublisherErrorIsNotFatal(t *testing.T) {
	client := &snsMock{}
	client.On("Publish", mock.Anything).Return(errors.New("topic gone")).Once()

	listener := NewTopicPublisher(client, "arn")
	assert.EqualError(t, listener(model.HookInviteMember, nil), "topic gone")

	bus := NewHookBus()
	client.On("Publish", mock.Anything).Return(errors.New("topic gone")).Once()
	bus.Register("", listener)
	assert.NotPanics(t, func() { bus.Fire(model.HookInviteMember, nil) })
	client.AssertExpectations(t)
}
