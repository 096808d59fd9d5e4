package service

import (
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/logging"
)

// HookListener handles one fired hook. Its error is logged, never returned
// to whoever fired the hook.
type HookListener func(name string, data interface{}) error

type HookBus struct {
	mu        sync.RWMutex
	listeners map[string][]HookListener
	all       []HookListener
}

func NewHookBus() *HookBus {
	return &HookBus{listeners: make(map[string][]HookListener)}
}

// Register adds a listener for name. An empty name listens to every hook.
func (b *HookBus) Register(name string, listener HookListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if name == "" {
		b.all = append(b.all, listener)
		return
	}
	b.listeners[name] = append(b.listeners[name], listener)
}

// Fire runs the listeners of name, then the catch-all listeners, in
// registration order.
func (b *HookBus) Fire(name string, data interface{}) {
	b.mu.RLock()
	listeners := make([]HookListener, 0, len(b.listeners[name])+len(b.all))
	listeners = append(listeners, b.listeners[name]...)
	listeners = append(listeners, b.all...)
	b.mu.RUnlock()

	logging.Log.Debug().Str("hook", name).Int("listeners", len(listeners)).Msg("firing hook")

	for _, listener := range listeners {
		if err := listener(name, data); err != nil {
			logging.Log.Error().Err(err).Str("hook", name).Msg("hook listener failed")
		}
	}
}

type hookMessage struct {
	Hook string      `json:"hook"`
	Data interface{} `json:"data"`
}

// NewTopicPublisher returns a listener publishing every hook to an SNS topic.
func NewTopicPublisher(client snsiface.SNSAPI, topicArn string) HookListener {
	return func(name string, data interface{}) error {
		body, err := json.Marshal(hookMessage{Hook: name, Data: data})
		if err != nil {
			return err
		}

		_, err = client.Publish(&sns.PublishInput{
			TopicArn: aws.String(topicArn),
			Message:  aws.String(string(body)),
			MessageAttributes: map[string]*sns.MessageAttributeValue{
				"hook": {
					DataType:    aws.String("String"),
					StringValue: aws.String(name),
				},
			},
		})
		return err
	}
}

var (
	snsOnce   sync.Once
	snsClient snsiface.SNSAPI
)

func SNS() snsiface.SNSAPI {
	snsOnce.Do(func() {
		snsClient = sns.New(AWSSession())
	})
	return snsClient
}
