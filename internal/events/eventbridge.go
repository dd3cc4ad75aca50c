package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"

	"stayhub-backend/internal/logger"
)

// EventBridgeAPI is the subset of the EventBridge client used by the
// publisher, narrowed so tests can substitute a mock.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// EventBridgePublisher publishes events to a named EventBridge bus.
type EventBridgePublisher struct {
	client  EventBridgeAPI
	busName string
	source  string
}

func NewEventBridgePublisher(client EventBridgeAPI, busName, source string) *EventBridgePublisher {
	return &EventBridgePublisher{
		client:  client,
		busName: busName,
		source:  source,
	}
}

func (p *EventBridgePublisher) PublishUserCreated(ctx context.Context, event UserCreated) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event detail: %w", err)
	}

	logger.ExternalServiceCall("eventbridge", "PutEvents", "detail_type", "UserCreated", "user_id", event.UserID)
	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				Time:         aws.Time(time.Now()),
				Source:       aws.String(p.source),
				Resources:    []string{event.UserID},
				DetailType:   aws.String("UserCreated"),
				Detail:       aws.String(string(detail)),
				EventBusName: aws.String(p.busName),
			},
		},
	})
	logger.ExternalServiceResult("eventbridge", "PutEvents", err)
	if err != nil {
		return err
	}
	if out.FailedEntryCount > 0 {
		for _, entry := range out.Entries {
			if entry.ErrorCode != nil {
				return fmt.Errorf("event bus rejected entry: %s: %s", aws.ToString(entry.ErrorCode), aws.ToString(entry.ErrorMessage))
			}
		}
		return fmt.Errorf("event bus rejected %d entries", out.FailedEntryCount)
	}
	return nil
}
