package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/events"
	pktNats "github.com/DeDsEC-7/NoteNest-Api/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic: every event becomes a
// structured audit record, and when NATS is configured the event is
// mirrored there for external consumers. Both sinks are best-effort,
// a failed mirror never blocks the audit trail.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	auditLogger logger.ILogger
	natsMirror  *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditLogger logger.ILogger,
	natsMirror *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		auditLogger: auditLogger,
		natsMirror:  natsMirror,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var env activityEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		// Ack malformed messages to prevent infinite redelivery.
		cs.auditLogger.Error("consumer", "Failed to unmarshal activity event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.auditLogger.Info("activity", env.Type, env.Data)

	if cs.natsMirror != nil {
		evt := events.BaseEvent{
			Type:       env.Type,
			Data:       env.Data,
			OccurredAt: time.Unix(env.OccurredAt, 0),
		}
		if err := cs.natsMirror.Publish(ctx, evt); err != nil {
			cs.auditLogger.Warn("consumer", "Failed to mirror event to NATS", map[string]interface{}{
				"type":  env.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
