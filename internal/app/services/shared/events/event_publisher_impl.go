package events

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event is the envelope every domain event is published in.
type Event struct {
	Name       string      `json:"event"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type eventPublisher struct {
	Channel  amqpChannel
	Exchange string
	Log      *zap.Logger
	mu       sync.Mutex
}

func NewEventPublisher(rabbitMQConnection *amqp091.Connection, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &eventPublisher{
		Channel:  channel,
		Exchange: exchange,
		Log:      logger,
	}, nil
}

func (p *eventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(Event{
		Name:       routingKey,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		MessageId:    requestID,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, p.Exchange, routingKey, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("eventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, routingKey),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}

	p.Log.Debug("eventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, routingKey),
	)
	return nil
}

type noopEventPublisher struct {
	Log *zap.Logger
}

// NewNoopEventPublisher is used when events are switched off in configuration.
func NewNoopEventPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopEventPublisher{Log: logger}
}

func (p *noopEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.Log.Debug("noopEventPublisher.Publish skipped",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventKey, routingKey),
	)
	return nil
}
