package notifier

import (
	"context"
	"sync"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AlertMessage is the payload queued per operator alert.
type AlertMessage struct {
	Message  string    `json:"message"`
	QueuedAt time.Time `json:"queuedAt"`
}

type notifierService struct {
	ch        *amqp.Channel
	Log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

// NewNotifierService declares the durable alerts queue and returns the
// publishing side. The consuming side lives in the Worker.
func NewNotifierService(conn *amqp.Connection, logger *zap.Logger, internalConfig *config.InternalConfig) (contracts.NotifierService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	queueName := internalConfig.Notifier.AlertsQueue
	_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &notifierService{
		ch:        ch,
		Log:       logger,
		queueName: queueName,
	}, nil
}

// Notify queues one operator alert. Failures are logged and swallowed so a
// broken broker never disturbs session processing.
func (s *notifierService) Notify(ctx context.Context, message string) {
	body, err := json.Marshal(AlertMessage{
		Message:  message,
		QueuedAt: time.Now().UTC(),
	})
	if err != nil {
		s.Log.Error("notifierService.Notify marshal failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		s.Log.Error("notifierService.Notify publish failed",
			zap.String(constvars.LoggingQueueNameKey, s.queueName),
			zap.Error(exceptions.ErrRabbitMQPublishMessage(err, s.queueName)),
		)
		return
	}

	s.Log.Info("notifierService.Notify alert queued",
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
}
