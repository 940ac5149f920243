package notifier

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type webhookBody struct {
	Text string `json:"text"`
}

// Worker drains the alerts queue and posts each alert to the chat webhook,
// throttled so a burst of instrument errors cannot flood the channel.
type Worker struct {
	conn           *amqp.Connection
	Log            *zap.Logger
	internalConfig *config.InternalConfig
	httpClient     *http.Client
	limiter        *rate.Limiter
}

func NewWorker(conn *amqp.Connection, logger *zap.Logger, internalConfig *config.InternalConfig) *Worker {
	postsPerMinute := internalConfig.Notifier.PostsPerMinute
	if postsPerMinute <= 0 {
		postsPerMinute = 30
	}
	timeout := time.Duration(internalConfig.Notifier.TimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{
		conn:           conn,
		Log:            logger,
		internalConfig: internalConfig,
		httpClient:     &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(postsPerMinute)), 1),
	}
}

// Run consumes until the context is cancelled or the channel closes.
func (w *Worker) Run(ctx context.Context) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	queueName := w.internalConfig.Notifier.AlertsQueue
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeQueue(err, queueName)
	}

	w.Log.Info("notifier.Worker started",
		zap.String(constvars.LoggingQueueNameKey, queueName),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *Worker) handle(ctx context.Context, delivery amqp.Delivery) {
	var alert AlertMessage
	if err := json.Unmarshal(delivery.Body, &alert); err != nil {
		w.Log.Error("notifier.Worker dropping malformed alert", zap.Error(err))
		_ = delivery.Ack(false)
		return
	}

	cfg := w.internalConfig.Notifier
	if !cfg.WebhookEnabled || cfg.WebhookURL == "" {
		w.Log.Info("notifier.Worker webhook disabled, dropping alert")
		_ = delivery.Ack(false)
		return
	}

	if err := w.limiter.Wait(ctx); err != nil {
		// Shutting down; leave the alert queued for the next run.
		_ = delivery.Nack(false, true)
		return
	}

	w.post(ctx, alert.Message)
	_ = delivery.Ack(false)
}

// post is best effort; a failed webhook call only produces a log line.
func (w *Worker) post(ctx context.Context, message string) {
	text := fmt.Sprintf("%s: %s", w.internalConfig.App.Hostname, message)
	body, err := json.Marshal(webhookBody{Text: text})
	if err != nil {
		w.Log.Error("notifier.Worker marshal failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.internalConfig.Notifier.WebhookURL, bytes.NewReader(body))
	if err != nil {
		w.Log.Error("notifier.Worker request build failed", zap.Error(err))
		return
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	res, err := w.httpClient.Do(req)
	if err != nil {
		w.Log.Error("notifier.Worker webhook post failed", zap.Error(err))
		return
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		w.Log.Error("notifier.Worker webhook rejected alert",
			zap.Int(constvars.LoggingStatusCodeKey, res.StatusCode),
		)
		return
	}

	w.Log.Info("notifier.Worker alert delivered")
}
