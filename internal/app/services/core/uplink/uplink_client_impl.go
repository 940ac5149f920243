package uplink

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type uplinkClient struct {
	Log        *zap.Logger
	HTTPClient *http.Client
	Notifier   contracts.NotifierService
}

func NewUplinkClient(logger *zap.Logger, internalConfig *config.InternalConfig, notifier contracts.NotifierService) contracts.UplinkClient {
	timeout := time.Duration(internalConfig.Uplink.TimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &uplinkClient{
		Log:        logger,
		HTTPClient: &http.Client{Timeout: timeout},
		Notifier:   notifier,
	}
}

// Deliver performs at most one upload attempt. HTTP 200 is the only success
// status; every other status and every transport failure collapses into
// OutcomeError with the cause category and vial ID logged, followed by an
// operator alert. Retries belong to the republish job, not here.
func (c *uplinkClient) Deliver(ctx context.Context, payload contracts.UplinkPayload, endpoint contracts.UplinkEndpoint, disabled bool) contracts.DeliveryOutcome {
	if disabled {
		c.Log.Info("uplinkClient.Deliver uplink disabled, skipping",
			zap.String(constvars.LoggingVialIDKey, payload.VialID),
		)
		return contracts.OutcomeSkippedByConfig
	}

	outcome := c.send(ctx, payload, endpoint)
	if outcome == contracts.OutcomeError {
		c.Notifier.Notify(ctx, "@channel ERROR Detected!")
	}
	return outcome
}

func (c *uplinkClient) send(ctx context.Context, payload contracts.UplinkPayload, endpoint contracts.UplinkEndpoint) contracts.DeliveryOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		c.logDeliveryError("marshal error", endpoint.URL, payload.VialID, err)
		return contracts.OutcomeError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		c.logDeliveryError("request build error", endpoint.URL, payload.VialID, err)
		return contracts.OutcomeError
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAPIKey, endpoint.APIKey)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logDeliveryError(categorizeTransportError(err), endpoint.URL, payload.VialID, err)
		return contracts.OutcomeError
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.Log.Error("uplinkClient.Deliver HTTP error status",
			zap.Int(constvars.LoggingStatusCodeKey, res.StatusCode),
			zap.String(constvars.LoggingEndpointURLKey, endpoint.URL),
			zap.String(constvars.LoggingVialIDKey, payload.VialID),
		)
		return contracts.OutcomeError
	}

	c.Log.Info("uplinkClient.Deliver succeeded",
		zap.String(constvars.LoggingEndpointURLKey, endpoint.URL),
		zap.String(constvars.LoggingVialIDKey, payload.VialID),
	)
	return contracts.OutcomeUploaded
}

func (c *uplinkClient) logDeliveryError(category, url, vialID string, err error) {
	c.Log.Error("uplinkClient.Deliver "+category,
		zap.String(constvars.LoggingEndpointURLKey, url),
		zap.String(constvars.LoggingVialIDKey, vialID),
		zap.Error(err),
	)
}

// categorizeTransportError names the failure class for the log line. The
// distinction is observability only; every class maps to OutcomeError.
func categorizeTransportError(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection error"
	}
	return "unknown transport error"
}
