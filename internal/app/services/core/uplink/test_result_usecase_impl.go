package uplink

import (
	"context"
	"fmt"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/services/core/routing"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/dto/requests"
	"lisagent-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type testResultUsecase struct {
	UplinkClient   contracts.UplinkClient
	Notifier       contracts.NotifierService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewTestResultUsecase(
	uplinkClient contracts.UplinkClient,
	notifier contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TestResultUsecase {
	return &testResultUsecase{
		UplinkClient:   uplinkClient,
		Notifier:       notifier,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// PublishTestResult classifies and delivers one pre-built payload with the
// same routing and notification rules session finalization applies.
func (uc *testResultUsecase) PublishTestResult(ctx context.Context, request *requests.TestResult) (*responses.TestResultOutcome, error) {
	payload := contracts.UplinkPayload{
		VialID:     request.VialID,
		TestType:   request.TestType,
		Results:    request.Results,
		SerialNo:   request.SerialNo,
		ResultTime: request.ResultTime,
	}

	route := routing.Classify(payload.VialID)
	outcome := &responses.TestResultOutcome{
		VialID: payload.VialID,
		Route:  string(route),
	}

	switch route {
	case routing.RoutePrimary:
		delivered := uc.UplinkClient.Deliver(ctx, payload, contracts.UplinkEndpoint{
			URL:    uc.InternalConfig.Uplink.PrimaryURL,
			APIKey: uc.InternalConfig.Uplink.PrimaryAPIKey,
		}, uc.InternalConfig.Uplink.DisableUplink)
		outcome.Outcome = string(delivered)

	case routing.RouteSecondary:
		delivered := uc.UplinkClient.Deliver(ctx, payload, contracts.UplinkEndpoint{
			URL:    uc.InternalConfig.Uplink.SecondaryURL,
			APIKey: uc.InternalConfig.Uplink.SecondaryAPIKey,
		}, uc.InternalConfig.Uplink.DisableUplink)
		outcome.Outcome = string(delivered)
		if delivered == contracts.OutcomeUploaded {
			uc.Notifier.Notify(ctx, fmt.Sprintf("testid: %s sent!", payload.VialID))
		}

	case routing.RouteSkip:
		uc.Log.Info("testResultUsecase.PublishTestResult payload skipped",
			zap.String(constvars.LoggingVialIDKey, payload.VialID),
		)
	}

	return outcome, nil
}
