package republish

import (
	"context"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/services/core/uplink"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/dto/responses"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type republishUsecase struct {
	DatagramRepository contracts.DatagramRepository
	UplinkClient       contracts.UplinkClient
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewRepublishUsecase(
	datagramMongoRepository contracts.DatagramRepository,
	uplinkClient contracts.UplinkClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RepublishUsecase {
	return &republishUsecase{
		DatagramRepository: datagramMongoRepository,
		UplinkClient:       uplinkClient,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

// Republish selects unsent primary-route datagrams past the completion
// cutoff and retries each upload once. Successful retries are marked
// uploaded; the rest stay eligible for the next run.
func (uc *republishUsecase) Republish(ctx context.Context) (*responses.RepublishSummary, error) {
	cutoff, err := utils.ParseLisTimestamp(uc.InternalConfig.Republish.CompletionCutoff)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	candidates, err := uc.DatagramRepository.FindRepublishCandidates(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("republishUsecase.Republish candidates selected",
		zap.Int(constvars.LoggingCandidateCountKey, len(candidates)),
	)

	summary := &responses.RepublishSummary{Candidates: len(candidates)}
	endpoint := contracts.UplinkEndpoint{
		URL:    uc.InternalConfig.Uplink.PrimaryURL,
		APIKey: uc.InternalConfig.Uplink.PrimaryAPIKey,
	}

	for i := range candidates {
		datagram := &candidates[i]
		payload := uplink.BuildPayload(uc.Log, datagram)

		outcome := uc.UplinkClient.Deliver(ctx, payload, endpoint, uc.InternalConfig.Uplink.DisableUplink)
		if outcome != contracts.OutcomeUploaded {
			summary.Failed++
			continue
		}

		if err := uc.DatagramRepository.MarkUploaded(ctx, datagram.ID.Hex()); err != nil {
			uc.Log.Error("republishUsecase.Republish mark uploaded failed",
				zap.String(constvars.LoggingDatagramIDKey, datagram.ID.Hex()),
				zap.Error(err),
			)
			summary.Failed++
			continue
		}
		summary.Republished++
	}

	uc.Log.Info("republishUsecase.Republish finished",
		zap.Int(constvars.LoggingCandidateCountKey, summary.Candidates),
		zap.Int("republished", summary.Republished),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
