package contracts

import (
	"context"

	"lisagent-service/internal/pkg/dto/responses"
)

// RepublishUsecase re-drives the primary upload for persisted datagrams that
// never made it upstream. It is invoked by the background worker and by the
// on-demand HTTP trigger.
type RepublishUsecase interface {
	Republish(ctx context.Context) (*responses.RepublishSummary, error)
}
