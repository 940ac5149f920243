package contracts

import (
	"context"
	"time"

	"lisagent-service/internal/app/models"
	"lisagent-service/internal/pkg/dto/responses"
)

// DatagramRepository persists sealed session datagrams. Writes are
// best-effort from the dispatcher's point of view: a returned error is
// logged by the caller and never aborts session closure.
type DatagramRepository interface {
	SaveDatagram(ctx context.Context, datagram *models.Datagram) (datagramID string, err error)
	FindCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Datagram, error)
	// FindRepublishCandidates selects primary-route datagrams with exactly
	// one result, not yet uploaded, whose result completion time is after
	// the cutoff.
	FindRepublishCandidates(ctx context.Context, cutoff time.Time) ([]models.Datagram, error)
	// MarkUploaded flips uploaded=true and uploadError=false.
	MarkUploaded(ctx context.Context, datagramID string) error
}

type DatagramUsecase interface {
	// ListDatagrams returns persisted datagrams created after the optional
	// YYYYMMDDhhmmss cutoff; an empty cutoff lists everything.
	ListDatagrams(ctx context.Context, createdAfter string) ([]responses.Datagram, error)
}
