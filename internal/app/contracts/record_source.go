package contracts

import (
	"context"

	"lisagent-service/internal/app/services/core/records"
)

// RecordSource is the typed record stream handed over by the transport
// layer. Next yields one parsed record per call and returns io.EOF when the
// session stream is exhausted; Ack reports the dispatcher's accept/reject
// decision back to the transport so it can answer the line-level handshake.
type RecordSource interface {
	Next(ctx context.Context) (records.Record, error)
	Ack(ctx context.Context, accepted bool) error
}
