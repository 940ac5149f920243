package sessions

import (
	"context"
	"errors"
	"io"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/services/core/dispatcher"

	"go.uber.org/zap"
)

// SessionRunner drains one record source through a fresh dispatcher,
// answering the transport handshake with each accept decision. Malformed
// records are rejected and skipped; the stream itself keeps going.
type SessionRunner struct {
	Factory *dispatcher.Factory
	Log     *zap.Logger
}

func NewSessionRunner(factory *dispatcher.Factory, logger *zap.Logger) *SessionRunner {
	return &SessionRunner{
		Factory: factory,
		Log:     logger,
	}
}

// Run consumes the source until terminator or stream end. The returned
// dispatcher exposes the session outcome; the error is non-nil only for a
// rejected header, which aborts the whole session.
func (r *SessionRunner) Run(ctx context.Context, source contracts.RecordSource) (*dispatcher.Dispatcher, error) {
	d := r.Factory.NewDispatcher()

	for {
		record, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.Log.Error("sessionRunner.Run rejecting malformed record", zap.Error(err))
			if ackErr := source.Ack(ctx, false); ackErr != nil {
				r.Log.Error("sessionRunner.Run ack failed", zap.Error(ackErr))
			}
			continue
		}

		accepted, err := d.Dispatch(ctx, record)
		if ackErr := source.Ack(ctx, accepted); ackErr != nil {
			r.Log.Error("sessionRunner.Run ack failed", zap.Error(ackErr))
		}
		if err != nil {
			return d, err
		}
		if d.State() == dispatcher.StateClosed {
			break
		}
	}
	return d, nil
}
