package dispatcher

import (
	"context"

	"lisagent-service/internal/app/services/core/records"
)

// Acceptor is the external accept/reject collaborator behind the line-level
// handshake. Header refusal aborts the session; patient approval is advisory
// and gates whether later order/comment/result records are applied.
type Acceptor interface {
	AcceptHeader(ctx context.Context, record *records.HeaderRecord) bool
	AcceptPatient(ctx context.Context, record *records.PatientRecord) bool
}

type acceptAll struct{}

func (acceptAll) AcceptHeader(ctx context.Context, record *records.HeaderRecord) bool {
	return true
}

func (acceptAll) AcceptPatient(ctx context.Context, record *records.PatientRecord) bool {
	return true
}

// NewAcceptAllAcceptor returns the default acceptor that approves every
// header and patient record.
func NewAcceptAllAcceptor() Acceptor {
	return acceptAll{}
}
