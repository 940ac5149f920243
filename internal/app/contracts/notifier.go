package contracts

import "context"

// NotifierService delivers best-effort operator alerts. Failures are logged
// by the implementation and never propagated.
type NotifierService interface {
	Notify(ctx context.Context, message string)
}
