package contracts

import (
	"context"

	"lisagent-service/internal/pkg/dto/requests"
	"lisagent-service/internal/pkg/dto/responses"
)

// SessionUsecase runs one complete record session through a fresh
// dispatcher and reports the sealed outcome.
type SessionUsecase interface {
	IngestSession(ctx context.Context, request *requests.IngestSession) (*responses.SessionOutcome, error)
}

// TestResultUsecase routes and uploads one already-built result payload,
// bypassing the session state machine. It backs the loopback endpoint used
// by the republish tooling and manual operations.
type TestResultUsecase interface {
	PublishTestResult(ctx context.Context, request *requests.TestResult) (*responses.TestResultOutcome, error)
}
