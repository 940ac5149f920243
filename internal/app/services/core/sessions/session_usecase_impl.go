package sessions

import (
	"context"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/services/core/records"
	"lisagent-service/internal/pkg/dto/requests"
	"lisagent-service/internal/pkg/dto/responses"
)

type sessionUsecase struct {
	Runner *SessionRunner
	Parser *records.Parser
}

func NewSessionUsecase(runner *SessionRunner, parser *records.Parser) contracts.SessionUsecase {
	return &sessionUsecase{
		Runner: runner,
		Parser: parser,
	}
}

func (uc *sessionUsecase) IngestSession(ctx context.Context, request *requests.IngestSession) (*responses.SessionOutcome, error) {
	source := NewScriptedSource(uc.Parser, request.Records)

	d, err := uc.Runner.Run(ctx, source)
	if err != nil {
		return nil, err
	}

	outcome := &responses.SessionOutcome{
		SessionID: d.SessionID(),
		Route:     string(d.Route()),
		Outcome:   string(d.Outcome()),
	}
	if datagram := d.Datagram(); datagram != nil {
		outcome.VialID = datagram.VialID()
		outcome.MatchesPrimaryRoute = datagram.MatchesPrimaryRoute
		outcome.MatchesSecondaryRoute = datagram.MatchesSecondaryRoute
		outcome.Uploaded = datagram.Uploaded
		outcome.UploadError = datagram.UploadError
		outcome.Skipped = datagram.Skipped
	}
	return outcome, nil
}
