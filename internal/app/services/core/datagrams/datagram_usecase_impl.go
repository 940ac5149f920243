package datagrams

import (
	"context"
	"time"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/models"
	"lisagent-service/internal/pkg/dto/responses"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"
)

type datagramUsecase struct {
	DatagramRepository contracts.DatagramRepository
}

func NewDatagramUsecase(datagramMongoRepository contracts.DatagramRepository) contracts.DatagramUsecase {
	return &datagramUsecase{
		DatagramRepository: datagramMongoRepository,
	}
}

func (uc *datagramUsecase) ListDatagrams(ctx context.Context, createdAfter string) ([]responses.Datagram, error) {
	var cutoff time.Time
	if createdAfter != "" {
		parsed, err := utils.ParseLisTimestamp(createdAfter)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		cutoff = parsed
	}

	datagrams, err := uc.DatagramRepository.FindCreatedAfter(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	listing := make([]responses.Datagram, 0, len(datagrams))
	for i := range datagrams {
		listing = append(listing, buildDatagramResponse(&datagrams[i]))
	}
	return listing, nil
}

func buildDatagramResponse(datagram *models.Datagram) responses.Datagram {
	response := responses.Datagram{
		ID:                     datagram.ID.Hex(),
		InstrumentSerialNumber: datagram.SerialNo(),
		InstrumentTimestamp:    utils.FormatLisTimestamp(datagram.InstrumentTimestamp),
		VialID:                 datagram.VialID(),
		TestType:               datagram.TestType(),
		MatchesPrimaryRoute:    datagram.MatchesPrimaryRoute,
		MatchesSecondaryRoute:  datagram.MatchesSecondaryRoute,
		Uploaded:               datagram.Uploaded,
		UploadError:            datagram.UploadError,
		Skipped:                datagram.Skipped,
		CreatedAt:              datagram.CreatedAt.Format(time.RFC3339),
	}
	if datagram.InstrumentModel != nil {
		response.InstrumentModel = *datagram.InstrumentModel
	}
	if datagram.InstrumentFirmware != nil {
		response.InstrumentFirmware = *datagram.InstrumentFirmware
	}
	for _, result := range datagram.Results {
		if result.TestValue != nil {
			response.ResultValues = append(response.ResultValues, *result.TestValue)
		}
	}
	return response
}
