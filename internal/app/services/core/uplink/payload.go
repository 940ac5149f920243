package uplink

import (
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/models"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// BuildPayload flattens a sealed datagram into the canonical upload body.
// Missing patient, order or header fields default to empty strings. The
// result value and completion time are taken only when the session carries
// exactly one result; zero or multiple results yield empty strings, with the
// ambiguous case reported as an error condition.
func BuildPayload(log *zap.Logger, datagram *models.Datagram) contracts.UplinkPayload {
	vialID := datagram.VialID()

	var testValue string
	var completion string
	switch len(datagram.Results) {
	case 1:
		result := datagram.Results[0]
		if result.TestValue != nil {
			testValue = *result.TestValue
		}
		completion = utils.FormatLisTimestamp(result.Completion)
	case 0:
		log.Error("uplink.BuildPayload no result for patient",
			zap.String(constvars.LoggingVialIDKey, vialID),
		)
	default:
		// Ambiguous by design: all result values are discarded rather
		// than guessing which one is canonical.
		log.Error("uplink.BuildPayload more than one result for patient",
			zap.String(constvars.LoggingVialIDKey, vialID),
			zap.Int(constvars.LoggingResultCountKey, len(datagram.Results)),
		)
	}

	return contracts.UplinkPayload{
		VialID:     vialID,
		TestType:   datagram.TestType(),
		Results:    testValue,
		SerialNo:   datagram.SerialNo(),
		ResultTime: completion,
	}
}
