package contracts

import "context"

// UplinkPayload is the canonical upload body sent to an upstream result
// endpoint.
type UplinkPayload struct {
	VialID     string `json:"vialId"`
	TestType   string `json:"testType"`
	Results    string `json:"results"`
	SerialNo   string `json:"serialNo"`
	ResultTime string `json:"resultTime"`
}

// UplinkEndpoint is one upstream target with its credential.
type UplinkEndpoint struct {
	URL    string
	APIKey string
}

// DeliveryOutcome is the result of a single upload attempt.
type DeliveryOutcome string

const (
	OutcomeUploaded        DeliveryOutcome = "uploaded"
	OutcomeError           DeliveryOutcome = "error"
	OutcomeSkippedByConfig DeliveryOutcome = "skipped_by_config"
)

// UplinkClient performs at most one delivery attempt per call. Every
// transport failure collapses into OutcomeError; the cause is logged, not
// returned.
type UplinkClient interface {
	Deliver(ctx context.Context, payload UplinkPayload, endpoint UplinkEndpoint, disabled bool) DeliveryOutcome
}
