package requests

// TestResult is the uplink payload shape as received by the loopback
// test-result endpoint.
type TestResult struct {
	VialID     string `json:"vialId" validate:"required,max=64"`
	TestType   string `json:"testType" validate:"max=32"`
	Results    string `json:"results" validate:"max=32"`
	SerialNo   string `json:"serialNo" validate:"max=32"`
	ResultTime string `json:"resultTime" validate:"max=14"`
}
