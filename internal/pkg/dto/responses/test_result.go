package responses

// TestResultOutcome reports how one loopback-published payload was routed
// and delivered.
type TestResultOutcome struct {
	VialID  string `json:"vialId"`
	Route   string `json:"route"`
	Outcome string `json:"outcome,omitempty"`
}
