package responses

// Datagram is the listing shape for persisted session datagrams.
type Datagram struct {
	ID                     string   `json:"id"`
	InstrumentModel        string   `json:"instrumentModel,omitempty"`
	InstrumentSerialNumber string   `json:"instrumentSerialNumber,omitempty"`
	InstrumentFirmware     string   `json:"instrumentFirmware,omitempty"`
	InstrumentTimestamp    string   `json:"instrumentTimestamp,omitempty"`
	VialID                 string   `json:"vialId,omitempty"`
	TestType               string   `json:"testType,omitempty"`
	ResultValues           []string `json:"resultValues,omitempty"`
	MatchesPrimaryRoute    bool     `json:"matchesPrimaryRoute"`
	MatchesSecondaryRoute  bool     `json:"matchesSecondaryRoute"`
	Uploaded               bool     `json:"uploaded"`
	UploadError            bool     `json:"uploadError"`
	Skipped                bool     `json:"skipped"`
	CreatedAt              string   `json:"createdAt"`
}

// SessionOutcome summarizes one ingested session.
type SessionOutcome struct {
	SessionID             string `json:"sessionId"`
	VialID                string `json:"vialId"`
	Route                 string `json:"route"`
	Outcome               string `json:"outcome"`
	MatchesPrimaryRoute   bool   `json:"matchesPrimaryRoute"`
	MatchesSecondaryRoute bool   `json:"matchesSecondaryRoute"`
	Uploaded              bool   `json:"uploaded"`
	UploadError           bool   `json:"uploadError"`
	Skipped               bool   `json:"skipped"`
}

// RepublishSummary reports one on-demand republish run.
type RepublishSummary struct {
	Candidates  int `json:"candidates"`
	Republished int `json:"republished"`
	Failed      int `json:"failed"`
}
