package constvars

const (
	TestResultReceivedMessage  = "Test result received"
	SessionProcessedMessage    = "Session processed"
	GetDatagramsSuccessMessage = "Successfully retrieved datagrams"
	RepublishStartedMessage    = "Republish run completed"
)
