package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "LISAGT_SVC_"
)

// LisTimestampLayout is the fixed YYYYMMDDhhmmss instrument timestamp format.
const LisTimestampLayout = "20060102150405"

const (
	MongoCollectionDatagrams = "lis_datagrams"
)

const (
	RedisKeyRepublishLock = "republish:worker:lock"
)

// Record type discriminators as they appear on the wire.
const (
	RecordTypeHeader     = "H"
	RecordTypePatient    = "P"
	RecordTypeOrder      = "O"
	RecordTypeComment    = "C"
	RecordTypeResult     = "R"
	RecordTypeTerminator = "L"
)
