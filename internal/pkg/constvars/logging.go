package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionIDKey          = "session_id"
	LoggingVialIDKey             = "vial_id"
	LoggingRecordTypeKey         = "record_type"
	LoggingStateKey              = "state"
	LoggingRouteKey              = "route"
	LoggingOutcomeKey            = "outcome"
	LoggingEndpointURLKey        = "url"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingDatagramIDKey         = "datagram_id"
	LoggingRawValueKey           = "raw_value"
	LoggingStatusCodeKey         = "status_code"
	LoggingResultCountKey        = "result_count"
	LoggingCandidateCountKey     = "candidate_count"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
)
