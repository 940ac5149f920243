package constvars

// Client facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
)

// Developer facing messages
const (
	ErrDevCannotParseJSON            = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "Failed to marshal JSON payload"
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevInvalidAPIKey              = "API key does not match the configured uplink key"
	ErrDevAPIKeyRequired             = "API key header is missing"
	ErrDevCannotParseTime            = "Failed to parse time value"
	ErrDevMalformedRecord            = "Malformed record: %s"
	ErrDevHeaderRejected             = "Header record was rejected by the acceptor"
	ErrDevSessionClosed              = "Session is already closed"
	ErrDevCreateHTTPRequest          = "Failed to create HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send HTTP request"
	ErrDevUplinkHTTPStatus           = "Uplink responded with non-200 status %d"
	ErrDevDBFailedToInsertDocument   = "Database failed to insert document"
	ErrDevDBFailedToFindDocument     = "Database failed to find document"
	ErrDevDBFailedToUpdateDocument   = "Database failed to update document"
	ErrDevDBFailedToIterateDocuments = "Database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "String is not a valid ObjectID"
	ErrDevRedisGetData               = "Redis failed to get data"
	ErrDevRedisSetData               = "Redis failed to set data"
	ErrDevRedisDeleteData            = "Redis failed to delete data"
	ErrDevRedisSetNX                 = "Redis failed to set data with NX"
	ErrDevRedisUnlock                = "Redis failed to release lock"
	ErrDevRabbitMQPublishMessage     = "RabbitMQ failed to publish message to queue %s"
	ErrDevRabbitMQConsumeQueue       = "RabbitMQ failed to consume queue %s"
	ErrDevMinioFailedToCreateObject  = "Minio failed to create object in bucket %s"
)
