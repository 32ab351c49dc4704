package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// OrderValidationError represents a rejected order construction: blank instrument,
	// non-positive price for a limit order, or non-positive quantity.
	OrderValidationError ErrorCode = "order_validation_error"
	// OrderNotFoundError represents an unknown order id on a query or cancel path.
	OrderNotFoundError ErrorCode = "order_not_found"
	// InstrumentNotFoundError represents an instrument that has never been seen by the engine.
	InstrumentNotFoundError ErrorCode = "instrument_not_found"
	// BookSideEmptyError represents a best-price query against an empty book side.
	BookSideEmptyError ErrorCode = "book_side_empty"

	// KafkaReadError represents an error reading from the orders topic.
	KafkaReadError ErrorCode = "kafka_read_error"
	// KafkaPublishError represents an error publishing to a Kafka topic.
	KafkaPublishError ErrorCode = "kafka_publish_error"
	// MessageDecodeError represents a malformed inbound order message.
	MessageDecodeError ErrorCode = "message_decode_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
	// RedisSubscribeError represents an error when subscribing to channels in Redis.
	RedisSubscribeError ErrorCode = "redis_subscribe_error"
)
