package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingDataKey           = "data"
	LoggingRoleKey           = "role"
	LoggingViewKey           = "view"
	LoggingQueryParamsKey    = "query_params"
	LoggingUpstreamUrlKey    = "upstream_url"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
)
