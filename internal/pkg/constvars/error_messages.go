package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"eqfield":  "must match the other field",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"min":      "is too short",
	"max":      "is too long",
	"role":     "must be a known role",
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientSessionExpired                = "your session has expired, please log in again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientAllFieldsRequired             = "All fields are required"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientUpstreamUnavailable           = "the hospital service is currently unavailable"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientTooManyBlogImages             = "a blog post can carry at most three images"
	ErrClientBlogPostNotFound              = "blog post not found"
	ErrClientMediaNotFound                 = "media object not found"
	ErrClientForbidden                     = "you are not allowed to access this resource"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "CANNOT_PARSE_JSON"
	ErrDevCannotParseMultipartForm  = "CANNOT_PARSE_MULTIPART_FORM"
	ErrDevValidationFailed          = "VALIDATION_FAILED"
	ErrDevMissingRequiredFields     = "MISSING_REQUIRED_FIELDS"
	ErrDevCreateHTTPRequest         = "CREATE_HTTP_REQUEST_FAILED"
	ErrDevSendHTTPRequest           = "SEND_HTTP_REQUEST_FAILED"
	ErrDevDecodeUpstreamResponse    = "DECODE_UPSTREAM_RESPONSE_FAILED"
	ErrDevUpstreamRejected          = "UPSTREAM_REJECTED_REQUEST"
	ErrDevUpstreamTokensIncomplete  = "UPSTREAM_TOKENS_INCOMPLETE"
	ErrDevAuthGenerateToken         = "AUTH_GENERATE_TOKEN_FAILED"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevAuthTokenInvalid          = "AUTH_TOKEN_INVALID"
	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevSessionNotFound           = "SESSION_NOT_FOUND"
	ErrDevRedisSet                  = "REDIS_SET_FAILED"
	ErrDevRedisGet                  = "REDIS_GET_FAILED"
	ErrDevRedisDelete               = "REDIS_DELETE_FAILED"
	ErrDevMongoInsert               = "MONGO_INSERT_FAILED"
	ErrDevMongoFind                 = "MONGO_FIND_FAILED"
	ErrDevMinioCreateObject         = "MINIO_CREATE_OBJECT_FAILED"
	ErrDevMinioGetObject            = "MINIO_GET_OBJECT_FAILED"
	ErrDevRabbitMQPublish           = "RABBITMQ_PUBLISH_FAILED"
	ErrDevSMTPSendEmail             = "SMTP_SEND_EMAIL_FAILED"
	ErrDevServerDeadlineExceeded    = "SERVER_DEADLINE_EXCEEDED"
	ErrDevMissingRequestID          = "MISSING_REQUEST_ID"
	ErrDevMissingSession            = "MISSING_SESSION"
	ErrDevInvalidAPIKey             = "INVALID_API_KEY"
	ErrDevAPIKeyRequired            = "API_KEY_REQUIRED"
	ErrDevUpstreamRateLimitExceeded = "UPSTREAM_RATE_LIMIT_EXCEEDED"
)
