package faults

// Per-kind internal codes. These are what Kind.Code returns and what a
// Fault carries unless a constructor narrows it to a sub-case below.
const (
	CodeAuth       = "AUTH_ERROR"
	CodeNetwork    = "NETWORK_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeConfig     = "CONFIG_ERROR"
	CodeSecurity   = "SECURITY_ERROR"
	CodeDatabase   = "DATABASE_ERROR"
	CodeUnknown    = "UNKNOWN_ERROR"
)

// Authentication sub-cases.
const (
	CodeAuthLoginFailed        = "AUTH_LOGIN_FAILED"
	CodeAuthCheckpoint         = "AUTH_CHECKPOINT"
	CodeAuth2FARequired        = "AUTH_2FA_REQUIRED"
	CodeAuthSessionExpired     = "AUTH_SESSION_EXPIRED"
	CodeAuthCredentialsInvalid = "AUTH_CREDENTIALS_INVALID"
)

// Network sub-cases.
const (
	CodeNetworkTimeout          = "NETWORK_TIMEOUT"
	CodeNetworkConnectionFailed = "NETWORK_CONNECTION_FAILED"
	CodeNetworkRequestFailed    = "NETWORK_REQUEST_FAILED"
	CodeNetworkParseFailed      = "NETWORK_PARSE_FAILED"
	CodeNetworkRateLimited      = "NETWORK_RATE_LIMITED"
)

// Validation sub-cases.
const (
	CodeValidationMissingParam  = "VALIDATION_MISSING_PARAM"
	CodeValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	CodeValidationOutOfRange    = "VALIDATION_OUT_OF_RANGE"
)

// Configuration sub-cases.
const (
	CodeConfigMissing      = "CONFIG_MISSING"
	CodeConfigInvalid      = "CONFIG_INVALID"
	CodeConfigFileNotFound = "CONFIG_FILE_NOT_FOUND"
)

// Security sub-cases.
const (
	CodeSecurityEncryptionFailed = "SECURITY_ENCRYPTION_FAILED"
	CodeSecurityDecryptionFailed = "SECURITY_DECRYPTION_FAILED"
	CodeSecurityValidationFailed = "SECURITY_VALIDATION_FAILED"
	CodeSecurityPermissionDenied = "SECURITY_PERMISSION_DENIED"
)

// Database sub-cases.
const (
	CodeDatabaseConnectionFailed = "DATABASE_CONNECTION_FAILED"
	CodeDatabaseQueryFailed      = "DATABASE_QUERY_FAILED"
	CodeDatabaseRecordNotFound   = "DATABASE_RECORD_NOT_FOUND"
)

// General sub-cases. CodeUnknown doubles as the general catalog entry.
const (
	CodeNotImplemented     = "NOT_IMPLEMENTED"
	CodeOperationCancelled = "OPERATION_CANCELLED"
)
