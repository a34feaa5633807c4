package faults

// FallbackCatalogCode is the external code used for any internal code
// without a catalog entry, including the per-kind codes themselves.
const FallbackCatalogCode = "ERR_GENERAL_01"

// catalog maps symbolic sub-case codes to short external codes. The
// table is externally observable; entries are never removed or
// renumbered.
var catalog = map[string]string{
	// Authentication
	CodeAuthLoginFailed:        "ERR_AUTH_01",
	CodeAuthCheckpoint:         "ERR_AUTH_02",
	CodeAuth2FARequired:        "ERR_AUTH_03",
	CodeAuthSessionExpired:     "ERR_AUTH_04",
	CodeAuthCredentialsInvalid: "ERR_AUTH_05",

	// Network
	CodeNetworkTimeout:          "ERR_NETWORK_01",
	CodeNetworkConnectionFailed: "ERR_NETWORK_02",
	CodeNetworkRequestFailed:    "ERR_NETWORK_03",
	CodeNetworkParseFailed:      "ERR_NETWORK_04",
	CodeNetworkRateLimited:      "ERR_NETWORK_05",

	// Validation
	CodeValidationMissingParam:  "ERR_VALIDATION_01",
	CodeValidationInvalidFormat: "ERR_VALIDATION_02",
	CodeValidationOutOfRange:    "ERR_VALIDATION_03",

	// Configuration
	CodeConfigMissing:      "ERR_CONFIG_01",
	CodeConfigInvalid:      "ERR_CONFIG_02",
	CodeConfigFileNotFound: "ERR_CONFIG_03",

	// Security
	CodeSecurityEncryptionFailed: "ERR_SECURITY_01",
	CodeSecurityDecryptionFailed: "ERR_SECURITY_02",
	CodeSecurityValidationFailed: "ERR_SECURITY_03",
	CodeSecurityPermissionDenied: "ERR_SECURITY_04",

	// Database
	CodeDatabaseConnectionFailed: "ERR_DATABASE_01",
	CodeDatabaseQueryFailed:      "ERR_DATABASE_02",
	CodeDatabaseRecordNotFound:   "ERR_DATABASE_03",

	// General
	CodeUnknown:            "ERR_GENERAL_01",
	CodeNotImplemented:     "ERR_GENERAL_02",
	CodeOperationCancelled: "ERR_GENERAL_03",
}

// CatalogCode resolves an internal code to its short external
// identifier. Codes without a catalog entry (such as VALIDATION_ERROR,
// a kind code rather than a sub-case) resolve to FallbackCatalogCode.
func CatalogCode(code string) string {
	if ext, ok := catalog[code]; ok {
		return ext
	}
	return FallbackCatalogCode
}
