package faults

import "testing"

// The catalog is externally observable; every pair is pinned here so an
// accidental renumbering fails loudly.
func TestCatalogCode_Table(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeAuthLoginFailed, "ERR_AUTH_01"},
		{CodeAuthCheckpoint, "ERR_AUTH_02"},
		{CodeAuth2FARequired, "ERR_AUTH_03"},
		{CodeAuthSessionExpired, "ERR_AUTH_04"},
		{CodeAuthCredentialsInvalid, "ERR_AUTH_05"},

		{CodeNetworkTimeout, "ERR_NETWORK_01"},
		{CodeNetworkConnectionFailed, "ERR_NETWORK_02"},
		{CodeNetworkRequestFailed, "ERR_NETWORK_03"},
		{CodeNetworkParseFailed, "ERR_NETWORK_04"},
		{CodeNetworkRateLimited, "ERR_NETWORK_05"},

		{CodeValidationMissingParam, "ERR_VALIDATION_01"},
		{CodeValidationInvalidFormat, "ERR_VALIDATION_02"},
		{CodeValidationOutOfRange, "ERR_VALIDATION_03"},

		{CodeConfigMissing, "ERR_CONFIG_01"},
		{CodeConfigInvalid, "ERR_CONFIG_02"},
		{CodeConfigFileNotFound, "ERR_CONFIG_03"},

		{CodeSecurityEncryptionFailed, "ERR_SECURITY_01"},
		{CodeSecurityDecryptionFailed, "ERR_SECURITY_02"},
		{CodeSecurityValidationFailed, "ERR_SECURITY_03"},
		{CodeSecurityPermissionDenied, "ERR_SECURITY_04"},

		{CodeDatabaseConnectionFailed, "ERR_DATABASE_01"},
		{CodeDatabaseQueryFailed, "ERR_DATABASE_02"},
		{CodeDatabaseRecordNotFound, "ERR_DATABASE_03"},

		{CodeUnknown, "ERR_GENERAL_01"},
		{CodeNotImplemented, "ERR_GENERAL_02"},
		{CodeOperationCancelled, "ERR_GENERAL_03"},
	}

	for _, tt := range tests {
		if got := CatalogCode(tt.code); got != tt.want {
			t.Errorf("CatalogCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}

	if len(catalog) != len(tests) {
		t.Errorf("catalog has %d entries, tests pin %d", len(catalog), len(tests))
	}
}

func TestCatalogCode_Fallback(t *testing.T) {
	// Kind codes are not sub-cases and have no catalog entry of their
	// own, except UNKNOWN_ERROR which doubles as the general entry.
	for _, code := range []string{
		CodeAuth, CodeNetwork, CodeValidation,
		CodeConfig, CodeSecurity, CodeDatabase,
		"", "NO_SUCH_CODE",
	} {
		if got := CatalogCode(code); got != FallbackCatalogCode {
			t.Errorf("CatalogCode(%q) = %q, want fallback %q", code, got, FallbackCatalogCode)
		}
	}
}
