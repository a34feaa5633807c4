package faults

import "strings"

// Kind is the closed set of failure categories. Every Fault carries
// exactly one Kind, and every Kind maps to exactly one stable code.
type Kind uint8

const (
	// Unknown classifies failures that fit no other category.
	Unknown Kind = iota

	// Authentication covers login, session, and credential failures.
	Authentication

	// Network covers transport failures: timeouts, refused
	// connections, failed or malformed upstream exchanges.
	Network

	// Validation covers rejected caller input.
	Validation

	// Configuration covers missing or malformed settings.
	Configuration

	// Security covers encryption, decryption, and permission
	// failures. Security faults never expose their original message
	// externally; see Fault.SafeMessage.
	Security

	// Database covers local persistence failures.
	Database
)

// Code returns the stable internal code for the kind, for example
// Authentication → "AUTH_ERROR". The mapping is fixed and 1:1.
func (k Kind) Code() string {
	switch k {
	case Authentication:
		return CodeAuth
	case Network:
		return CodeNetwork
	case Validation:
		return CodeValidation
	case Configuration:
		return CodeConfig
	case Security:
		return CodeSecurity
	case Database:
		return CodeDatabase
	default:
		return CodeUnknown
	}
}

// String returns a lowercase name for log output.
func (k Kind) String() string {
	switch k {
	case Authentication:
		return "authentication"
	case Network:
		return "network"
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case Security:
		return "security"
	case Database:
		return "database"
	default:
		return "unknown"
	}
}

// KindForCode infers the Kind a code belongs to from its prefix.
// Codes with no recognized prefix map to Unknown.
func KindForCode(code string) Kind {
	switch {
	case strings.HasPrefix(code, "AUTH_"):
		return Authentication
	case strings.HasPrefix(code, "NETWORK_"):
		return Network
	case strings.HasPrefix(code, "VALIDATION_"):
		return Validation
	case strings.HasPrefix(code, "CONFIG_"):
		return Configuration
	case strings.HasPrefix(code, "SECURITY_"):
		return Security
	case strings.HasPrefix(code, "DATABASE_"):
		return Database
	default:
		return Unknown
	}
}
