package faults_test

import (
	"fmt"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
)

func ExampleNewCode() {
	f := faults.NewCode(faults.CodeNetworkTimeout, "request timed out").
		WithDetail("endpoint", "/threads")

	fmt.Println(f.Kind)
	fmt.Println(f.Error())
	// Output:
	// network
	// NETWORK_TIMEOUT: request timed out
}

func ExampleCatalogCode() {
	fmt.Println(faults.CatalogCode(faults.CodeAuthSessionExpired))
	fmt.Println(faults.CatalogCode("VALIDATION_ERROR")) // kind codes have no entry
	// Output:
	// ERR_AUTH_04
	// ERR_GENERAL_01
}

func ExampleFault_SafeMessage() {
	f := faults.New(faults.Security, "decryption failed: key mismatch")
	fmt.Println(f.SafeMessage())
	// Output:
	// A security error occurred. Please try again later.
}

func ExampleRequireParams() {
	params := map[string]any{"threadID": "t-100"}
	err := faults.RequireParams(params, "threadID", "message")
	fmt.Println(err)
	// Output:
	// VALIDATION_MISSING_PARAM: missing required parameter: message
}

func ExampleNewResponse() {
	f := faults.NewCode(faults.CodeConfigMissing, "appstate path not set")
	resp := faults.NewResponse(f)
	fmt.Println(resp.Code, resp.ErrorCode)
	// Output:
	// CONFIG_MISSING ERR_CONFIG_01
}
