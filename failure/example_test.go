package failure_test

import (
	"context"
	"fmt"

	"github.com/ASURA2123/asuraclient-fca-unofficial/failure"
	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
	"github.com/ASURA2123/asuraclient-fca-unofficial/retry"
)

// ExampleDo shows a flaky send being retried to success.
func ExampleDo() {
	table := retry.NewTable()
	_ = table.Register(faults.CodeNetworkTimeout, retry.Policy{MaxRetries: 2})
	handler := failure.NewHandler(failure.Config{
		Coordinator: retry.NewCoordinator(retry.Config{Table: table}),
	})

	calls := 0
	messageID, err := failure.Do(context.Background(), handler,
		observe.Op{Area: "thread", Name: "sendMessage"},
		func(ctx context.Context) (string, error) {
			calls++
			if calls == 1 {
				return "", faults.NewCode(faults.CodeNetworkTimeout, "send timed out")
			}
			return "mid.12345", nil
		})

	fmt.Println(messageID, err, calls)
	// Output: mid.12345 <nil> 2
}

// ExampleGo shows the channel form of an asynchronous operation.
func ExampleGo() {
	result := <-failure.Go(context.Background(), nil,
		observe.Op{Area: "user", Name: "getUserInfo"},
		func(ctx context.Context) ([]string, error) {
			return []string{"100012345678901"}, nil
		})

	fmt.Println(result.Value, result.Err())
	// Output: [100012345678901] <nil>
}

// ExampleCallback shows the callback form of an asynchronous operation.
func ExampleCallback() {
	done := make(chan struct{})

	failure.Callback(context.Background(), nil,
		observe.Op{Area: "thread", Name: "markAsRead"},
		func(ctx context.Context) (bool, error) {
			return true, nil
		},
		func(ok bool, err error) {
			fmt.Println(ok, err)
			close(done)
		})

	<-done
	// Output: true <nil>
}

// ExampleHandler_Handle shows a validation failure refused a retry.
func ExampleHandler_Handle() {
	handler := failure.NewHandler(failure.Config{})

	verdict := handler.Handle(context.Background(),
		faults.NewCode(faults.CodeValidationMissingParam, "threadID is required"),
		failure.Options{Retry: true})

	fmt.Println(verdict.Retry)
	fmt.Println(verdict.Fault.Code)
	// Output:
	// false
	// VALIDATION_MISSING_PARAM
}

// ExampleHandler_Response shows the uniform record handed to callers.
func ExampleHandler_Response() {
	handler := failure.NewHandler(failure.Config{})

	resp := handler.Response(faults.NewCode(faults.CodeAuthSessionExpired, "session expired, please log in again"))

	fmt.Println(resp.Error)
	fmt.Println(resp.Code)
	fmt.Println(resp.ErrorCode)
	fmt.Println(resp.Message)
	// Output:
	// true
	// AUTH_SESSION_EXPIRED
	// ERR_AUTH_04
	// session expired, please log in again
}
