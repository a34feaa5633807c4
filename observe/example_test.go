package observe_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
)

func ExampleNewObserver() {
	cfg := observe.Config{
		Component: "asuraclient",
		Version:   "1.0.0",
		Tracing:   observe.TracingConfig{Enabled: true, Exporter: "none"},
		Metrics:   observe.MetricsConfig{Enabled: false},
		Logging:   observe.LoggingConfig{Enabled: true, Level: "info"},
	}

	ctx := context.Background()
	obs, err := observe.NewObserver(ctx, cfg)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer func() {
		_ = obs.Shutdown(ctx)
	}()

	fmt.Println("Observer created successfully")
	// Output:
	// Observer created successfully
}

func ExampleNewObserver_validation() {
	// Missing component name triggers validation error
	cfg := observe.Config{
		Component: "",
	}

	ctx := context.Background()
	_, err := observe.NewObserver(ctx, cfg)
	if errors.Is(err, observe.ErrMissingComponent) {
		fmt.Println("Caught: missing component name")
	}
	// Output:
	// Caught: missing component name
}

func ExampleConfig_Validate() {
	cfg := observe.Config{
		Component: "asuraclient",
		Version:   "1.0.0",
		Tracing: observe.TracingConfig{
			Enabled:   true,
			Exporter:  "stdout",
			SamplePct: 0.5, // 50% sampling
		},
		Metrics: observe.MetricsConfig{
			Enabled:  true,
			Exporter: "prometheus",
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid:", err)
	} else {
		fmt.Println("Configuration is valid")
	}
	// Output:
	// Configuration is valid
}

func ExampleOp_SpanName() {
	// With area
	op := observe.Op{
		Name: "sendMessage",
		Area: "thread",
	}
	fmt.Println(op.SpanName())

	// Without area
	op2 := observe.Op{
		Name: "listen",
	}
	fmt.Println(op2.SpanName())
	// Output:
	// client.op.thread.sendMessage
	// client.op.listen
}

func ExampleOp_OpID() {
	// With explicit ID
	op := observe.Op{
		ID:   "custom:op:id",
		Name: "ignored",
		Area: "ignored",
	}
	fmt.Println(op.OpID())

	// With area (ID constructed)
	op2 := observe.Op{
		Name: "getThreadInfo",
		Area: "thread",
	}
	fmt.Println(op2.OpID())

	// Without area
	op3 := observe.Op{
		Name: "listen",
	}
	fmt.Println(op3.OpID())
	// Output:
	// custom:op:id
	// thread.getThreadInfo
	// listen
}

func ExampleOp_Validate() {
	op := observe.Op{
		Name: "sendMessage",
		Area: "thread",
	}
	if err := op.Validate(); err != nil {
		fmt.Println("Invalid:", err)
	} else {
		fmt.Println("Valid operation")
	}

	// Invalid - missing name
	op2 := observe.Op{
		Area: "thread",
	}
	if errors.Is(op2.Validate(), observe.ErrMissingOpName) {
		fmt.Println("Caught: missing op name")
	}
	// Output:
	// Valid operation
	// Caught: missing op name
}

func ExampleNewLoggerWithWriter() {
	var buf bytes.Buffer
	logger := observe.NewLoggerWithWriter("info", &buf)

	ctx := context.Background()
	logger.Info(ctx, "client started", observe.Field{Key: "version", Value: "1.0.0"})

	// Output contains JSON with timestamp, level, msg, and version field
	fmt.Println("Logged message contains 'client started':", bytes.Contains(buf.Bytes(), []byte("client started")))
	// Output:
	// Logged message contains 'client started': true
}

func ExampleLogger_WithOp() {
	var buf bytes.Buffer
	logger := observe.NewLoggerWithWriter("info", &buf)

	op := observe.Op{
		Name: "sendMessage",
		Area: "thread",
	}

	// Create op-scoped logger
	opLogger := logger.WithOp(op)

	ctx := context.Background()
	opLogger.Info(ctx, "send attempt started")

	output := buf.String()
	fmt.Println("Contains op.name:", bytes.Contains([]byte(output), []byte("op.name")))
	fmt.Println("Contains op.area:", bytes.Contains([]byte(output), []byte("op.area")))
	// Output:
	// Contains op.name: true
	// Contains op.area: true
}

func ExampleNewLoggerWithWriter_redaction() {
	var buf bytes.Buffer
	logger := observe.NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "login attempt",
		observe.Field{Key: "password", Value: "hunter2"},
	)

	fmt.Println("Password leaked:", bytes.Contains(buf.Bytes(), []byte("hunter2")))
	fmt.Println("Redaction marker present:", bytes.Contains(buf.Bytes(), []byte("[REDACTED]")))
	// Output:
	// Password leaked: false
	// Redaction marker present: true
}

func ExampleMultiReporter() {
	var delivered []string
	stderr := observe.ReporterFunc(func(ctx context.Context, resp faults.Response) {
		delivered = append(delivered, "stderr:"+resp.ErrorCode)
	})
	audit := observe.ReporterFunc(func(ctx context.Context, resp faults.Response) {
		delivered = append(delivered, "audit:"+resp.ErrorCode)
	})

	reporter := observe.NewMultiReporter(stderr, audit)
	resp := faults.NewResponse(faults.NewCode(faults.CodeAuthSessionExpired, "session expired"))
	reporter.Report(context.Background(), resp)

	for _, d := range delivered {
		fmt.Println(d)
	}
	// Output:
	// stderr:ERR_AUTH_04
	// audit:ERR_AUTH_04
}

func ExampleParseLogLevel() {
	levels := []string{"debug", "info", "warn", "error", "unknown"}
	for _, s := range levels {
		level := observe.ParseLogLevel(s)
		fmt.Printf("%s -> %s\n", s, level)
	}
	// Output:
	// debug -> debug
	// info -> info
	// warn -> warn
	// error -> error
	// unknown -> info
}
