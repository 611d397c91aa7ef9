// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses ZeroLog for logging and integrates with New Relic
// to instrument the codebase, forwarding logs, metrics, and
// traces for debugging.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/brianloooooh/accountability-app/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is not configured (empty license key) the wrapper still
// exists but holds a nil application; every consumer must treat
// GetApplication() == nil as "tracing disabled".
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic application from config.
//
// Behavior:
//   - Empty license key: returns a service with a nil application.
//     The rest of the stack degrades to no-ops.
//   - Non-empty key: builds the agent with app log forwarding and
//     distributed tracing toggles taken from config.
//
// Agent construction failure is returned as an error because a configured
// but broken APM setup is a deployment mistake worth failing on.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability

	if obs == nil || obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(fmt.Sprintf("%s-%s", obs.ServiceName, obs.Environment)),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			if obs.NewRelic.DebugLogging {
				c.Logger = newrelic.NewDebugLogger(os.Stderr)
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic application: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.app
}

// NewLogger builds the application's main structured logger.
//
// Output selection:
//   - format "console": human-friendly colored output (local dev)
//   - otherwise: JSON to stdout
//
// When New Relic log forwarding is active, the writer is wrapped with
// zerologWriter so each entry carries the linking metadata the APM UI
// needs to correlate logs with traces.
func NewLogger(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := loggerService.GetApplication(); app != nil && obs.NewRelic.AppLogForwardingEnabled {
		nrWriter := zerologWriter.New(out, app)
		out = nrWriter
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &logger
}

// NewPgxLogger creates the logger used by the pgx tracelog adapter.
//
// It writes console-formatted output because SQL trace logging is only
// enabled in the local environment, where pretty output beats JSON.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog scale.
//
// tracelog levels: 0 none, 1 error, 2 warn, 3 info, 4 debug, 5 trace.
// Anything more verbose than debug gets full trace output.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.ErrorLevel:
		return 1
	case zerolog.WarnLevel:
		return 2
	case zerolog.InfoLevel:
		return 3
	case zerolog.DebugLevel:
		return 4
	case zerolog.TraceLevel:
		return 5
	default:
		return 3
	}
}
