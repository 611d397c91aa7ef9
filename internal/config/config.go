// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into
// structured Go types (structs), and validates that required
// values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (observability, reminders).
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env
	// before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Env vars are read with the ACCOUNTABILITY_ prefix and mapped into nested
// struct fields using "." as the key-path delimiter:
//
//	ACCOUNTABILITY_SERVER.PORT -> server.port -> Config.Server.Port

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator
// so the app refuses to boot with an incomplete environment.
//
// Observability and Reminder are pointers because they are optional.
// If not provided, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Habits        HabitsConfig         `koanf:"habits"`
	Reminder      *ReminderConfig      `koanf:"reminder"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are ints holding seconds; they are converted to
// time.Duration where the http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning
// for the hosted database the habit tables live in.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets.
//
// SecretKey is the Clerk secret key. Keep the `.env` file and deployment
// environment access protected; this value grants full API access.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig groups API keys for external providers.
type IntegrationConfig struct {
	// ResendAPIKey authorizes the Resend email API used for
	// habit reminder emails.
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
}

// HabitsConfig holds display-level knobs for the habit board.
type HabitsConfig struct {
	// AvatarPlaceholder is returned as the avatar for every group member.
	// Per-user avatars are not tracked; the dashboard renders this value
	// for everyone.
	AvatarPlaceholder string `koanf:"avatar_placeholder"`
}

// ReminderConfig controls the daily reminder email job.
type ReminderConfig struct {
	// Enabled toggles the cron scheduler entirely.
	Enabled bool `koanf:"enabled"`

	// Schedule is a standard 5-field cron expression evaluated
	// in server-local time.
	Schedule string `koanf:"schedule"`
}

// DefaultAvatarPlaceholder is used when habits.avatar_placeholder is unset.
const DefaultAvatarPlaceholder = "🙂"

// DefaultReminderConfig returns the reminder defaults: disabled, with a
// 9am daily schedule so enabling it needs a single env var flip.
func DefaultReminderConfig() *ReminderConfig {
	return &ReminderConfig{
		Enabled:  false,
		Schedule: "0 9 * * *",
	}
}

// Load loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix ACCOUNTABILITY_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Injects defaults for optional blocks (observability, reminder, habits)
//   - Overrides observability service name + environment
//
// On any failure it logs fatally: a service with a broken environment should
// exit immediately rather than limp along half-configured.
func Load() (*Config, error) {
	// Config loading happens before the main logger exists, so use a
	// console logger writing to STDERR for bootstrap errors.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Load environment variables into koanf. Only vars carrying the
	// ACCOUNTABILITY_ prefix are considered; the mapping function strips
	// the prefix and lowercases the remainder.
	err := k.Load(env.Provider("ACCOUNTABILITY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ACCOUNTABILITY_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	// Unmarshal from the root ("") so the whole key tree is decoded.
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	// Enforce the `validate:"required"` tags recursively.
	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Inject defaults for the optional blocks. Pointer fields signal
	// "missing" via nil.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	if mainConfig.Reminder == nil {
		mainConfig.Reminder = DefaultReminderConfig()
	}
	if mainConfig.Reminder.Schedule == "" {
		mainConfig.Reminder.Schedule = DefaultReminderConfig().Schedule
	}
	if mainConfig.Habits.AvatarPlaceholder == "" {
		mainConfig.Habits.AvatarPlaceholder = DefaultAvatarPlaceholder
	}

	// Force service name and environment so tracing/logging sees consistent
	// naming regardless of what the environment set.
	mainConfig.Observability.ServiceName = "accountability"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	// Observability has its own Validate beyond struct tags (enum checks).
	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
