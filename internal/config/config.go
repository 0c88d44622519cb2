package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverDynamoDB = "dynamodb"

	OutboxDriverMemory = "memory"
	OutboxDriverAsynq  = "asynq"
)

// Config holds runtime configuration for the console service.
//
// The tenant id is explicit configuration: the console runs for a single operator, but every
// storage path is rooted at users/{TenantID}.
type Config struct {
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	TenantID    string `envconfig:"TENANT_ID" default:"pixar-pro-default-user"`
	Timezone    string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	PhoneRegion string `envconfig:"PHONE_REGION" default:"IN"`

	StoreDriver    string `envconfig:"STORE_DRIVER" default:"memory"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"console"`
	DynamoDBTable  string `envconfig:"DYNAMODB_TABLE" default:"console_store"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"ap-south-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	OutboxDriver      string        `envconfig:"OUTBOX_DRIVER" default:"memory"`
	OutboxMaxAttempts int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
	OutboxBaseBackoff time.Duration `envconfig:"OUTBOX_BASE_BACKOFF" default:"1s"`
	OutboxMaxBackoff  time.Duration `envconfig:"OUTBOX_MAX_BACKOFF" default:"5m"`
	OutboxBuffer      int           `envconfig:"OUTBOX_BUFFER" default:"1024"`

	ReminderSchedule string `envconfig:"REMINDER_SCHEDULE" default:"@every 1m"`
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
	ReminderNotifyTo string `envconfig:"REMINDER_NOTIFY_TO"`

	GeminiAPIKey      string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel       string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	SuggestionTimeout time.Duration `envconfig:"SUGGESTION_TIMEOUT" default:"20s"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TenantID) == "" {
		return errors.New("tenant id must be provided")
	}
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverDynamoDB:
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}
	switch c.OutboxDriver {
	case OutboxDriverMemory, OutboxDriverAsynq:
	default:
		return fmt.Errorf("unsupported outbox driver %q", c.OutboxDriver)
	}
	if c.OutboxMaxAttempts <= 0 {
		return errors.New("outbox max attempts must be positive")
	}
	return nil
}

// IsProduction returns true when the service runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TwilioEnabled reports whether reminder SMS can be sent.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != "" && c.ReminderNotifyTo != ""
}

// SuggestionsEnabled reports whether item suggestions can reach Gemini.
func (c *Config) SuggestionsEnabled() bool {
	return c != nil && c.GeminiAPIKey != ""
}
