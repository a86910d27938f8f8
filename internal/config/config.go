package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	Environment        string `envconfig:"ENVIRONMENT" default:"development"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	JWTSecret          string `envconfig:"JWT_SECRET" required:"true"`

	// Protocol governance. The operator is the only actor allowed to change
	// the fee rate; the treasury account receives the protocol's cut of every sale.
	OperatorAddress string `envconfig:"OPERATOR_ADDRESS" required:"true"`
	TreasuryAccount string `envconfig:"TREASURY_ACCOUNT" required:"true"`

	// Identity resolver settings
	IdentityServiceBaseURL string `envconfig:"IDENTITY_SERVICE_BASE_URL" required:"true"`
	IdentityTimeoutSec     int    `envconfig:"IDENTITY_TIMEOUT_SEC" default:"5"`

	// Payout gateway settings
	StripeSecretKey  string `envconfig:"STRIPE_SECRET_KEY"`
	StripeSecretName string `envconfig:"STRIPE_SECRET_NAME" default:"stripe-secret-key"`
	PayoutCurrency   string `envconfig:"PAYOUT_CURRENCY" default:"usd"`

	// Pub/Sub settings for ledger event fan-out
	GCPProjectID                  string `envconfig:"GCP_PROJECT_ID"`
	PubSubLedgerTopic             string `envconfig:"PUBSUB_LEDGER_TOPIC" default:"ledger-events"`
	PubSubEmulatorHost            string `envconfig:"PUBSUB_EMULATOR_HOST"`
	PubSubPushServiceAccountEmail string `envconfig:"PUBSUB_PUSH_SERVICE_ACCOUNT_EMAIL"`
	DLQEndpointURL                string `envconfig:"DLQ_ENDPOINT_URL"`

	// Event orchestrator settings
	EventsQueueName           string `envconfig:"EVENTS_QUEUE_NAME" default:"ledger_events"`
	EventsPollTimeoutSec      int    `envconfig:"EVENTS_POLL_TIMEOUT_SEC" default:"30"`
	EventsPollMaxMsg          int    `envconfig:"EVENTS_POLL_MAX_MSG" default:"10"`
	EventsMaxRetries          int    `envconfig:"EVENTS_MAX_RETRIES" default:"5"`
	EventsBackoffInitialSec   int    `envconfig:"EVENTS_BACKOFF_INITIAL_SEC" default:"1"`
	EventsBackoffMaxSec       int    `envconfig:"EVENTS_BACKOFF_MAX_SEC" default:"60"`
	EventsDeadLetterQueueName string `envconfig:"EVENTS_DEAD_LETTER_QUEUE_NAME" default:"ledger_events_dlq"`

	// Course content storage (S3-compatible)
	S3URL            string `envconfig:"S3_URL"`
	S3Bucket         string `envconfig:"S3_BUCKET"`
	S3Region         string `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey      string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey      string `envconfig:"S3_SECRET_KEY"`
	ContentURLTTLMin int    `envconfig:"CONTENT_URL_TTL_MIN" default:"15"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
