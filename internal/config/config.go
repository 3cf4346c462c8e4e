package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config is read from the environment (and a .env file autoloaded at startup).
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	Backend string `env:"BACKEND" envDefault:"dynamodb"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	EntriesTable  string `env:"ENTRIES_TABLE" envDefault:"entries"`
	ClientsTable  string `env:"CLIENTS_TABLE" envDefault:"clients"`
	OffersTable   string `env:"OFFERS_TABLE" envDefault:"offers"`
	PaymentsTable string `env:"PAYMENTS_TABLE" envDefault:"payments"`

	// LocalStorePath is the SQLite file holding saved builder offers.
	// Empty keeps them in memory.
	LocalStorePath string `env:"LOCAL_STORE_PATH" envDefault:"palettepad.db"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	// Sandbox payer used when a card payload carries no payer.
	MercadoPagoTestPayerEmail string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`

	DefaultVATRate float64 `env:"DEFAULT_VAT_RATE" envDefault:"24"`
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	Development    bool    `env:"DEV_MODE" envDefault:"false"`
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendDynamoDB, BackendMemory:
	default:
		return fmt.Errorf("config: unsupported BACKEND %q", c.Backend)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if c.DefaultVATRate < 0 || c.DefaultVATRate > 100 {
		return fmt.Errorf("config: invalid DEFAULT_VAT_RATE %v", c.DefaultVATRate)
	}
	return nil
}
