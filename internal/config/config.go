package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Configuration struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Store    StoreConfig    `mapstructure:"store" validate:"required"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Billing  BillingConfig  `mapstructure:"billing" validate:"required"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=dynamodb postgres memory"`
	// MaxWait bounds how long startup keeps retrying an unreachable store.
	MaxWait time.Duration `mapstructure:"max_wait"`
}

// DynamoDBConfig also binds the plain AWS_REGION, DYNAMODB_ENDPOINT, ...
// variables used by local DynamoDB setups.
type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	WorkOrdersTable string `mapstructure:"work_orders_table"`
	CatalogTable    string `mapstructure:"catalog_table"`
	CountersTable   string `mapstructure:"counters_table"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type AuthConfig struct {
	AdminKey string `mapstructure:"admin_key"`
}

type BillingConfig struct {
	Currency string `mapstructure:"currency" validate:"required"`
}

type CatalogConfig struct {
	// CacheTTL enables an in-process cache of the catalog list endpoint. Off
	// by default; only safe with a single API replica, as writes from other
	// processes do not flush it. Invoices always read the store directly.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type PaymentsConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// NewConfig loads config.yaml (optional) and environment variables prefixed
// with WORKSHOP_, e.g. WORKSHOP_STORE_DRIVER=postgres.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/workshop")

	v.SetEnvPrefix("WORKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Driver == DriverPostgres && strings.TrimSpace(c.Postgres.URL) == "" {
		return errors.New("postgres.url is required when store.driver=postgres")
	}
	return nil
}

// GetDefaultConfig returns an in-memory configuration for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Port: 8080},
		Store:   StoreConfig{Driver: DriverMemory, MaxWait: 30 * time.Second},
		Billing: BillingConfig{Currency: "LKR"},
		Catalog: CatalogConfig{CacheTTL: 0},
		Logging: LoggingConfig{Level: "info"},
		DynamoDB: DynamoDBConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			WorkOrdersTable: "work_orders",
			CatalogTable:    "catalog",
			CountersTable:   "counters",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("store.driver", DriverDynamoDB)
	v.SetDefault("store.max_wait", d.Store.MaxWait)
	v.SetDefault("dynamodb.region", d.DynamoDB.Region)
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", d.DynamoDB.AccessKeyID)
	v.SetDefault("dynamodb.secret_access_key", d.DynamoDB.SecretAccessKey)
	v.SetDefault("dynamodb.work_orders_table", d.DynamoDB.WorkOrdersTable)
	v.SetDefault("dynamodb.catalog_table", d.DynamoDB.CatalogTable)
	v.SetDefault("dynamodb.counters_table", d.DynamoDB.CountersTable)
	v.SetDefault("postgres.url", "")
	v.SetDefault("auth.admin_key", "")
	v.SetDefault("billing.currency", d.Billing.Currency)
	v.SetDefault("catalog.cache_ttl", d.Catalog.CacheTTL)
	v.SetDefault("payments.access_token", "")
	v.SetDefault("payments.mock", false)
	v.SetDefault("logging.level", d.Logging.Level)
}

func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"dynamodb.region":            {"WORKSHOP_DYNAMODB_REGION", "AWS_REGION"},
		"dynamodb.endpoint":          {"WORKSHOP_DYNAMODB_ENDPOINT", "DYNAMODB_ENDPOINT"},
		"dynamodb.access_key_id":     {"WORKSHOP_DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key": {"WORKSHOP_DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"},
		"postgres.url":               {"WORKSHOP_POSTGRES_URL", "DATABASE_URL"},
		"payments.access_token":      {"WORKSHOP_PAYMENTS_ACCESS_TOKEN", "MERCADOPAGO_ACCESS_TOKEN"},
		"payments.mock":              {"WORKSHOP_PAYMENTS_MOCK", "PAYMENT_GATEWAY_MOCK"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}
