package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Cache Cache

	KNET KNET `validate:"required"`

	Delivery Delivery

	Catalog Catalog `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID      string   `validate:"required"`
	Brokers      []string `validate:"required,min=1,dive,hostname_port"`
	OrdersTopic  string   `validate:"required"`
	CatalogTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr           string        `validate:"required,hostname_port"`
	Password       string
	DB             int           `validate:"gte=0"`
	IdempotencyTTL time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type KNET struct {
	GatewayURL  string `validate:"required,url"`
	MerchantID  string `validate:"required"`
	Secret      string `validate:"required,min=16"`
	ResponseURL string `validate:"required,url"`
	ErrorURL    string `validate:"required,url"`
	Lang        string `validate:"oneof=EN AR"`
}

type Delivery struct {
	DefaultFee    decimal.Decimal
	FreeThreshold decimal.Decimal
}

type Catalog struct {
	GSMArenaURL    string        `validate:"required,url"`
	HTTPTimeout    time.Duration `validate:"gt=0"`
	ScrapeInterval time.Duration `validate:"gte=0"`
	INRToKWD       decimal.Decimal
	FetchWorkers   int `validate:"gte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:      env("KAFKA_GROUP_ID", "knet-checkout"),
			OrdersTopic:  env("KAFKA_ORDERS_TOPIC", "orders"),
			CatalogTopic: env("KAFKA_CATALOG_TOPIC", "catalog-imports"),
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "store"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:           env("REDIS_ADDR", "localhost:6379"),
			Password:       env("REDIS_PASSWORD", ""),
			DB:             envInt("REDIS_DB", 0),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		KNET: KNET{
			GatewayURL:  env("KNET_GATEWAY_URL", "https://kpaytest.com.kw/kpg/PaymentHTTP.htm"),
			MerchantID:  env("KNET_MERCHANT_ID", ""),
			Secret:      env("KNET_SECRET", ""),
			ResponseURL: env("KNET_RESPONSE_URL", "http://localhost:3000/checkout/success"),
			ErrorURL:    env("KNET_ERROR_URL", "http://localhost:3000/checkout/error"),
			Lang:        env("KNET_LANG", "EN"),
		},

		Delivery: Delivery{
			DefaultFee:    envDecimal("DELIVERY_DEFAULT_FEE", decimal.RequireFromString("3.000")),
			FreeThreshold: envDecimal("DELIVERY_FREE_THRESHOLD", decimal.Zero),
		},

		Catalog: Catalog{
			GSMArenaURL:    env("GSMARENA_API_URL", "https://gsmarena-api.example.com"),
			HTTPTimeout:    envDuration("CATALOG_HTTP_TIMEOUT", 15*time.Second),
			ScrapeInterval: envDuration("SMARTPRIX_SCRAPE_INTERVAL", time.Second),
			INRToKWD:       envDecimal("SMARTPRIX_INR_TO_KWD", decimal.RequireFromString("0.0037")),
			FetchWorkers:   envInt("CATALOG_FETCH_WORKERS", 4),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
