package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	Xendit        XenditConfig
}

type HttpServerConfig struct {
	Host string `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0"`
	Port string `envconfig:"HTTP_SERVER_PORT" default:"8081"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	Username     string `envconfig:"DB_USERNAME" default:"postgres"`
	Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name         string `envconfig:"DB_NAME" default:"golftrip"`
	SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"HTTP_CLIENT_TYPE" default:"threshold"`
	Timeout             int     `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10"`
	Threshold           int64   `envconfig:"HTTP_CLIENT_THRESHOLD" default:"10"`
	ConsecutiveFailures int64   `envconfig:"HTTP_CLIENT_CONSECUTIVE_FAILURES" default:"5"`
	ErrorRate           float64 `envconfig:"HTTP_CLIENT_ERROR_RATE" default:"0.65"`
	MinSamples          int64   `envconfig:"HTTP_CLIENT_MIN_SAMPLES" default:"100"`
}

type UserServiceConfig struct {
	Host string `envconfig:"USER_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"USER_SERVICE_PORT" default:"8080"`
}

type XenditConfig struct {
	BaseURL         string  `envconfig:"XENDIT_BASE_URL" default:"https://api.xendit.co"`
	SecretKey       string  `envconfig:"XENDIT_SECRET_KEY" default:""`
	CallbackToken   string  `envconfig:"XENDIT_CALLBACK_TOKEN" default:""`
	AppURL          string  `envconfig:"APP_URL" default:"http://localhost:3000"`
	Currency        string  `envconfig:"XENDIT_CURRENCY" default:"IDR"`
	InvoiceDuration int     `envconfig:"XENDIT_INVOICE_DURATION" default:"86400"`
	PlatformFeeRate float64 `envconfig:"PLATFORM_FEE_RATE" default:"0.05"`
}

func InitConfig() *Config {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return cfg
}
