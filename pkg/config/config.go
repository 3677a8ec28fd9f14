package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string

	MongoURI string
	MongoDB  string

	RedisAddr string

	KafkaBrokers string
	KafkaTopic   string

	CheckoutMaxConcurrent int
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser: getEnv("POSTGRES_USER", "storefront"),
		PostgresPass: getEnv("POSTGRES_PASSWORD", "storefrontpassword"),
		PostgresDB:   getEnv("POSTGRES_DB", "storefront_db"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "storefront"),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "purchase-confirmations"),

		CheckoutMaxConcurrent: getEnvInt("CHECKOUT_MAX_CONCURRENT", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
