package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/edulink/api-agency/internal/storage"
)

// CommissionDefaults are the values a freshly triggered commission starts
// with. TDS and GST varied between deployments, so neither is hardcoded.
type CommissionDefaults struct {
	TDSPercent float64
	GSTPercent float64
}

// Config holds everything the binary reads from the environment at boot.
type Config struct {
	ListenAddr      string
	JWTSecret       string
	PaymentSecret   string
	RedisAddr       string
	AllowedOrigins  []string
	AddressDataFile string
	Commission      CommissionDefaults
}

// Load reads .env (if present) and snapshots the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		ListenAddr:      envOr("LISTEN_ADDR", ":8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		PaymentSecret:   os.Getenv("PAYMENT_CONFIRM_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		AddressDataFile: envOr("ADDRESS_DATA_FILE", "address/countries.json"),
		Commission: CommissionDefaults{
			TDSPercent: envFloat("COMMISSION_DEFAULT_TDS", 0),
			GSTPercent: envFloat("COMMISSION_DEFAULT_GST", 0),
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	// The payment-confirmation secret may live in Secrets Manager instead
	// of the environment, same as the database credentials.
	if cfg.PaymentSecret == "" {
		if secretID := os.Getenv("PAYMENT_SECRET_ID"); secretID != "" {
			secret, err := storage.LookupSecretString(secretID)
			if err != nil {
				return nil, err
			}
			cfg.PaymentSecret = secret
		}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}
