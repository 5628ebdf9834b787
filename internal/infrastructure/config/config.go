package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup. Gateway keys, fee policy and checkout
// settings always come from the environment (or a .env file).
type Config struct {
	Port string
	Env  string

	AWSRegion        string
	DynamoDBEndpoint string

	GatewayProvider   string
	GatewayMock       bool
	RazorpayKeyID     string
	RazorpayKeySecret string
	MercadoPagoToken  string
	MercadoPagoNotify string

	FreeJobPosts int
	FeePercent   float64

	Currency       string
	MerchantName   string
	ThemeColor     string
	PublicBaseURL  string
	SessionTTL     time.Duration
	Retention      time.Duration
	GatewayTimeout time.Duration
	MinAmountMinor int64

	SettlementMaxAttempts int
	SettlementRetryDelay  time.Duration
	SettlementParallelism int
	SessionLockTTL        time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers  []string
	KafkaClientID string

	JWTSecret string
}

const (
	ProviderRazorpay    = "razorpay"
	ProviderMercadoPago = "mercadopago"
)

func Load() Config {
	cfg := Config{
		Port: GetEnv("PORT", "8080"),
		Env:  GetEnv("ENV", "development"),

		AWSRegion:        GetEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: GetEnv("DYNAMODB_ENDPOINT", ""),

		GatewayProvider:   strings.ToLower(GetEnv("PAYMENT_GATEWAY", ProviderRazorpay)),
		GatewayMock:       GetBoolEnv("PAYMENT_GATEWAY_MOCK", false),
		RazorpayKeyID:     GetEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: GetEnv("RAZORPAY_KEY_SECRET", ""),
		MercadoPagoToken:  GetEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoNotify: GetEnv("MERCADOPAGO_NOTIFICATION_URL", ""),

		FreeJobPosts: GetIntEnv("FREE_JOB_POSTS", 3),
		FeePercent:   GetFloatEnv("PLATFORM_FEE_PERCENT", 5),

		Currency:       GetEnv("CHECKOUT_CURRENCY", "INR"),
		MerchantName:   GetEnv("CHECKOUT_MERCHANT_NAME", "Job Marketplace"),
		ThemeColor:     GetEnv("CHECKOUT_THEME_COLOR", "#3399cc"),
		PublicBaseURL:  GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SessionTTL:     GetDurationEnv("CHECKOUT_SESSION_TTL", 30*time.Minute),
		Retention:      GetDurationEnv("CHECKOUT_SESSION_RETENTION", 24*time.Hour),
		GatewayTimeout: GetDurationEnv("PAYMENT_GATEWAY_TIMEOUT", 15*time.Second),
		MinAmountMinor: int64(GetIntEnv("CHECKOUT_MIN_AMOUNT_MINOR", 100)),

		SettlementMaxAttempts: GetIntEnv("SETTLEMENT_MAX_ATTEMPTS", 3),
		SettlementRetryDelay:  GetDurationEnv("SETTLEMENT_RETRY_DELAY", 500*time.Millisecond),
		SettlementParallelism: GetIntEnv("SETTLEMENT_PARALLELISM", 4),
		SessionLockTTL:        GetDurationEnv("SESSION_LOCK_TTL", 30*time.Second),

		RedisAddr:     GetEnv("REDIS_ADDR", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		KafkaBrokers:  GetListEnv("KAFKA_BROKERS"),
		KafkaClientID: GetEnv("KAFKA_CLIENT_ID", "jobmarket-billing"),

		JWTSecret: GetEnv("JWT_SECRET", ""),
	}
	if cfg.GatewayProvider != ProviderRazorpay && cfg.GatewayProvider != ProviderMercadoPago {
		log.Printf("[config] unknown PAYMENT_GATEWAY=%q; using %s", cfg.GatewayProvider, ProviderRazorpay)
		cfg.GatewayProvider = ProviderRazorpay
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
	}
	return defaultVal
}

func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv accepts Go durations ("30m") or plain seconds ("1800").
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

// GetListEnv splits a comma-separated variable, dropping blanks.
func GetListEnv(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
