package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"wedding_invitation/logger"
	"wedding_invitation/vnpay"
)

var loadOnce sync.Once

func load() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "không đọc được file .env: %v\n", err)
		}
	})
}

// Config trả về giá trị biến môi trường, đọc .env một lần nếu có
func Config(key string) string {
	load()
	return os.Getenv(key)
}

func getEnv(key, defaultValue string) string {
	load()
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// AppEnv is APP_ENV, lower-cased. Empty means the deployment did not
// declare an environment, which LoadVNPay rejects.
func AppEnv() string {
	return strings.ToLower(strings.TrimSpace(Config("APP_ENV")))
}

func AppURL() string {
	return strings.TrimRight(getEnv("APP_URL", "http://localhost:8002"), "/")
}

func FrontendURL() string {
	return strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/")
}

func Port() string {
	return getEnv("PORT", "8002")
}

// LoadVNPay builds the merchant configuration from VNPAY_* variables.
// Nothing has a default except the callback paths; the constructor of
// vnpay.Service decides whether the result is acceptable.
func LoadVNPay() vnpay.Config {
	appURL := AppURL()
	return vnpay.Config{
		TmnCode:     Config("VNPAY_TMN_CODE"),
		HashSecret:  Config("VNPAY_HASH_SECRET"),
		GatewayURL:  Config("VNPAY_URL"),
		ReturnURL:   getEnv("VNPAY_RETURN_URL", appURL+"/vnpay/return"),
		IPNURL:      getEnv("VNPAY_IPN_URL", appURL+"/api/v1/vnpay/ipn"),
		Environment: AppEnv(),
		Locale:      getEnv("VNPAY_LOCALE", vnpay.LocaleVN),
	}
}

func LoadLogger() *logger.Config {
	return &logger.Config{
		Level:      getEnv("LOG_LEVEL", "INFO"),
		Filename:   getEnv("LOG_FILENAME", "logs/app.log"),
		MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		MaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		Compress:   getEnvAsBool("LOG_COMPRESS", true),
	}
}

func RedisAddr() string {
	return getEnv("REDIS_ADDR", "localhost:6379")
}

// SMTP holds mail settings; Enabled is false when SMTP_HOST is unset.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

func LoadSMTP() SMTP {
	return SMTP{
		Host:     Config("SMTP_HOST"),
		Port:     getEnvAsInt("SMTP_PORT", 587),
		Username: Config("SMTP_USERNAME"),
		Password: Config("SMTP_PASSWORD"),
		From:     Config("SMTP_FROM"),
	}
}
