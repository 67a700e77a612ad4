package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	BackendAPIURL  string
	CartBackend    string
	CartTTL        time.Duration
	RedisAddr      string
	RedisPassword  string
	DatabaseURL    string
	CardDelay      time.Duration
	UploadDir      string
	MaxUploadSize  int64
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	CloudinaryURL  string
	RequestTimeout time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8082")),
		BackendAPIURL:  getEnv("BACKEND_API_URL", "http://localhost:5000"),
		CartBackend:    getEnv("CART_BACKEND", "redis"),
		CartTTL:        getDuration("CART_TTL", 30*24*time.Hour),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		CardDelay:      getDuration("CARD_PROCESSING_DELAY", 1500*time.Millisecond),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:  maxUploadSize,
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 15*time.Second),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Remote shop API: %s", AppConfig.BackendAPIURL)
	log.Printf("Cart backend: %s", AppConfig.CartBackend)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
