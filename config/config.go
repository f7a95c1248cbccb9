package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	JWTSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string

	AppEnv     string
	ReminderTZ string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	cfg := Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "smartscholar"),
		Port:     getEnv("PORT", "8000"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AWSRegion:    getEnv("AWS_REGION", ""),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),

		AppEnv:     getEnv("APP_ENV", "development"),
		ReminderTZ: getEnv("REMINDER_TZ", "Asia/Kolkata"),
	}
	return cfg
}
