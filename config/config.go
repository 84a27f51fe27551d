package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string

	// SMTP settings for OTP and invitation mail. Empty host disables
	// outbound mail (codes are still stored and logged).
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	OTPTTLMinutes        int
	InvitationTTLHours   int
	RequestTimeoutSecond int
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func Load() Config {
	return Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "talenthr"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "no-reply@talenthr.local"),

		OTPTTLMinutes:        getEnvInt("OTP_TTL_MINUTES", 10),
		InvitationTTLHours:   getEnvInt("INVITATION_TTL_HOURS", 72),
		RequestTimeoutSecond: getEnvInt("REQUEST_TIMEOUT_SECONDS", 10),
	}
}
