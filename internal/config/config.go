package config

import "os"

// Config reúne tudo que a aplicação lê do ambiente. O carregamento do .env
// fica no main (e nos testes que precisarem dele).
type Config struct {
	Port          string
	DatabaseURL   string // vazio = store em memória (modo mock)
	SessionSecret string
	AdminToken    string
	TelefoneLoja  string // número que recebe os pedidos no WhatsApp
	UploadDir     string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "rj-doces-dev-secret"),
		AdminToken:    getEnv("ADMIN_TOKEN", "admin"),
		TelefoneLoja:  getEnv("WHATSAPP_PHONE", "5521999999999"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
