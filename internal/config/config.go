package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	DatabaseDSN     string
	JWTSecret       string
	CORSOrigins     string
	DocumentStorage string // Folder u koji se spremaju učitani dokumenti radnika
}

func Load() *Config {
	// .env je opcionalan, služi samo za lokalni razvoj
	if err := godotenv.Load(); err == nil {
		log.Println(".env datoteka učitana")
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=stolarija port=5432 sslmode=disable"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		DocumentStorage: getEnv("DOCUMENT_STORAGE_PATH", "./employee-documents"),
	}

	// Sigurnosne provjere za produkciju
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment varijabla nije postavljena! Obavezna je za produkciju.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET mora imati najmanje 32 znaka! Sigurnosni rizik.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=stolarija port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN koristi zadanu vrijednost, za produkciju obavezno postavi vlastite podatke za Postgres.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS koristi zadanu vrijednost, za produkciju obavezno postavi vlastitu domenu.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
