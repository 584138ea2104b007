package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverNone     = "none"
)

type Config struct {
	StorageDriver string
	StoragePath   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	CORSOrigins   string
	LogLevel      string
	LogFormat     string
	LogDir        string
	// ColorScheme overrides the environment dark-mode probe: "dark", "light"
	// or empty to ask the terminal.
	ColorScheme   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	driver := getEnv("STORAGE_DRIVER", DriverFile)

	return &Config{
		StorageDriver: driver,
		StoragePath:   getEnv("STORAGE_PATH", defaultStoragePath(driver)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "tutorstate"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogDir:        getEnv("LOG_DIR", ""),
		ColorScheme:   getEnv("COLOR_SCHEME", ""),
	}, nil
}

func defaultStoragePath(driver string) string {
	if driver == DriverSQLite {
		return filepath.Join("data", "tutorstate.db")
	}
	return filepath.Join("data", "storage.json")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
