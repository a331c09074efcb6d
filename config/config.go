package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port      int
	HistoryDB string
	CacheSize int
	LogLevel  string
}

func LoadConfig() Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	cacheSize, _ := strconv.Atoi(getEnv("CACHE_SIZE", "128"))

	return Config{
		Port:      port,
		HistoryDB: getEnv("HISTORY_DB", ""),
		CacheSize: cacheSize,
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
