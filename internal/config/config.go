package config

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
)

type Config struct {
	Port     string `json:"port"`
	GinMode  string `json:"ginMode"`  // "release" | "debug" | "test"
	LogLevel string `json:"logLevel"` // zerolog level name
	SeedFile string `json:"seedFile"` // optional YAML fixture, empty = start cold
}

func def() Config {
	return Config{
		Port:     "8000",
		GinMode:  "release",
		LogLevel: "info",
		SeedFile: "",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// LoadWithPath reads the JSON file at the given path if it exists, then
// applies env overrides, then flags. Precedence: flags > env > JSON > defaults.
func LoadWithPath(jsonPath string) Config {
	cfg := def()

	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	cfg.Port = getenv("STOREFRONT_PORT", cfg.Port)
	cfg.GinMode = getenv("STOREFRONT_GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getenv("STOREFRONT_LOG_LEVEL", cfg.LogLevel)
	cfg.SeedFile = getenv("STOREFRONT_SEED_FILE", cfg.SeedFile)

	configPath := flag.String("config", jsonPath, "Path to config JSON")
	port := flag.String("port", cfg.Port, "HTTP port")
	mode := flag.String("gin-mode", cfg.GinMode, "Gin mode (release/debug/test)")
	level := flag.String("log-level", cfg.LogLevel, "Log level (trace..panic)")
	seed := flag.String("seed", cfg.SeedFile, "Path to YAML seed file (empty = none)")

	flag.Parse()

	// A different config path on the command line wins over everything.
	if *configPath != jsonPath {
		return LoadWithPath(*configPath)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.GinMode = strings.TrimSpace(*mode)
	cfg.LogLevel = strings.TrimSpace(*level)
	cfg.SeedFile = strings.TrimSpace(*seed)

	return cfg
}

// Load reads config.json next to the binary's working directory.
func Load() Config {
	return LoadWithPath("config.json")
}
