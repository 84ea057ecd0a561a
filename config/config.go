package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	AppPort     string
	JWTSecret   string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Gin framework configuration
	GinMode        string
	AllowedOrigins []string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. Precedence:
// environment variables -> config/config.json -> defaults.
// It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_port", "3000")
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", "3306")
	v.SetDefault("db_user", "root")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "socialdb")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_path", "")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 7)
	v.SetDefault("log_compress", false)

	// Config file is optional; env vars and defaults still apply without it.
	v.SetConfigFile("config/config.json")
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		log.Printf("config file skipped: %v", err)
	}

	cfg = AppConfig{
		AppPort:        v.GetString("app_port"),
		JWTSecret:      v.GetString("jwt_secret"),
		DatabaseURI:    v.GetString("database_uri"),
		DBHost:         v.GetString("db_host"),
		DBPort:         v.GetString("db_port"),
		DBUser:         v.GetString("db_user"),
		DBPassword:     v.GetString("db_password"),
		DBName:         v.GetString("db_name"),
		GinMode:        v.GetString("gin_mode"),
		AllowedOrigins: splitAndTrim(v.GetString("allowed_origins")),
		LogLevel:       v.GetString("log_level"),
		LogPath:        v.GetString("log_path"),
		LogMaxSizeMB:   v.GetInt("log_max_size_mb"),
		LogMaxBackups:  v.GetInt("log_max_backups"),
		LogMaxAgeDays:  v.GetInt("log_max_age_days"),
		LogCompress:    v.GetBool("log_compress"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
