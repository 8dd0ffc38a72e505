// internal/config/config.go
// Loader konfigurasi: file YAML opsional (SHOPFLOOR_CONFIG) lalu override dari environment variables

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName   string `yaml:"app_name"`
	AppEnv    string `yaml:"app_env"`
	AppPort   string `yaml:"app_port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	MySQL struct {
		DSN      string `yaml:"dsn"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DB       string `yaml:"db"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		MaxOpen  int    `yaml:"max_open"`
		MaxIdle  int    `yaml:"max_idle"`
	} `yaml:"mysql"`

	Auth struct {
		AdminUser     string        `yaml:"admin_user"`
		AdminPassHash string        `yaml:"admin_pass_hash"`
		JWTSecret     string        `yaml:"jwt_secret"`
		APIKey        string        `yaml:"api_key"`
		TokenTTL      time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Dashboard struct {
		DefaultRangeDays int           `yaml:"default_range_days"`
		WorkerInterval   time.Duration `yaml:"worker_interval"`
		WorkerAddr       string        `yaml:"worker_addr"` // kosong = tanpa endpoint status
	} `yaml:"dashboard"`
}

// Default mengembalikan konfigurasi bawaan (tanpa membaca env/file).
func Default() *Config {
	c := &Config{}
	c.AppName = "shopfloor-tracker"
	c.AppEnv = "development"
	c.AppPort = "8080"
	c.LogLevel = "debug"
	c.LogFormat = "json"

	c.MySQL.Host = "localhost"
	c.MySQL.Port = "3306"
	c.MySQL.DB = "shopfloor"
	c.MySQL.User = "root"
	c.MySQL.MaxOpen = 10
	c.MySQL.MaxIdle = 5

	c.Auth.TokenTTL = 24 * time.Hour

	c.Dashboard.DefaultRangeDays = 30
	c.Dashboard.WorkerInterval = 15 * time.Minute
	c.Dashboard.WorkerAddr = ":8081"
	return c
}

// Load: default -> file YAML (jika SHOPFLOOR_CONFIG diisi) -> env.
func Load() (*Config, error) {
	c := Default()
	if path := os.Getenv("SHOPFLOOR_CONFIG"); path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppName = getEnv("APP_NAME", c.AppName)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.AppPort = getEnv("APP_PORT", c.AppPort)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	c.MySQL.DSN = getEnv("DB_DSN", c.MySQL.DSN)
	c.MySQL.Host = getEnv("MYSQL_HOST", c.MySQL.Host)
	c.MySQL.Port = getEnv("MYSQL_PORT", c.MySQL.Port)
	c.MySQL.DB = getEnv("MYSQL_DB", c.MySQL.DB)
	c.MySQL.User = getEnv("MYSQL_USER", c.MySQL.User)
	c.MySQL.Password = getEnv("MYSQL_PASSWORD", c.MySQL.Password)
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", c.MySQL.MaxOpen)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", c.MySQL.MaxIdle)

	c.Auth.AdminUser = getEnv("ADMIN_USER", c.Auth.AdminUser)
	c.Auth.AdminPassHash = getEnv("ADMIN_PASS_HASH", c.Auth.AdminPassHash)
	c.Auth.JWTSecret = getEnv("ADMIN_JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.APIKey = getEnv("API_KEY", c.Auth.APIKey)
	c.Auth.TokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", c.Auth.TokenTTL)

	c.Dashboard.DefaultRangeDays = getEnvInt("DASHBOARD_RANGE_DAYS", c.Dashboard.DefaultRangeDays)
	c.Dashboard.WorkerInterval = getEnvDuration("WORKER_INTERVAL", c.Dashboard.WorkerInterval)
	c.Dashboard.WorkerAddr = getEnv("WORKER_ADDR", c.Dashboard.WorkerAddr)
}

// MySQLDSN mengembalikan DSN eksplisit jika ada, selain itu dirakit dari field host/port.
func (c *Config) MySQLDSN() string {
	if c.MySQL.DSN != "" {
		return c.MySQL.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.MySQL.User, c.MySQL.Password, c.MySQL.Host, c.MySQL.Port, c.MySQL.DB)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
