package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Directory API (the backend this frontend renders).
	DirectoryAPIURL     string        `mapstructure:"DIRECTORY_API_URL"`
	FetchTimeout        time.Duration `mapstructure:"FETCH_TIMEOUT"`
	HealthCheckInterval time.Duration `mapstructure:"HEALTH_CHECK_INTERVAL"`

	// Rate limiting.
	MaxRequestsPerMin    int `mapstructure:"MAX_REQUESTS_PER_MIN"`
	SubmitRequestsPerMin int `mapstructure:"SUBMIT_REQUESTS_PER_MIN"`

	// Redis configuration. An empty address keeps submission limits in memory.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Tracing.
	OtelEnabled      bool    `mapstructure:"OTEL_ENABLED"`
	OtelEndpoint     string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName  string  `mapstructure:"OTEL_SERVICE_NAME"`
	OtelSamplingRate float64 `mapstructure:"OTEL_SAMPLING_RATIO"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_API_URL", "http://localhost:3001")
	v.SetDefault("FETCH_TIMEOUT", 10*time.Second)
	v.SetDefault("HEALTH_CHECK_INTERVAL", 60*time.Second)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("SUBMIT_REQUESTS_PER_MIN", 10)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_SERVICE_NAME", "servicedirectory")
	v.SetDefault("OTEL_SAMPLING_RATIO", 1.0)
}

// Load builds a Config from v. Defaults apply to every key not set in a
// config file or the environment.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	v := viper.GetViper()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
