package config

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:                   utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                   utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:               utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:               utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:                 utils.GetEnvString("POSTGRES_DB_NAME", "hospital_management"),
			SSLMode:                utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:           utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:           utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30),
		},
		Redis: Redis{
			Host:        utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:        utils.GetEnvString("REDIS_PORT", "6379"),
			Password:    utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:          utils.GetEnvInt("REDIS_DB", 0),
			PoolSize:    utils.GetEnvInt("REDIS_POOL_SIZE", 10),
			DialTimeout: utils.GetEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func setInternalDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.address", "localhost")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_body_limit_in_megabyte", 6)
	v.SetDefault("app.login_session_expired_time_in_hours", 24)
	v.SetDefault("app.run_migrations_on_startup", true)

	v.SetDefault("jwt.secret", "change-me")

	v.SetDefault("auth.login_rate_per_minute", 10)
	v.SetDefault("auth.login_burst", 5)
	v.SetDefault("auth.login_block_time_in_minute", 15)

	v.SetDefault("minio.bucket_name", "medical-records")
	v.SetDefault("minio.attachment_max_upload_size_in_mb", 10)
	v.SetDefault("minio.pre_signed_url_object_expiry_time_in_hour", 1)

	v.SetDefault("rabbitmq.event_exchange", "hospital.events")
	v.SetDefault("rabbitmq.events_enabled", true)

	v.SetDefault("casbin.model_path", "resources/rbac_model.conf")
	v.SetDefault("casbin.policy_path", "resources/rbac_policy.csv")

	v.SetDefault("cache.lookup_ttl_in_minutes", 60)
	v.SetDefault("cache.dashboard_ttl_in_seconds", 30)

	v.SetDefault("worker.no_show_enabled", true)
	v.SetDefault("worker.no_show_cron_spec", "*/15 * * * *")
	v.SetDefault("worker.no_show_grace_minutes", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// NewInternalConfig reads config.yaml from configPath when present. Every key can be overridden
// from the environment, app.port becomes APP_PORT.
func NewInternalConfig(configPath string) (*InternalConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setInternalDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var internalConfig InternalConfig
	if err := v.Unmarshal(&internalConfig); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := internalConfig.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &internalConfig, nil
}

func (c *InternalConfig) Validate() error {
	if c.App.Env == "production" && c.JWT.Secret == "change-me" {
		return errors.New("jwt.secret must be set in production")
	}
	if c.App.LoginSessionExpiredTimeInHours <= 0 {
		return errors.New("app.login_session_expired_time_in_hours must be positive")
	}
	if c.Minio.BucketName == "" {
		return errors.New("minio.bucket_name is required")
	}
	return nil
}
