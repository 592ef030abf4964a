package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Auth     AppAuth     `mapstructure:"auth"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Casbin   AppCasbin   `mapstructure:"casbin"`
	Cache    AppCache    `mapstructure:"cache"`
	Worker   AppWorker   `mapstructure:"worker"`
	Metrics  AppMetrics  `mapstructure:"metrics"`
}

type App struct {
	Env                            string   `mapstructure:"env"`
	Port                           string   `mapstructure:"port"`
	Version                        string   `mapstructure:"version"`
	Address                        string   `mapstructure:"address"`
	Timezone                       string   `mapstructure:"timezone"`
	EndpointPrefix                 string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins                 []string `mapstructure:"allowed_origins"`
	MaxRequests                    int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds       int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte     int      `mapstructure:"request_body_limit_in_megabyte"`
	LoginSessionExpiredTimeInHours int      `mapstructure:"login_session_expired_time_in_hours"`
	RunMigrationsOnStartup         bool     `mapstructure:"run_migrations_on_startup"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

// AppAuth configures the brute force limiter in front of the login endpoint.
type AppAuth struct {
	LoginRatePerMinute     int `mapstructure:"login_rate_per_minute"`
	LoginBurst             int `mapstructure:"login_burst"`
	LoginBlockTimeInMinute int `mapstructure:"login_block_time_in_minute"`
}

type AppMinio struct {
	BucketName                         string `mapstructure:"bucket_name"`
	AttachmentMaxUploadSizeInMB        int64  `mapstructure:"attachment_max_upload_size_in_mb"`
	PreSignedUrlObjectExpiryTimeInHour int    `mapstructure:"pre_signed_url_object_expiry_time_in_hour"`
}

type AppRabbitMQ struct {
	EventExchange string `mapstructure:"event_exchange"`
	EventsEnabled bool   `mapstructure:"events_enabled"`
}

type AppCasbin struct {
	ModelPath  string `mapstructure:"model_path"`
	PolicyPath string `mapstructure:"policy_path"`
}

type AppCache struct {
	LookupTTLInMinutes    int `mapstructure:"lookup_ttl_in_minutes"`
	DashboardTTLInSeconds int `mapstructure:"dashboard_ttl_in_seconds"`
}

type AppWorker struct {
	NoShowEnabled      bool   `mapstructure:"no_show_enabled"`
	NoShowCronSpec     string `mapstructure:"no_show_cron_spec"`
	NoShowGraceMinutes int    `mapstructure:"no_show_grace_minutes"`
}

type AppMetrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
