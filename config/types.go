package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	LogLevel     string   `yaml:"log_level" mapstructure:"log_level"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	MaxBodyMB    int      `yaml:"max_body_mb" mapstructure:"max_body_mb"`
	WorkerID     int64    `yaml:"worker_id" mapstructure:"worker_id"`
	DatacenterID int64    `yaml:"datacenter_id" mapstructure:"datacenter_id"`
	PprofAddr    string   `yaml:"pprof_addr" mapstructure:"pprof_addr"`
}

type mysql struct {
	Addr            string `yaml:"addr"`
	Database        string `yaml:"database"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Charset         string `yaml:"charset"`
	Migrate         bool   `yaml:"migrate"`
	MaxOpenConns    int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
	Region    string `yaml:"region"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type jaeger struct {
	Addr        string `yaml:"addr"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

type jwt struct {
	Secret      string `yaml:"secret"`
	TimeoutHour int    `yaml:"timeout_hour" mapstructure:"timeout_hour"`
	RefreshHour int    `yaml:"refresh_hour" mapstructure:"refresh_hour"`
}

type sentinel struct {
	QPS float64 `yaml:"qps"`
}
