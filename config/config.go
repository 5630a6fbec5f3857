package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.max_body_mb", 512)
	v.SetDefault("server.worker_id", 1)
	v.SetDefault("server.datacenter_id", 1)
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.migrate", true)
	v.SetDefault("mysql.max_open_conns", 100)
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.conn_max_lifetime", "1h")
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("jaeger.service_name", "vidtube-api")
	v.SetDefault("jwt.timeout_hour", 24)
	v.SetDefault("jwt.refresh_hour", 24*7)
	v.SetDefault("sentinel.qps", 500)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	// VIDTUBE_MYSQL_ADDR overrides mysql.addr and so on.
	v.SetEnvPrefix("vidtube")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Init looks for config.yml in the usual places relative to the working
// directory. A missing file is not fatal, defaults and env still apply.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := newViper()
	v.SetConfigName("config.yml")
	for _, path := range []string{"../../config", "./config", "../config", "."} {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}
	fill(v)
}

// Load reads one explicit file.
func Load(file string) error {
	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", file)
	}
	fill(v)
	return nil
}

func fill(v *viper.Viper) {
	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.LogLevel = v.GetString("server.log_level")
	ConfigInfo.Server.AllowOrigins = v.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.MaxBodyMB = v.GetInt("server.max_body_mb")
	ConfigInfo.Server.WorkerID = v.GetInt64("server.worker_id")
	ConfigInfo.Server.DatacenterID = v.GetInt64("server.datacenter_id")
	ConfigInfo.Server.PprofAddr = v.GetString("server.pprof_addr")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")
	ConfigInfo.Mysql.Migrate = v.GetBool("mysql.migrate")
	ConfigInfo.Mysql.MaxOpenConns = v.GetInt("mysql.max_open_conns")
	ConfigInfo.Mysql.MaxIdleConns = v.GetInt("mysql.max_idle_conns")
	ConfigInfo.Mysql.ConnMaxLifetime = v.GetString("mysql.conn_max_lifetime")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = v.GetString("minio.public_url")
	ConfigInfo.Minio.Region = v.GetString("minio.region")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Jaeger.Addr = v.GetString("jaeger.addr")
	ConfigInfo.Jaeger.ServiceName = v.GetString("jaeger.service_name")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.TimeoutHour = v.GetInt("jwt.timeout_hour")
	ConfigInfo.Jwt.RefreshHour = v.GetInt("jwt.refresh_hour")

	ConfigInfo.Sentinel.QPS = v.GetFloat64("sentinel.qps")

	if level, err := logrus.ParseLevel(ConfigInfo.Server.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured!")
	}
}

// RabbitMqURL assembles the amqp url, empty when rabbitmq is not configured.
func RabbitMqURL() string {
	if ConfigInfo.RabbitMq.Addr == "" {
		return ""
	}
	return "amqp://" + ConfigInfo.RabbitMq.Username + ":" + ConfigInfo.RabbitMq.Password + "@" + ConfigInfo.RabbitMq.Addr + "/"
}
