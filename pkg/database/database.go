package database

import (
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Init opens the MySQL store from config, installs the tracing plugin and
// migrates the schema when enabled.
func Init() (*gorm.DB, error) {
	db, err := Open(utils.GetMysqlDsn())
	if err != nil {
		return nil, err
	}
	if config.ConfigInfo.Mysql.Migrate {
		hlog.Info("Starting schema migration...")
		if err := model.AutoMigrate(db); err != nil {
			return nil, errors.Wrap(err, "migrate schema")
		}
		hlog.Info("Schema migration completed successfully")
	}
	return db, nil
}

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "install tracing plugin")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.ConfigInfo.Mysql.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.ConfigInfo.Mysql.MaxIdleConns)
	lifetime, err := time.ParseDuration(config.ConfigInfo.Mysql.ConnMaxLifetime)
	if err != nil {
		hlog.Warnf("Failed to parse conn_max_lifetime %q, using 1h", config.ConfigInfo.Mysql.ConnMaxLifetime)
		lifetime = time.Hour
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	hlog.Info("Connect MySQL Success")
	return db, nil
}
