package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  addr: 127.0.0.1:9999
mysql:
  addr: db:3306
  database: vt
  username: app
  password: pw
rabbitmq:
  addr: mq:5672
  username: u
  password: p
jwt:
  secret: abc
`), 0o600))

	require.NoError(t, Load(file))

	assert.Equal(t, "127.0.0.1:9999", ConfigInfo.Server.Addr)
	assert.Equal(t, "db:3306", ConfigInfo.Mysql.Addr)
	assert.Equal(t, "vt", ConfigInfo.Mysql.Database)
	assert.Equal(t, "utf8mb4", ConfigInfo.Mysql.Charset)
	assert.Equal(t, 24, ConfigInfo.Jwt.TimeoutHour)
	assert.Equal(t, float64(500), ConfigInfo.Sentinel.QPS)
	assert.Equal(t, "amqp://u:p@mq:5672/", RabbitMqURL())
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("mysql:\n  addr: db:3306\n"), 0o600))
	t.Setenv("VIDTUBE_MYSQL_ADDR", "override:3306")

	require.NoError(t, Load(file))
	assert.Equal(t, "override:3306", ConfigInfo.Mysql.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.yml")))
}
