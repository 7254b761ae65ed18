package database

import (
	"testing"
	"time"

	"arte-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolConfig(t *testing.T) {
	config, err := newPoolConfig(utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "6543",
		Name:     "arte",
		User:     "arte",
		Password: "secret",
		AppName:  "arte-booking",
		MaxConns: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", config.ConnConfig.Host)
	assert.Equal(t, uint16(6543), config.ConnConfig.Port)
	assert.Equal(t, "arte", config.ConnConfig.Database)
	assert.Equal(t, int32(8), config.MaxConns)
	assert.Equal(t, int32(2), config.MinConns)
	assert.Equal(t, connectTimeout, config.ConnConfig.ConnectTimeout)
	assert.Equal(t, "arte-booking", config.ConnConfig.RuntimeParams["application_name"])
	assert.Nil(t, config.ConnConfig.TLSConfig, "sslmode defaults to disable")
}

func TestNewPoolConfigSmallPool(t *testing.T) {
	config, err := newPoolConfig(utils.DatabaseConfig{Host: "localhost", Port: "5432", MaxConns: 1})
	require.NoError(t, err)

	assert.Equal(t, int32(1), config.MaxConns)
	assert.Equal(t, int32(1), config.MinConns, "never more warm connections than the cap")
	assert.Equal(t, 30*time.Minute, config.MaxConnLifetime)
}

func TestNewPoolConfigBadPort(t *testing.T) {
	_, err := newPoolConfig(utils.DatabaseConfig{Host: "localhost", Port: "not-a-port"})
	assert.Error(t, err)
}
