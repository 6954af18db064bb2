package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cobranzas-api/pkg/config"
)

func TestConfigurePool_ParametrosDeSesion(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://u:p@127.0.0.1:5432/cobranzas?sslmode=disable")
	require.NoError(t, err)

	postgres.ConfigurePool(pc, postgres.PoolOptions{MaxConns: 4, StatementTimeout: 2500 * time.Millisecond, ApplicationName: "cobranzas-test"})

	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, "2500", pc.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "cobranzas-test", pc.ConnConfig.RuntimeParams["application_name"])
	assert.NotNil(t, pc.AfterConnect)
}

func TestConfigurePool_SinTimeout(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://u:p@127.0.0.1:5432/cobranzas")
	require.NoError(t, err)

	postgres.ConfigurePool(pc, postgres.PoolOptions{MaxConns: 2})

	_, ok := pc.ConnConfig.RuntimeParams["statement_timeout"]
	assert.False(t, ok)
}

func TestPoolOptionsFrom(t *testing.T) {
	opts := postgres.PoolOptionsFrom(config.DBConfig{})
	assert.Equal(t, postgres.DefaultPoolOptions(), opts)

	opts = postgres.PoolOptionsFrom(config.DBConfig{MaxConns: 3, StatementTimeout: time.Second, ApplicationName: "reportes"})
	assert.Equal(t, int32(3), opts.MaxConns)
	assert.Equal(t, time.Second, opts.StatementTimeout)
	assert.Equal(t, "reportes", opts.ApplicationName)
}
