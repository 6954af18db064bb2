package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "America/Caracas", cfg.Cobranza.Timezone)
	assert.Equal(t, 12, cfg.Cobranza.TrendMonths)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "cobranzas-api", cfg.JWT.Issuer)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 15*time.Second, cfg.DB.StatementTimeout)
	assert.Equal(t, "cobranzas-api", cfg.DB.ApplicationName)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("COBRANZA_TIMEZONE", "America/Bogota")
	t.Setenv("COBRANZA_TREND_MONTHS", "6")
	t.Setenv("COBRANZA_MIGRATE_ON_START", "true")
	t.Setenv("DB_PASSWORD", "p@ss:word/1")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_STATEMENT_TIMEOUT_MS", "2500")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Cobranza.TrendMonths)
	assert.True(t, cfg.Cobranza.MigrateOnStart)
	loc, err := cfg.Cobranza.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", loc.String())
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword%2F1", "la contraseña se codifica en el DSN")
	assert.Equal(t, 4, cfg.DB.MaxConns)
	assert.Equal(t, 2500*time.Millisecond, cfg.DB.StatementTimeout)
}

func TestLoad_ZonaHorariaInvalida(t *testing.T) {
	t.Setenv("COBRANZA_TIMEZONE", "Marte/Olympus")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProduccionSinSecreto(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}
