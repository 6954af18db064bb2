package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cobranzas-api/pkg/config"
)

// PoolOptions dimensiona el pool para lecturas de reporte.
type PoolOptions struct {
	MaxConns         int32
	StatementTimeout time.Duration // 0 = sin límite de sesión
	ApplicationName  string
}

// DefaultPoolOptions valores usados por los tests de integración.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{MaxConns: 10, StatementTimeout: 15 * time.Second, ApplicationName: "cobranzas-api"}
}

// PoolOptionsFrom traduce la configuración; los valores en cero toman DefaultPoolOptions.
func PoolOptionsFrom(cfg config.DBConfig) PoolOptions {
	opts := DefaultPoolOptions()
	if cfg.MaxConns > 0 {
		opts.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.StatementTimeout > 0 {
		opts.StatementTimeout = cfg.StatementTimeout
	}
	if cfg.ApplicationName != "" {
		opts.ApplicationName = cfg.ApplicationName
	}
	return opts
}

// NewPool abre el pool con la configuración de la app. Con DATABASE_URL el host se
// reemplaza por su IPv4 cuando existe (contenedores sin IPv6).
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := cfg.ConnectionString()
	if cfg.DatabaseURL != "" {
		dsn = databaseURLWithIPv4(cfg.DatabaseURL)
	}
	return NewPoolWithOptions(ctx, dsn, PoolOptionsFrom(cfg))
}

// NewPoolFromDSN pool con DefaultPoolOptions.
func NewPoolFromDSN(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return NewPoolWithOptions(ctx, dsn, DefaultPoolOptions())
}

// NewPoolWithOptions abre el pool y verifica la conexión con un ping.
func NewPoolWithOptions(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewPool: parse DSN: %w", err)
	}
	ConfigurePool(poolConfig, opts)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewPool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.NewPool: ping: %w", err)
	}
	return pool, nil
}

// ConfigurePool aplica tamaño, parámetros de sesión y el codec NUMERIC -> decimal.
func ConfigurePool(pc *pgxpool.Config, opts PoolOptions) {
	pc.MaxConns = opts.MaxConns
	pc.MinConns = 1
	pc.MaxConnLifetime = 30 * time.Minute
	pc.MaxConnIdleTime = 5 * time.Minute
	pc.HealthCheckPeriod = time.Minute

	rp := pc.ConnConfig.RuntimeParams
	if opts.StatementTimeout > 0 {
		// statement_timeout en milisegundos; corta los reportes que se quedan colgados
		rp["statement_timeout"] = strconv.FormatInt(opts.StatementTimeout.Milliseconds(), 10)
	}
	if opts.ApplicationName != "" {
		rp["application_name"] = opts.ApplicationName
	}

	pc.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
}

// databaseURLWithIPv4 cambia el hostname de la URL por su IPv4; si no hay, la deja igual.
func databaseURLWithIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := lookupIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}

func lookupIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", fmt.Errorf("postgres: %s no es IPv4", host)
		}
		return host, nil
	}
	ips, err := net.DefaultResolver.LookupIP(context.Background(), "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("postgres: %s sin IPv4", host)
	}
	return ips[0].String(), nil
}
