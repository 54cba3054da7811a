package postgres

import "time"

// Config holds PostgreSQL connection configuration. Defaults suit a single
// storefront service instance behind a connection pooler-less setup.
type Config struct {
	ConnectionString string        `env:"DATABASE_URL,required"`
	MaxOpenConns     int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns     int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime  time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	ConnMaxLifetime  time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}
