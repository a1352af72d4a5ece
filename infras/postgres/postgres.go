package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"multimedia/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var errNoConnection = errors.New("could not connect to database")

// Connection splits reads and writes across two pools, which may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	read, err := connect("read", config, config.DB.Postgres.Read.Username, config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host, config.DB.Postgres.Read.Port, config.DB.Postgres.Read.Name, config.DB.Postgres.Read.SSLMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open read connection")
	}

	write, err := connect("write", config, config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port, config.DB.Postgres.Write.Name, config.DB.Postgres.Write.SSLMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open write connection")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

func (c *Connection) Close() error {
	return multierr.Combine(c.Read.Close(), c.Write.Close())
}

// DSN builds the lib/pq connection string, applying the configured database name prefix.
func DSN(config *config.Config, username, password, host, port, name, sslMode string) string {
	if config.DB.Postgres.Prefix != "" {
		name = config.DB.Postgres.Prefix + name
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		name,
		sslMode,
	)
}

func connect(name string, config *config.Config, username, password, host, port, dbName, sslMode string) (*sqlx.DB, error) {
	descriptor := DSN(config, username, password, host, port, dbName, sslMode)
	maxRetry := max(config.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s) after %d attempts", errNoConnection, name, maxRetry)
}
