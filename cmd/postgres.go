package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"
)

const (
	postgresHostFlag     = "postgres-host"
	postgresPortFlag     = "postgres-port"
	postgresUserFlag     = "postgres-user"
	postgresPasswordFlag = "postgres-password"
	postgresDatabaseFlag = "postgres-database"
	postgresSSLModeFlag  = "postgres-sslmode"
)

// NewPostgreSQLFlags creates the flags of the snapshot archive. The archive
// is disabled when the host is empty.
func NewPostgreSQLFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    postgresHostFlag,
			Usage:   "postgres host, empty disables the coin snapshot archive",
			EnvVars: []string{"POSTGRES_HOST"},
		},
		&cli.IntFlag{
			Name:    postgresPortFlag,
			Value:   5432,
			EnvVars: []string{"POSTGRES_PORT"},
		},
		&cli.StringFlag{
			Name:    postgresUserFlag,
			Value:   "postgres",
			EnvVars: []string{"POSTGRES_USER"},
		},
		&cli.StringFlag{
			Name:    postgresPasswordFlag,
			EnvVars: []string{"POSTGRES_PASSWORD"},
		},
		&cli.StringFlag{
			Name:    postgresDatabaseFlag,
			Value:   "coin_whatif",
			EnvVars: []string{"POSTGRES_DATABASE"},
		},
		&cli.StringFlag{
			Name:    postgresSSLModeFlag,
			Value:   "disable",
			EnvVars: []string{"POSTGRES_SSLMODE"},
		},
	}
}

func postgresEnabled(c *cli.Context) bool {
	return c.String(postgresHostFlag) != ""
}

func NewDBFromContext(c *cli.Context) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.String(postgresHostFlag),
		c.Int(postgresPortFlag),
		c.String(postgresUserFlag),
		c.String(postgresPasswordFlag),
		c.String(postgresDatabaseFlag),
		c.String(postgresSSLModeFlag),
	)
	return sqlx.Connect("postgres", dsn)
}
