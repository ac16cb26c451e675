package httputil

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Port is the default listening port of the http server.
const Port = 8080

const (
	httpHostFlag = "http-host"
	httpPortFlag = "http-port"
)

func NewHTTPCliFlags(defaultPort int) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    httpHostFlag,
			Value:   "0.0.0.0",
			Usage:   "host the http server binds to",
			EnvVars: []string{"HTTP_HOST"},
		},
		&cli.IntFlag{
			Name:    httpPortFlag,
			Value:   defaultPort,
			Usage:   "port the http server listens on",
			EnvVars: []string{"HTTP_PORT"},
		},
	}
}

func NewHTTPAddressFromContext(c *cli.Context) string {
	return fmt.Sprintf("%s:%d", c.String(httpHostFlag), c.Int(httpPortFlag))
}
