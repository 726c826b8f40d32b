package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a "host:port" listen address. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// originList is a comma separated list of CORS origins. It implements
// flag.Value; repeating the flag appends to the list.
type originList []string

// ParseFlags parses the server flags in args (without the program name).
//
//	-a                  listen address, [host]:port
//	-d                  PostgreSQL DSN
//	-c, -config         JSON config file
//	-token-sign-key     JWT signing key
//	-token-duration     JWT lifetime, e.g. 1h
//	-request-timeout    per-request timeout, e.g. 30s
//	-allowed-origins    CORS origins, comma separated
//	-max-open-conns     size of the database pool
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		origins        originList
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		maxOpenConns   int
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "JWT lifetime (e.g. 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "per-request timeout (e.g. 30s); 0 disables it")
	fs.Var(&origins, "allowed-origins", "CORS origins, comma separated")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "maximum number of open database connections")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: origins,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns "host:port", or "" when the address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty (all interfaces),
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (o *originList) String() string {
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}
