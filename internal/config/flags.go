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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config JSON or YAML file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-algorithm bootstrap cipher type
//	-secret-source bootstrap secret source
//	-secret-data bootstrap secret variable name or vault path
//	-rotation-interval rotation worker tick
//	-concurrency parallel record rotations
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress    NetAddress
		databaseDSN      string
		databaseDriver   string
		configPath       string
		tokenSignKey     string
		tokenIssuer      string
		tokenDuration    time.Duration
		requestTimeout   time.Duration
		algorithm        string
		secretSource     string
		secretData       string
		rotationInterval time.Duration
		concurrency      int
		logLevel         string
	)

	fs := flag.NewFlagSet("go-crypt-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&algorithm, "algorithm", "", "Bootstrap cipher type")
	fs.StringVar(&secretSource, "secret-source", "", "Bootstrap secret source (NONE, ENVIRONMENT_VARIABLE, VAULT)")
	fs.StringVar(&secretData, "secret-data", "", "Bootstrap secret variable name or vault path")
	fs.DurationVar(&rotationInterval, "rotation-interval", 0, "Rotation worker interval")
	fs.IntVar(&concurrency, "concurrency", 0, "Parallel record rotations")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Encryption: Encryption{
			Algorithm:    algorithm,
			SecretSource: secretSource,
			SecretData:   secretData,
		},
		Workers: Workers{
			RotationInterval: rotationInterval,
			Concurrency:      concurrency,
		},
		JSONFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
