package config

import (
	"flag"
	"os"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-key-ttl API key lifetime (e.g., "720h"; negative disables expiry)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration admin session token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

// parseFlags registers all flags on a fresh FlagSet and parses args into a
// config. A fresh set per call keeps repeated parsing (tests) from tripping
// over flag redefinition.
func parseFlags(args []string) *StructuredConfig {
	flagSet := flag.NewFlagSet("go-key-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var keyTTL time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flagSet.Var(&serverAddress, "a", "Net address host:port")
	flagSet.StringVar(&databaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flagSet.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flagSet.DurationVar(&keyTTL, "key-ttl", 0, "API key lifetime (e.g., 720h)")
	flagSet.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flagSet.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flagSet.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flagSet.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	// ContinueOnError: an unknown flag should not kill the process before
	// env and JSON sources have had their say.
	_ = flagSet.Parse(args)

	return &StructuredConfig{
		App: App{
			KeyTTL:        keyTTL,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that
// merging does not override addresses from other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "host:port" value into the receiver.
// Implements the flag.Value interface.
func (a *NetAddress) Set(value string) error {
	host, portString, found := strings.Cut(value, ":")
	if !found {
		return ErrInvalidNetAddress
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return ErrInvalidNetAddress
	}

	a.Host = host
	a.Port = port
	return nil
}
