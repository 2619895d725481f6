// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to command-line flags. Register the groups a
// command needs, let cobra parse, then call [Flags.Config].
type Flags struct {
	jsonConfigPath   string
	adapterAddress   string
	basePath         string
	requestTimeout   time.Duration
	databaseDSN      string
	checkTokenExpiry bool
	logFile          string

	checkTokenExpiryFlag *pflag.Flag

	stubAddress   NetAddress
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
}

// NewFlags returns an empty flag set binding.
func NewFlags() *Flags {
	return &Flags{}
}

// RegisterClient binds the API client flags.
//
// Flags:
//
//	-a, --address         backend address, e.g. http://localhost:8080
//	    --base-path       path prefix of every endpoint, e.g. /api
//	    --request-timeout request timeout (e.g., "30s", "1m")
//	-d, --dsn             SQLite session database path
//	    --check-token-expiry drop an expired stored token on start
//	    --log-file        log file path
//	-c, --config          json file path with configs
func (f *Flags) RegisterClient(fs *pflag.FlagSet) {
	fs.StringVarP(&f.adapterAddress, "address", "a", "", "Backend address")
	fs.StringVar(&f.basePath, "base-path", "", "Path prefix of every endpoint")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Session database path")
	fs.BoolVar(&f.checkTokenExpiry, "check-token-expiry", false, "Drop an expired stored token on start")
	f.checkTokenExpiryFlag = fs.Lookup("check-token-expiry")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	f.registerConfigPath(fs)
}

// RegisterStub binds the backend stub flags.
//
// Flags:
//
//	-l, --listen          listen address in format [host]:[port]
//	    --token-sign-key  token signing key
//	    --token-issuer    token issuer name
//	    --token-duration  token duration (e.g., "1h", "30m")
//	-c, --config          json file path with configs
func (f *Flags) RegisterStub(fs *pflag.FlagSet) {
	fs.VarP(&f.stubAddress, "listen", "l", "Net address host:port")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&f.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	f.registerConfigPath(fs)
}

func (f *Flags) registerConfigPath(fs *pflag.FlagSet) {
	if fs.Lookup("config") != nil {
		return
	}
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
}

// Config returns the parsed flag values as a config layer. Unset flags stay
// zero and do not override other sources; a boolean flag given explicitly,
// even as false, does.
func (f *Flags) Config() *StructuredConfig {
	var checkTokenExpiry Toggle
	if f.checkTokenExpiryFlag != nil && f.checkTokenExpiryFlag.Changed {
		checkTokenExpiry = ToggleOf(f.checkTokenExpiry)
	}

	return &StructuredConfig{
		App: App{
			CheckTokenExpiry: checkTokenExpiry,
		},
		Adapter: Adapter{
			HTTPAddress:    f.adapterAddress,
			BasePath:       f.basePath,
			RequestTimeout: f.requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.databaseDSN,
			},
		},
		Log: Log{
			File: f.logFile,
		},
		Stub: Stub{
			HTTPAddress:   f.stubAddress.String(),
			TokenSignKey:  f.tokenSignKey,
			TokenIssuer:   f.tokenIssuer,
			TokenDuration: f.tokenDuration,
		},
		JSONFilePath: f.jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}
