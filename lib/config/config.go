// Package config provides helper functionality to read the service configuration from JSON or YAML config files or
// OS ENV variables. The default configuration can be overridden first by:
//
// - a valid config file (see cmd/conf.json for a sample). Files ending in .yaml or .yml are read as YAML, anything
// else as JSON, and then by
//
// - OS ENV variables: prefixed with ADP_ (ie. ADP_GATEWAY, ADP_ETH_TOKEN, ADP_DBCONN, ...). All OS ENV variables
// should be valid strings, except for ADP_RPC_TIMEOUT which should be a number of seconds.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tarancss/adptools/lib/util"
)

// OS ENV variable names.
const (
	EnvGateway     = "ADP_GATEWAY"
	EnvEthToken    = "ADP_ETH_TOKEN"
	EnvSolanaToken = "ADP_SOLANA_TOKEN"
	EnvRPCTimeout  = "ADP_RPC_TIMEOUT"
	EnvTransport   = "ADP_TRANSPORT"
	EnvEndpoint    = "ADP_ENDPOINT"
	EnvPort        = "ADP_PORT"
	EnvSSLPort     = "ADP_SSLPORT"
	EnvSSLCert     = "ADP_SSLCERT"
	EnvSSLKey      = "ADP_SSLKEY"
	EnvAuthToken   = "ADP_AUTH_TOKEN"
	EnvDBType      = "ADP_DBTYPE"
	EnvDBConn      = "ADP_DBCONN"
	EnvMbType      = "ADP_MBTYPE"
	EnvMbConn      = "ADP_MBCONN"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Default configuration variables
var (
	GatewayDefault    = "https://go.getblock.io"
	RPCTimeoutDefault = 0
	TransportDefault  = TransportStdio
	RestfulEPDefault  = ""
	PortDefault       = "3030"
	SSLPortDefault    = ""
	SSLCertDefault    = ""
	SSLKeyDefault     = ""
	DBTypeDefault     = "sqlite"
	DBConnDefault     = "" // audit store disabled
	MbTypeDefault     = "amqp"
	MbConnDefault     = "" // broker disabled
)

// Accepted values.
var (
	Transports = []string{TransportStdio, TransportHTTP}
	DBTypes    = []string{"mongodb", "postgresql", "sqlite"}
	MbTypes    = []string{"amqp"}
)

// Error codes
var (
	ErrTransport  = errors.New("unknown transport")
	ErrDBType     = errors.New("unknown database type")
	ErrMbType     = errors.New("unknown message broker type")
	ErrRPCTimeout = errors.New("rpc timeout must be a non-negative number of seconds")
)

// ServiceConfig contains the required fields for the tool server: upstream gateway and access tokens, transport,
// API endpoint, ports, SSL cert and key, bearer token, database and message broker types and urls.
type ServiceConfig struct {
	Gateway         string `json:"gateway" yaml:"gateway"`
	EthToken        string `json:"ethToken" yaml:"ethToken"`
	SolanaToken     string `json:"solanaToken" yaml:"solanaToken"`
	RPCTimeoutSecs  int    `json:"rpcTimeout" yaml:"rpcTimeout"`
	Transport       string `json:"transport" yaml:"transport"`
	RestfulEndpoint string `json:"endpoint" yaml:"endpoint"`
	Port            string `json:"port" yaml:"port"`
	SSLPort         string `json:"sslport" yaml:"sslport"`
	SSLCert         string `json:"sslcert" yaml:"sslcert"`
	SSLKey          string `json:"sslkey" yaml:"sslkey"`
	AuthToken       string `json:"authToken" yaml:"authToken"`
	DBType          string `json:"dbtype" yaml:"dbtype"`
	DBConn          string `json:"dbconn" yaml:"dbconn"`
	MbType          string `json:"mbtype" yaml:"mbtype"`
	MbConn          string `json:"mbconn" yaml:"mbconn"`
}

// ExtractConfiguration reads from the given config filename and returns the ServiceConfig or an error otherwise.
func ExtractConfiguration(filename string) (ServiceConfig, error) {
	conf := ServiceConfig{
		Gateway:         GatewayDefault,
		RPCTimeoutSecs:  RPCTimeoutDefault,
		Transport:       TransportDefault,
		RestfulEndpoint: RestfulEPDefault,
		Port:            PortDefault,
		SSLPort:         SSLPortDefault,
		SSLCert:         SSLCertDefault,
		SSLKey:          SSLKeyDefault,
		DBType:          DBTypeDefault,
		DBConn:          DBConnDefault,
		MbType:          MbTypeDefault,
		MbConn:          MbConnDefault,
	}
	// read from config file first
	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			log.Println("Configuration file not found.")
			return conf, err
		}
		defer file.Close()

		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			err = yaml.NewDecoder(file).Decode(&conf)
		default:
			err = json.NewDecoder(file).Decode(&conf)
		}

		if err != nil {
			return conf, fmt.Errorf("config file %s: %w", filename, err)
		}
	}
	// then override config values with OS ENV variables
	var tmp string
	if tmp = os.Getenv(EnvGateway); tmp != "" {
		conf.Gateway = tmp
	}
	if tmp = os.Getenv(EnvEthToken); tmp != "" {
		conf.EthToken = tmp
	}
	if tmp = os.Getenv(EnvSolanaToken); tmp != "" {
		conf.SolanaToken = tmp
	}
	if tmp = os.Getenv(EnvRPCTimeout); tmp != "" {
		n, err := strconv.Atoi(tmp)
		if err != nil {
			log.Printf("Error reading %s from OS ENV.\n", EnvRPCTimeout)
			return conf, ErrRPCTimeout
		}
		conf.RPCTimeoutSecs = n
	}
	if tmp = os.Getenv(EnvTransport); tmp != "" {
		conf.Transport = tmp
	}
	if tmp = os.Getenv(EnvEndpoint); tmp != "" {
		conf.RestfulEndpoint = tmp
	}
	if tmp = os.Getenv(EnvPort); tmp != "" {
		conf.Port = tmp
	}
	if tmp = os.Getenv(EnvSSLPort); tmp != "" {
		conf.SSLPort = tmp
	}
	if tmp = os.Getenv(EnvSSLCert); tmp != "" {
		conf.SSLCert = tmp
	}
	if tmp = os.Getenv(EnvSSLKey); tmp != "" {
		conf.SSLKey = tmp
	}
	if tmp = os.Getenv(EnvAuthToken); tmp != "" {
		conf.AuthToken = tmp
	}
	if tmp = os.Getenv(EnvDBType); tmp != "" {
		conf.DBType = tmp
	}
	if tmp = os.Getenv(EnvDBConn); tmp != "" {
		conf.DBConn = tmp
	}
	if tmp = os.Getenv(EnvMbType); tmp != "" {
		conf.MbType = tmp
	}
	if tmp = os.Getenv(EnvMbConn); tmp != "" {
		conf.MbConn = tmp
	}

	return conf, conf.Validate()
}

// Validate checks the enumerated fields hold known values.
func (c ServiceConfig) Validate() error {
	switch {
	case !util.In(Transports, c.Transport):
		return fmt.Errorf("%w: %s", ErrTransport, c.Transport)
	case !util.In(DBTypes, c.DBType):
		return fmt.Errorf("%w: %s", ErrDBType, c.DBType)
	case !util.In(MbTypes, c.MbType):
		return fmt.Errorf("%w: %s", ErrMbType, c.MbType)
	case c.RPCTimeoutSecs < 0:
		return ErrRPCTimeout
	}

	return nil
}

// RPCTimeout returns the upstream request timeout. Zero means no timeout.
func (c ServiceConfig) RPCTimeout() time.Duration {
	return time.Duration(c.RPCTimeoutSecs) * time.Second
}

// String prints the configuration with tokens masked and connection passwords redacted, so it can be logged.
func (c ServiceConfig) String() string {
	c.EthToken = util.Mask(c.EthToken)
	c.SolanaToken = util.Mask(c.SolanaToken)
	c.AuthToken = util.Mask(c.AuthToken)
	c.DBConn = util.Redact(c.DBConn)
	c.MbConn = util.Redact(c.MbConn)

	type plain ServiceConfig // drop the String method to avoid recursion

	return fmt.Sprintf("%+v", plain(c))
}
