package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses all configuration flags from args (without the program
// name). Unknown flags and malformed values are reported as errors.
//
// Flags:
//
//	-listen listen address in format [host]:[port]
//	-request-timeout inbound request read timeout (e.g. "10s")
//	-bootstrap-server/-kafka-servers comma separated Kafka brokers
//	-topic/-kafka-topic Kafka topic
//	-send-timeout bound for awaiting the broker acknowledgement
//	-delivery-timeout bound for the producer's own retries
//	-ssl-ca-file, -ssl-cert-file, -ssl-key-file, -ssl-key-password TLS material
//	-token/-security-token bcrypt hash of the ETL token
//	-log-level zerolog level
//	-tracing export spans to stdout
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dnpm-kafka-rest-proxy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var listen NetAddress
	var requestTimeout time.Duration
	var servers string
	var topic string
	var sendTimeout, deliveryTimeout time.Duration
	var ssl SSL
	var token string
	var logLevel string
	var tracing bool
	var jsonConfigPath string

	fs.Var(&listen, "listen", "Listen address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&servers, "bootstrap-server", "", "Comma separated Kafka bootstrap servers")
	fs.StringVar(&servers, "kafka-servers", "", "Comma separated Kafka bootstrap servers (alias)")
	fs.StringVar(&topic, "topic", "", "Kafka topic")
	fs.StringVar(&topic, "kafka-topic", "", "Kafka topic (alias)")
	fs.DurationVar(&sendTimeout, "send-timeout", 0, "Time to wait for the broker acknowledgement (e.g. 1s)")
	fs.DurationVar(&deliveryTimeout, "delivery-timeout", 0, "Producer delivery timeout (e.g. 5s)")
	fs.StringVar(&ssl.CAFile, "ssl-ca-file", "", "PEM CA bundle for the broker connection")
	fs.StringVar(&ssl.CertFile, "ssl-cert-file", "", "PEM client certificate")
	fs.StringVar(&ssl.KeyFile, "ssl-key-file", "", "PEM client key")
	fs.StringVar(&ssl.KeyPassword, "ssl-key-password", "", "Password of an encrypted client key")
	fs.StringVar(&token, "token", "", "bcrypt hash of the ETL token")
	fs.StringVar(&token, "security-token", "", "bcrypt hash of the ETL token (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&tracing, "tracing", false, "Export traces to stdout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Listen:         listen.String(),
			RequestTimeout: requestTimeout,
		},
		Kafka: Kafka{
			Servers:         splitServers(servers),
			Topic:           topic,
			SendTimeout:     sendTimeout,
			DeliveryTimeout: deliveryTimeout,
			SSL:             ssl,
		},
		Security: Security{
			Token: token,
		},
		Log: Log{
			Level: logLevel,
		},
		Telemetry: Telemetry{
			TracingEnabled: tracing,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitServers(s string) []string {
	if s == "" {
		return nil
	}

	var servers []string
	for _, server := range strings.Split(s, ",") {
		if server = strings.TrimSpace(server); server != "" {
			servers = append(servers, server)
		}
	}
	return servers
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// IPv6 hosts must be bracketed ("[::]:3000"). An empty host binds all
// interfaces. It validates the port range, checks IP correctness unless host
// is "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
