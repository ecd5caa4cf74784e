package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// DefaultClientRequestTimeout bounds one client request when nothing else is
// configured.
const DefaultClientRequestTimeout = 10 * time.Second

// ClientConfig is the configuration of the command-line client that submits
// patient records to a running proxy.
type ClientConfig struct {
	// ProxyURL is the base URL of the proxy, e.g. "http://localhost:3000".
	// Env: APP_PROXY_URL
	ProxyURL string `env:"APP_PROXY_URL"`

	// Token is the plain ETL token sent as Basic credentials.
	// Env: APP_ETL_TOKEN
	Token string `env:"APP_ETL_TOKEN"`

	// RequestTimeout bounds a single request to the proxy.
	// Env: APP_CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"APP_CLIENT_REQUEST_TIMEOUT"`

	// RecordFile is the path of an MTB JSON document to submit.
	RecordFile string

	// WithdrawPatientID requests a consent withdrawal for this patient.
	WithdrawPatientID string
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the given command-line arguments.
//
// Flags:
//
//	-url proxy base URL
//	-token plain ETL token
//	-timeout request timeout
//	-file MTB JSON document to submit
//	-delete patient id whose consent is withdrawn
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg := &ClientConfig{}
	fs := flag.NewFlagSet("dnpm-kafka-rest-proxy-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagsCfg.ProxyURL, "url", "", "Proxy base URL")
	fs.StringVar(&flagsCfg.Token, "token", "", "ETL token")
	fs.DurationVar(&flagsCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&flagsCfg.RecordFile, "file", "", "MTB JSON file to submit")
	fs.StringVar(&flagsCfg.WithdrawPatientID, "delete", "", "Patient id whose consent is withdrawn")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &ClientConfig{RequestTimeout: DefaultClientRequestTimeout}
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}
