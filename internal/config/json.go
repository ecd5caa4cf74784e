package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept Go duration strings ("1s", "500ms") or integer nanoseconds.
type StructuredJSONConfig struct {
	Server struct {
		Listen         string   `json:"listen"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Kafka struct {
		Servers         []string `json:"servers"`
		Topic           string   `json:"topic"`
		SendTimeout     Duration `json:"send_timeout"`
		DeliveryTimeout Duration `json:"delivery_timeout"`
		SSL             struct {
			CAFile      string `json:"ca_file"`
			CertFile    string `json:"cert_file"`
			KeyFile     string `json:"key_file"`
			KeyPassword string `json:"key_password"`
		} `json:"ssl,omitempty"`
	} `json:"kafka,omitempty"`

	Security struct {
		Token string `json:"token"`
	} `json:"security,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Telemetry struct {
		TracingEnabled bool `json:"tracing_enabled"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Listen:         jsonCfg.Server.Listen,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Kafka: Kafka{
			Servers:         jsonCfg.Kafka.Servers,
			Topic:           jsonCfg.Kafka.Topic,
			SendTimeout:     time.Duration(jsonCfg.Kafka.SendTimeout),
			DeliveryTimeout: time.Duration(jsonCfg.Kafka.DeliveryTimeout),
			SSL: SSL{
				CAFile:      jsonCfg.Kafka.SSL.CAFile,
				CertFile:    jsonCfg.Kafka.SSL.CertFile,
				KeyFile:     jsonCfg.Kafka.SSL.KeyFile,
				KeyPassword: jsonCfg.Kafka.SSL.KeyPassword,
			},
		},
		Security: Security{
			Token: jsonCfg.Security.Token,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Telemetry: Telemetry{
			TracingEnabled: jsonCfg.Telemetry.TracingEnabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
