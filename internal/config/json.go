package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonFile mirrors StructuredConfig for file parsing. Durations are accepted
// as strings ("720h", "30s") because encoding/json has no native
// time.Duration support.
type jsonFile struct {
	App struct {
		KeyTTL        string `json:"key_ttl"`
		TokenSignKey  string `json:"token_sign_key"`
		TokenIssuer   string `json:"token_issuer"`
		TokenDuration string `json:"token_duration"`
	} `json:"app"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string `json:"address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON reads the configuration file at path and converts it to a
// StructuredConfig suitable for merging with the env and flag sources.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = file.App.TokenSignKey
	cfg.App.TokenIssuer = file.App.TokenIssuer
	cfg.Storage.DB.DSN = file.Storage.DB.DSN
	cfg.Server.HTTPAddress = file.Server.HTTPAddress

	if cfg.App.KeyTTL, err = parseOptionalDuration(file.App.KeyTTL); err != nil {
		return nil, fmt.Errorf("error parsing key_ttl: %w", err)
	}
	if cfg.App.TokenDuration, err = parseOptionalDuration(file.App.TokenDuration); err != nil {
		return nil, fmt.Errorf("error parsing token_duration: %w", err)
	}
	if cfg.Server.RequestTimeout, err = parseOptionalDuration(file.Server.RequestTimeout); err != nil {
		return nil, fmt.Errorf("error parsing request_timeout: %w", err)
	}

	return cfg, nil
}

func parseOptionalDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}
