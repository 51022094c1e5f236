package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Blonteractor/discord-amibot/internal/flagx"
	"github.com/Blonteractor/discord-amibot/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON config
// files. It uses timex.Duration so intervals can be written either as
// strings like "30s" or as integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config struct.
type JsonConfig struct {
	AmizoneAddr    string         `json:"amizone_addr"`
	AmizoneTLS     *bool          `json:"amizone_tls"`
	DatabaseDSN    string         `json:"database_dsn"`
	CodecStrategy  string         `json:"codec_strategy"`
	KeyFile        string         `json:"key_file"`
	KeyEnv         string         `json:"key_env"`
	KeyPassphrase  string         `json:"key_passphrase"`
	KeySalt        string         `json:"key_salt"`
	LogLevel       string         `json:"log_level"`
	CommandTimeout timex.Duration `json:"command_timeout"`
}

// parseJson overlays configuration values from a JSON file onto config.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values. An unreadable file or invalid JSON panics, since
// a half-applied config is worse than no process.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.AmizoneAddr != "" {
		config.AmizoneAddr = c.AmizoneAddr
	}
	if c.AmizoneTLS != nil {
		config.AmizoneTLS = *c.AmizoneTLS
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CodecStrategy != "" {
		config.CodecStrategy = c.CodecStrategy
	}
	if c.KeyFile != "" {
		config.KeyFile = c.KeyFile
	}
	if c.KeyEnv != "" {
		config.KeyEnv = c.KeyEnv
	}
	if c.KeyPassphrase != "" {
		config.KeyPassphrase = c.KeyPassphrase
	}
	if c.KeySalt != "" {
		config.KeySalt = c.KeySalt
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.CommandTimeout.Duration != 0 {
		config.CommandTimeout = time.Duration(c.CommandTimeout.Duration)
	}
}
