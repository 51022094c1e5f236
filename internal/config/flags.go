package config

import (
	"flag"
	"os"
	"time"

	"github.com/Blonteractor/discord-amibot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   upstream Amizone gRPC endpoint (host:port)
//	-s          dial upstream with TLS
//	-d string   PostgreSQL DSN
//	-m string   codec strategy ("aesgcm" or "basic")
//	-k string   path to a base64 key file
//	-e string   environment variable holding a base64 key
//	-l string   log level (debug, info, warn, error)
//	-t int      per-command timeout, seconds
//
// os.Args is first filtered down to the flags handled here so parsing does
// not collide with flags defined by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-m", "-k", "-e", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.AmizoneAddr, "a", config.AmizoneAddr, "amizone gRPC endpoint")
	fs.BoolVar(&config.AmizoneTLS, "s", config.AmizoneTLS, "dial upstream with TLS")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.CodecStrategy, "m", config.CodecStrategy, "credential codec strategy")
	fs.StringVar(&config.KeyFile, "k", config.KeyFile, "path to base64 key file")
	fs.StringVar(&config.KeyEnv, "e", config.KeyEnv, "environment variable with base64 key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	commandTimeout := fs.Int("t", int(config.CommandTimeout.Seconds()), "command timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CommandTimeout = time.Duration(*commandTimeout) * time.Second
}
