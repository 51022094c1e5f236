package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags set",
			args: []string{"cmd",
				"-a", "amizone.example:443", "-s",
				"-d", "postgres://bot@db/amibot",
				"-m", "aesgcm", "-k", "/etc/amibot/key",
				"-l", "debug", "-t", "45",
			},
			expected: &Config{
				AmizoneAddr:    "amizone.example:443",
				AmizoneTLS:     true,
				DatabaseDSN:    "postgres://bot@db/amibot",
				CodecStrategy:  "aesgcm",
				KeyFile:        "/etc/amibot/key",
				LogLevel:       "debug",
				CommandTimeout: 45 * time.Second,
			},
		},
		{
			name: "no flags keeps zero config",
			args: []string{"cmd"},
			expected: &Config{
				CommandTimeout: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
