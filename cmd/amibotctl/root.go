package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

var (
	keyFile string
	keyEnv  string
)

// rootCmd represents amibotctl itself.
var rootCmd = &cobra.Command{
	Use:   "amibotctl",
	Short: "Operate the amibot credential vault",
	Long: `amibotctl manages the credential vault behind amibot.

Commands that touch encrypted tokens need the vault's AES key. Supply it
with --key-file, or leave the default and export it through the
environment variable named by --key-env.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&keyFile, "key-file", "", "path to a base64-encoded AES key file")
	rootCmd.PersistentFlags().StringVar(&keyEnv, "key-env", "AMIBOT_CREDENTIAL_KEY", "environment variable holding a base64 AES key")
}

// loadCodec builds the AEAD codec from the key flags.
func loadCodec() (credentials.Codec, error) {
	src := credentials.KeySource{File: keyFile, Env: keyEnv}
	key, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load key: %w", err)
	}
	return credentials.NewAESGCMCodec(key)
}
