package main

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a credential encryption key",
	Long: `Generate a new Base64-encoded 256-bit AES key for the credential vault.

Losing this key invalidates every stored credential irreversibly, so put it
somewhere durable before pointing amibot at it.

Example:

  $ export AMIBOT_CREDENTIAL_KEY="$(amibotctl keygen)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := credentials.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
