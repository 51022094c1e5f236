package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blonteractor/discord-amibot/internal/store"
)

var migrateDSN string

// migrateTokensCmd represents the migrate-tokens command
var migrateTokensCmd = &cobra.Command{
	Use:   "migrate-tokens",
	Short: "Re-encode legacy tokens with the AES codec",
	Long: `Walk every stored credential and re-encode reversible-encoding ("Basic")
tokens through the AES-GCM codec, inside a single transaction. Rows already
in the AES format are left untouched. Run this once when switching a
deployment from the basic codec; afterwards the runtime's legacy fallback
never fires.

Example:

  amibotctl migrate-tokens --dsn postgres://bot@db/amibot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}

		db, err := store.Open(migrateDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := store.RunMigrations(ctx, db); err != nil {
			return err
		}

		res, err := store.NewPostgres(db, codec).MigrateLegacyTokens(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "migrated %d token(s), %d already current\n",
			res.Migrated, res.Skipped)
		return nil
	},
}

func init() {
	migrateTokensCmd.Flags().StringVar(&migrateDSN, "dsn", "", "PostgreSQL DSN of the credential store")
	_ = migrateTokensCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateTokensCmd)
}
