package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showPassword bool

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Encode and inspect credential tokens",
}

// tokenEncodeCmd represents the token encode command
var tokenEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a credential pair into a token",
	Long: `Prompt for a username and password and print the encrypted token, as
amibot would store it. The password prompt does not echo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), "username: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		username, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(username)

		fmt.Fprint(cmd.OutOrStdout(), "password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		token, err := codec.Encode(username, string(password))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

// tokenDecodeCmd represents the token decode command
var tokenDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a stored token",
	Long: `Decode a token and print the username it holds. The password is withheld
unless --show-password is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}

		username, password, err := codec.Decode(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "username: %s\n", username)
		if showPassword {
			fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", password)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "password: (hidden, use --show-password)")
		}
		return nil
	},
}

func init() {
	tokenDecodeCmd.Flags().BoolVar(&showPassword, "show-password", false, "print the decoded password")

	tokenCmd.AddCommand(tokenEncodeCmd)
	tokenCmd.AddCommand(tokenDecodeCmd)
	rootCmd.AddCommand(tokenCmd)
}
