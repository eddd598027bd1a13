package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamyuentse/go-pomotodo/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login <token>",
	Short: "Save an access token",
	Long: `Verify a Pomotodo access token and save it to ~/.pomotodo/config.toml.

Tokens can be generated in the Pomotodo account settings.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		token := args[0]

		cfg, err := config.Load()
		if err != nil {
			handleError(err)
		}
		cfg.Token = token

		// Verify the token before storing it.
		c, err := clientFromConfig(cfg)
		if err != nil {
			handleError(err)
		}
		account, err := c.Account(context.Background())
		if err != nil {
			handleError(err)
		}

		if err := config.Save(cfg); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Logged in as %s", account.Username), jsonOutput)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored access token",
	Long:  `Remove the stored access token and config file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Delete(); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, "Logged out", jsonOutput)
	},
}

var accountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"whoami"},
	Short:   "Show the authenticated account",
	Long:    `Show the account profile of the configured access token.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		account, err := c.Account(context.Background())
		if err != nil {
			handleError(err)
		}

		printAccount(os.Stdout, account, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(accountCmd)
}
