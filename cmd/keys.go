package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// keysCmd groups signing key commands
var keysCmd = &cobra.Command{
	Use:     "keys",
	Aliases: []string{"signing-keys"},
	Short:   "Manage signing keys",
}

var keyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a signing key",
	Long:  `Create a signing key. The private key is only shown once, in this response.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, client.SigningKeys.Create)
	},
}

var keyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List signing keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.SigningKeys.List(cmd.Context())
		if err != nil {
			return err
		}
		return printList(cmd, result)
	},
}

var keyGetCmd = &cobra.Command{
	Use:   "get <signing-key-id>",
	Short: "Show a signing key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.SigningKeys.Get(ctx, args[0])
		})
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:   "delete <signing-key-id>...",
	Short: "Delete one or more signing keys",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkDelete(cmd, "signing key", args, func(ctx context.Context, id string) error {
			_, err := client.SigningKeys.Delete(ctx, id)
			return err
		})
	},
}

func init() {
	keyListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the returned keys")
	keyListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	keysCmd.AddCommand(keyCreateCmd, keyListCmd, keyGetCmd, keyDeleteCmd)
	rootCmd.AddCommand(keysCmd)
}
