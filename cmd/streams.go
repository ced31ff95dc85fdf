package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// streamsCmd groups live stream commands
var streamsCmd = &cobra.Command{
	Use:     "streams",
	Aliases: []string{"live"},
	Short:   "Manage live streams and simulcast targets",
}

var streamCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a live stream",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.Create(ctx, data)
		})
	},
}

var streamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List live streams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.LiveStreams.List(cmd.Context(), listQuery())
		if err != nil {
			return err
		}
		return printList(cmd, result)
	},
}

var streamGetCmd = &cobra.Command{
	Use:   "get <stream-id>",
	Short: "Show a live stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.Get(ctx, args[0])
		})
	},
}

var streamUpdateCmd = &cobra.Command{
	Use:   "update <stream-id>",
	Short: "Update a live stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.Update(ctx, args[0], data)
		})
	},
}

var streamDeleteCmd = &cobra.Command{
	Use:   "delete <stream-id>...",
	Short: "Delete one or more live streams",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkDelete(cmd, "live stream", args, func(ctx context.Context, id string) error {
			_, err := client.LiveStreams.Delete(ctx, id)
			return err
		})
	},
}

// simulcastCmd groups simulcast commands
var simulcastCmd = &cobra.Command{
	Use:   "simulcast",
	Short: "Manage simulcast targets of a live stream",
}

var simulcastCreateCmd = &cobra.Command{
	Use:   "create <stream-id>",
	Short: "Add a simulcast target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.CreateSimulcast(ctx, args[0], data)
		})
	},
}

var simulcastGetCmd = &cobra.Command{
	Use:   "get <stream-id> <simulcast-id>",
	Short: "Show a simulcast target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.GetSimulcast(ctx, args[0], args[1])
		})
	},
}

var simulcastUpdateCmd = &cobra.Command{
	Use:   "update <stream-id> <simulcast-id>",
	Short: "Update a simulcast target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.UpdateSimulcast(ctx, args[0], args[1], data)
		})
	},
}

var simulcastDeleteCmd = &cobra.Command{
	Use:   "delete <stream-id> <simulcast-id>",
	Short: "Remove a simulcast target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			printDryRun(cmd, []string{fmt.Sprintf("simulcast %s of live stream %s", args[1], args[0])})
			return nil
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreams.DeleteSimulcast(ctx, args[0], args[1])
		})
	},
}

func init() {
	addDataFlags(streamCreateCmd)
	addListFlags(streamListCmd)
	addDataFlags(streamUpdateCmd)
	addDataFlags(simulcastCreateCmd)
	addDataFlags(simulcastUpdateCmd)

	simulcastCmd.AddCommand(simulcastCreateCmd, simulcastGetCmd, simulcastUpdateCmd, simulcastDeleteCmd)
	streamsCmd.AddCommand(streamCreateCmd, streamListCmd, streamGetCmd, streamUpdateCmd, streamDeleteCmd, simulcastCmd)
	rootCmd.AddCommand(streamsCmd)
}
