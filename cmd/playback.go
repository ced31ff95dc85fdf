package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// playbackCmd groups playback ID commands
var playbackCmd = &cobra.Command{
	Use:   "playback",
	Short: "Manage playback IDs of media and live streams",
}

var playbackMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Playback IDs of on-demand media",
}

var playbackMediaCreateCmd = &cobra.Command{
	Use:   "create <media-id>",
	Short: "Create a playback ID for a media asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.MediaPlaybackIDs.Create(ctx, args[0], data)
		})
	},
}

var playbackMediaDeleteCmd = &cobra.Command{
	Use:   "delete <media-id> <playback-id>...",
	Short: "Delete playback IDs of a media asset",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlaybackDelete(cmd, "media", args[0], args[1:], func(ctx context.Context, id string, pids ...string) (any, error) {
			return client.MediaPlaybackIDs.Delete(ctx, id, pids...)
		})
	},
}

var playbackStreamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Playback IDs of live streams",
}

var playbackStreamCreateCmd = &cobra.Command{
	Use:   "create <stream-id>",
	Short: "Create a playback ID for a live stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreamPlaybackIDs.Create(ctx, args[0], data)
		})
	},
}

var playbackStreamGetCmd = &cobra.Command{
	Use:   "get <stream-id> <playback-id>",
	Short: "Show a playback ID of a live stream",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.LiveStreamPlaybackIDs.Get(ctx, args[0], args[1])
		})
	},
}

var playbackStreamDeleteCmd = &cobra.Command{
	Use:   "delete <stream-id> <playback-id>...",
	Short: "Delete playback IDs of a live stream",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlaybackDelete(cmd, "live stream", args[0], args[1:], func(ctx context.Context, id string, pids ...string) (any, error) {
			return client.LiveStreamPlaybackIDs.Delete(ctx, id, pids...)
		})
	},
}

func init() {
	addDataFlags(playbackMediaCreateCmd)
	addDataFlags(playbackStreamCreateCmd)

	playbackMediaCmd.AddCommand(playbackMediaCreateCmd, playbackMediaDeleteCmd)
	playbackStreamCmd.AddCommand(playbackStreamCreateCmd, playbackStreamGetCmd, playbackStreamDeleteCmd)
	playbackCmd.AddCommand(playbackMediaCmd, playbackStreamCmd)
	rootCmd.AddCommand(playbackCmd)
}
