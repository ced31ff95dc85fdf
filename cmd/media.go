package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fastpix/fastpix"
)

var pullURL string

// mediaCmd groups on-demand media commands
var mediaCmd = &cobra.Command{
	Use:     "media",
	Aliases: []string{"on-demand"},
	Short:   "Manage on-demand media",
}

var mediaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List media",
	Long: `List on-demand media, optionally filtered with an expression:

  fastpix media list --filter 'status == "ready" and duration > 60'
  fastpix media list --filter 'hasText(title, "trailer") and daysSince(createdAt) < 7'

hasText, hasPrefix and hasSuffix match case-insensitively; the contains,
startsWith and endsWith operators are case-sensitive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Media.List(cmd.Context(), listQuery())
		if err != nil {
			return err
		}
		return printList(cmd, result)
	},
}

var mediaGetCmd = &cobra.Command{
	Use:   "get <media-id>",
	Short: "Show a media asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.Media.Get(ctx, args[0])
		})
	},
}

var mediaUpdateCmd = &cobra.Command{
	Use:   "update <media-id>",
	Short: "Update a media asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.Media.Update(ctx, args[0], data)
		})
	},
}

var mediaDeleteCmd = &cobra.Command{
	Use:   "delete <media-id>...",
	Short: "Delete one or more media assets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkDelete(cmd, "media", args, func(ctx context.Context, id string) error {
			_, err := client.Media.Delete(ctx, id)
			return err
		})
	},
}

var mediaPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Create media from a remote video URL",
	Long: `Create on-demand media by pulling a video from a URL. The access policy
defaults to public unless the body sets accessPolicy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		data = withPullInput(data, pullURL)
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.Media.CreatePullVideo(ctx, data)
		})
	},
}

var mediaUploadURLCmd = &cobra.Command{
	Use:   "upload-url",
	Short: "Get a presigned URL for a direct upload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd)
		if err != nil {
			return err
		}
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.Media.GetPresignedURL(ctx, data)
		})
	},
}

var mediaInfoCmd = &cobra.Command{
	Use:   "info <media-id>",
	Short: "Show the input info of a media asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCall(cmd, func(ctx context.Context) (any, error) {
			return client.Media.GetMediaInfo(ctx, args[0])
		})
	},
}

func init() {
	addListFlags(mediaListCmd)
	addDataFlags(mediaUpdateCmd)
	addDataFlags(mediaPullCmd)
	addDataFlags(mediaUploadURLCmd)
	mediaPullCmd.Flags().StringVar(&pullURL, "url", "", "video URL to pull (adds a video input to the body)")

	mediaCmd.AddCommand(mediaListCmd, mediaGetCmd, mediaUpdateCmd, mediaDeleteCmd,
		mediaPullCmd, mediaUploadURLCmd, mediaInfoCmd)
	rootCmd.AddCommand(mediaCmd)
}

// withPullInput adds a video input for url unless the body already lists inputs.
func withPullInput(data fastpix.Payload, url string) fastpix.Payload {
	if url == "" {
		return data
	}
	if _, ok := data["inputs"]; ok {
		return data
	}
	out := make(fastpix.Payload, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["inputs"] = []any{map[string]any{"type": "video", "url": url}}
	return out
}
