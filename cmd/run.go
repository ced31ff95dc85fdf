package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fastpix/bulk"
)

// printCall runs a single API call and prints its response.
func printCall(cmd *cobra.Command, call func(ctx context.Context) (any, error)) error {
	result, err := call(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd, result)
}

// runBulkDelete applies fn to every id with the configured concurrency.
// With --dry-run it only lists the IDs.
func runBulkDelete(cmd *cobra.Command, kind string, ids []string, fn bulk.Func) error {
	out := cmd.OutOrStdout()

	if dryRun {
		targets := make([]string, len(ids))
		for i, id := range ids {
			targets[i] = kind + " " + id
		}
		printDryRun(cmd, targets)
		return nil
	}

	runner := bulk.NewRunner(cfg.Bulk.Concurrency, logger)
	logger.Debug().Int("count", len(ids)).Int("concurrency", runner.Concurrency()).Str("kind", kind).Msg("Deleting resources")

	result := runner.Run(cmd.Context(), ids, fn)
	return printBulkResult(out, kind, result)
}

// printDryRun lists the deletes a command would have sent.
func printDryRun(cmd *cobra.Command, targets []string) {
	for _, target := range targets {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Warn.Render("[DRY RUN] would delete "+target))
	}
}

// runPlaybackDelete revokes playbackIDs of one parent resource in a single
// request, or only lists them with --dry-run.
func runPlaybackDelete(cmd *cobra.Command, parent, parentID string, playbackIDs []string,
	del func(ctx context.Context, parentID string, playbackIDs ...string) (any, error)) error {
	if dryRun {
		targets := make([]string, len(playbackIDs))
		for i, id := range playbackIDs {
			targets[i] = fmt.Sprintf("playback ID %s of %s %s", id, parent, parentID)
		}
		printDryRun(cmd, targets)
		return nil
	}

	return printCall(cmd, func(ctx context.Context) (any, error) {
		return del(ctx, parentID, playbackIDs...)
	})
}
