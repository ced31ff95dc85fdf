package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fastpix/fastpix"
	"github.com/s0up4200/fastpix/filter"
)

var (
	// Request body flags
	dataJSON string
	dataFile string

	// List flags
	filterExpr string
	preset     string
	limit      int
	offset     int
	orderBy    string
)

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dataJSON, "data", "", "request body as a JSON object")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "read the request body from a JSON file ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the returned items")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of items per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (asc or desc)")
}

// readPayload returns the body given by --data or --data-file, or nil.
func readPayload(cmd *cobra.Command) (fastpix.Payload, error) {
	var raw []byte
	switch {
	case dataJSON != "":
		raw = []byte(dataJSON)
	case dataFile == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
		raw = b
	case dataFile != "":
		b, err := os.ReadFile(dataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		raw = b
	default:
		return nil, nil
	}

	return parsePayload(raw)
}

func parsePayload(raw []byte) (fastpix.Payload, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	var payload fastpix.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("request body must be a JSON object: %w", err)
	}
	return payload, nil
}

// listQuery builds pagination parameters from the list flags.
func listQuery() url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if orderBy != "" {
		q.Set("orderBy", orderBy)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if cfg != nil {
			if expr, ok := cfg.Filter[strings.ToLower(preset)]; ok {
				return expr, nil
			}
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// printList applies the filter flags to a list response and prints it.
func printList(cmd *cobra.Command, response any) error {
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	if expr != "" {
		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		filtered, stats, err := filter.Apply(f, response)
		if err != nil {
			return err
		}
		if stats.Skipped > 0 {
			logger.Warn().
				Err(stats.Err).
				Str("filter", expr).
				Int("skipped", stats.Skipped).
				Msg("Some items could not be evaluated and were left out")
		}
		logger.Debug().Str("filter", expr).Int("total", stats.Total).Int("kept", stats.Kept).Msg("Applied filter")
		response = filtered
	}

	return printResult(cmd, response)
}
