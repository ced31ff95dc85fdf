package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fastpix/config"
	"github.com/s0up4200/fastpix/fastpix"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fastpix.Client

	version   = "dev"
	buildTime = "unknown"

	// Global flags
	outputFormat   string
	skipValidation bool
	dryRun         bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fastpix",
	Short: "Manage FastPix media, live streams, playback IDs and signing keys",
	Long: `fastpix is a CLI for the FastPix video API. It wraps every media, live
stream, playback ID and signing key endpoint and prints the JSON responses.

Credentials are read from config.yaml, a .env file or FASTPIX_* environment
variables (FASTPIX_API_KEY, or FASTPIX_USERNAME and FASTPIX_PASSWORD).`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information reported by the version command.
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json, yaml or pretty")
	rootCmd.PersistentFlags().BoolVar(&skipValidation, "skip-validation", false, "do not verify credentials before running the command")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "print what delete commands would do without calling the API")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)
	styles = newStyles(cfg.Output.Color && isTerminal(os.Stdout))

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if _, ok := printers[cfg.Output.Format]; !ok {
		return fmt.Errorf("invalid output format: %s (must be json, yaml or pretty)", cfg.Output.Format)
	}
	if cmd.Flags().Changed("skip-validation") {
		cfg.FastPix.SkipValidation = skipValidation
	}

	opts := []fastpix.Option{
		fastpix.WithBaseURL(cfg.FastPix.BaseURL),
		fastpix.WithTimeout(cfg.FastPix.Timeout),
	}
	if cfg.FastPix.SkipValidation {
		opts = append(opts, fastpix.WithoutValidation())
	}

	client, err = fastpix.NewClient(fastpix.Credentials{
		Username: cfg.FastPix.Username,
		Password: cfg.FastPix.Password,
		APIKey:   cfg.FastPix.APIKey,
	}, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FastPix client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to FastPix",
	Long:  `Verify the configured credentials and print a short summary of the account.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Testing connection to %s...\n", client.BaseURL())

	// Connection is already tested during client creation unless skipped
	if cfg.FastPix.SkipValidation {
		if err := client.Validate(ctx); err != nil {
			fmt.Fprintln(out, styles.Error.Render("✗ "+err.Error()))
			return err
		}
	}
	fmt.Fprintln(out, styles.Success.Render("✓ Connection successful!"))

	streams, err := client.LiveStreams.List(ctx, nil)
	if err != nil {
		return err
	}
	keys, err := client.SigningKeys.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nFastPix account:\n")
	fmt.Fprintf(out, "- Live streams: %s\n", countLabel(streams))
	fmt.Fprintf(out, "- Signing keys: %s\n", countLabel(keys))

	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fastpix %s (built %s)\n", version, buildTime)
	},
}
