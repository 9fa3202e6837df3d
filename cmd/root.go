package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/medsum/medsum/internal/app"
	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/logger"
	"github.com/medsum/medsum/internal/summarizer"
)

var (
	debugMode             bool
	quietMode             bool
	endpointFlag          string
	timeoutFlag           int
	localMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "medsum",
	Short: "Summarize medical notes from the terminal",
	Long: `medsum is a terminal form for summarizing clinical notes.

Paste or type notes, press ctrl+s, and the summary appears beside them.
Summaries come from a medsum server (see "medsum serve") or, with --local,
from a model called directly by this process.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "Summarization server URL (overrides config)")
	rootCmd.Flags().IntVar(&timeoutFlag, "timeout", 0, "Request timeout in seconds (0 = use config)")
	rootCmd.Flags().BoolVar(&localMode, "local", false, "Summarize in-process using the server environment instead of HTTP")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("medsum %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("medsum %s\n", version)
}

// effectiveTimeout applies the --timeout override to the configured value.
func effectiveTimeout(cfg *config.Config, flagSeconds int) time.Duration {
	if flagSeconds > 0 {
		return time.Duration(flagSeconds) * time.Second
	}
	return cfg.GetTimeout()
}

// effectiveEndpoint applies the --endpoint override to the configured value.
// Overrides are never written back to the config file.
func effectiveEndpoint(cfg *config.Config, flagEndpoint string) (string, error) {
	if flagEndpoint == "" {
		return cfg.GetEndpoint(), nil
	}
	if err := config.ValidateEndpoint(flagEndpoint); err != nil {
		return "", err
	}
	return flagEndpoint, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.DefaultLogPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	var (
		client summarizer.Client
		source string
	)
	if localMode {
		backend, closeBackend, err := newBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer closeBackend()
		client = summarizer.NewLocal(backend)
		source = "local · " + backend.Info().Name
	} else {
		endpoint, err := effectiveEndpoint(cfg, endpointFlag)
		if err != nil {
			return err
		}
		client = summarizer.NewHTTPClient(endpoint)
		source = endpoint
	}

	m := app.New(cfg, app.Options{
		Client:  client,
		Source:  source,
		Timeout: effectiveTimeout(cfg, timeoutFlag),
		Version: version,
	})
	defer m.Shutdown()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
