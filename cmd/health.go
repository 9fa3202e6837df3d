package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/summarizer"
)

const healthTimeout = 10 * time.Second

var healthEndpoint string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the summarization server is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		endpoint, err := effectiveEndpoint(cfg, healthEndpoint)
		if err != nil {
			return err
		}
		return checkHealth(cmd.Context(), cmd.OutOrStdout(), summarizer.NewHTTPClient(endpoint))
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthEndpoint, "endpoint", "", "Summarization server URL (overrides config)")
	rootCmd.AddCommand(healthCmd)
}

func checkHealth(ctx context.Context, w io.Writer, client *summarizer.HTTPClient) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s is not healthy: %w", client.Endpoint(), err)
	}
	fmt.Fprintf(w, "%s: %s\n", client.Endpoint(), health.Status)
	fmt.Fprintf(w, "  model:  %s\n", health.ModelName)
	fmt.Fprintf(w, "  device: %s\n", health.Device)
	return nil
}
