package cmd

import (
	"errors"
	"fmt"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit client settings",
	Long: `Opens an interactive form for the settings stored in ~/.medsum/config.json:
server endpoint, request timeout, theme and desktop notifications.

MEDSUM_ENDPOINT, MEDSUM_TIMEOUT and MEDSUM_THEME still take precedence
over the saved values when set.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	settings := ui.SettingsFromConfig(cfg)
	if err := ui.NewSettingsForm(settings).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
			return nil
		}
		return err
	}

	if err := saveSettings(cfg, settings); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", cfg.Path())
	return nil
}

func saveSettings(cfg *config.Config, s *ui.Settings) error {
	if err := s.Apply(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.Save()
}
