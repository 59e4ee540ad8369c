package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"drdash/internal/api"
	"drdash/internal/config"
	"drdash/internal/session"
	"drdash/internal/trace"
	"drdash/internal/ui"
)

var (
	flagAPIURL  string
	flagToken   string
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:   "drdash",
	Short: "Terminal dashboard for the admin backend",
	Long:  "drdash manages disaster-recovery plans and shows sales/attendance reports against the admin backend API.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "backend API base URL (overrides DRDASH_API_URL)")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "API token (overrides DRDASH_API_TOKEN)")
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", "", "load environment from this file before reading config")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagToken != "" {
		cfg.APIToken = flagToken
	}

	ctx := context.Background()
	shutdown, err := trace.Setup(ctx)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() { _ = shutdown(ctx) }()

	sess, _ := session.FromConfig(cfg)
	client := api.NewClient(cfg.APIURL, cfg.Timeout, sess)

	model := ui.NewAppModel(client, sess).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
