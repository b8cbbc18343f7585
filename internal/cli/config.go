package cli

import (
	"fmt"

	"github.com/guiyumin/urlcat/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage urlcat configuration",
}

// urlcat config show - show current config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Current configuration:")
		fmt.Fprintf(w, "  Output:    %s\n", cfg.Output)
		fmt.Fprintf(w, "  Color:     %s\n", cfg.Color)
		fmt.Fprintf(w, "  LogLevel:  %s\n", cfg.LogLevel)
		fmt.Fprintf(w, "  Addr:      %s\n", cfg.Server.Addr)
		fmt.Fprintf(w, "  MaxBatch:  %d\n", cfg.Server.MaxBatch)
		fmt.Fprintf(w, "  Config:    %s\n", orDefault(config.SavePath(), "(unknown)"))
		if !config.Exists() {
			fmt.Fprintln(w, "\nNo config file found, showing defaults. Run 'urlcat config init'.")
		}
	},
}

// urlcat config path - show config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.SavePath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if config.Exists() && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", config.SavePath())
		}
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", config.SavePath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Keys:
  output            text, json or yaml
  color             auto, always or never
  log_level         debug, info, warn or error
  server.addr       listen address for 'urlcat serve'
  server.max_batch  max URLs per POST /api/classify

Example:
  urlcat config set output json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd)
}
