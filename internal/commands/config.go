package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/stockchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stockchat settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file:       %s\n", path)
		fmt.Printf("endpoint:          %s\n", cfg.Endpoint)
		fmt.Printf("timeout_seconds:   %d\n", cfg.TimeoutSeconds)
		fmt.Printf("verbose:           %t\n", cfg.Verbose)
		fmt.Printf("copy_to_clipboard: %t\n", cfg.CopyToClipboard)
		fmt.Printf("markdown.style:    %s\n", cfg.Markdown.Style)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to disk.

Supported keys:
  endpoint            Query endpoint URL
  timeout_seconds     Transport request timeout
  verbose             true/false
  copy_to_clipboard   true/false
  markdown.style      Markdown theme ("dark", "light", or path to JSON)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "endpoint":
			cfg.Endpoint = value
		case "timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
			}
			cfg.TimeoutSeconds = n
		case "verbose":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("verbose must be true or false, got %q", value)
			}
			cfg.Verbose = b
		case "copy_to_clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("copy_to_clipboard must be true or false, got %q", value)
			}
			cfg.CopyToClipboard = b
		case "markdown.style":
			cfg.Markdown.Style = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
