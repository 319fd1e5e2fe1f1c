// Package commands provides CLI commands for stockchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/stockchat/internal/config"
)

var (
	// Global flags
	endpointFlag string
	outputFlag   string
	fileFlag     string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stockchat [question]",
	Short: "Chat client for the stock assistant query service",
	Long: `stockchat is a terminal client for a stock-question answering service.
It sends your question to the remote query endpoint and renders the reply.

Examples:
  stockchat chat                               Start interactive chat
  stockchat "What is Apple's price?"           Send a single question
  stockchat -f question.txt                    Read question from file
  echo "MSFT last month" | stockchat           Read question from stdin
  stockchat "AAPL price" -o reply.md           Save reply to file
  stockchat config show                        Show current settings`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("stockchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Query endpoint URL (overrides config and environment)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getEndpoint returns the endpoint to use (flag > env > config > default)
func getEndpoint() string {
	cfg, _ := config.LoadConfig()
	return config.ResolveEndpoint(cfg, endpointFlag)
}
