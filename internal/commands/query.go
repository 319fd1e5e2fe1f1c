package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/diogo/stockchat/internal/api"
	"github.com/diogo/stockchat/internal/config"
	apierrors "github.com/diogo/stockchat/internal/errors"
	"github.com/diogo/stockchat/internal/render"
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// runQuery executes a single question and outputs the reply.
// If rawOutput is true, only the raw reply text is printed without decoration.
func runQuery(question string, rawOutput bool) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question cannot be empty")
	}

	// Load config for verbose logging and clipboard preference
	cfg, _ := config.LoadConfig()

	endpoint := getEndpoint()

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Endpoint: %s\n", endpoint)
	}

	clientOpts := []api.ClientOption{
		api.WithEndpoint(endpoint),
	}
	if cfg.TimeoutSeconds > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	client, err := api.NewClient(clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Asking the stock assistant")
		spin.start()
	}

	// Track request timing for verbose output
	startTime := time.Now()
	reply, err := client.Query(question)
	requestDuration := time.Since(startTime)

	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Query failed"))
		}
		return fmt.Errorf("query failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Done")
	}

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
	}

	// Raw output mode: output only the raw text
	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(reply)
		return nil
	}

	// Decorated output mode (TTY)
	fmt.Fprintln(os.Stderr)

	// Copy to clipboard if enabled in config
	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	// Output to file if specified
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Reply saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	// Get terminal width for proper formatting
	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	// Print assistant label (similar to the chat TUI)
	label := assistantLabelStyle.Render("▲ Assistant")
	fmt.Println(label)

	// Render markdown for terminal output using user config
	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, err := render.Markdown(reply, renderOpts)
	if err != nil {
		rendered = reply
	}
	// Trim trailing newlines from glamour
	rendered = strings.TrimRight(rendered, "\n")

	bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	// Extract additional context from structured errors
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	// Show response body if available
	if body := apierrors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	} else {
		// Provide helpful hints based on error type only if no body
		switch {
		case apierrors.IsNetworkError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Check your internet connection and try again"))
		case apierrors.IsTimeoutError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Request timed out. Try again or check your connection"))
		case apierrors.IsParseError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: The service returned an unexpected reply format"))
		}
	}

	return sb.String()
}
