package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/stockchat/internal/api"
	"github.com/diogo/stockchat/internal/config"
	"github.com/diogo/stockchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the stock assistant.

Each question is answered by the remote query service. The session keeps
the full conversation on screen; nothing is saved when it ends.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, _ := config.LoadConfig()

	clientOpts := []api.ClientOption{
		api.WithEndpoint(getEndpoint()),
	}
	if cfg.TimeoutSeconds > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	client, err := api.NewClient(clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	return tui.RunChat(client)
}
