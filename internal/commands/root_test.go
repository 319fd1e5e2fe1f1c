package commands

import (
	"strings"
	"testing"

	"github.com/diogo/stockchat/internal/config"
	"github.com/diogo/stockchat/internal/models"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	joined := strings.Join(names, ",")

	for _, want := range []string{"chat", "config"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Missing subcommand %q, have %s", want, joined)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("endpoint") == nil {
		t.Error("Missing --endpoint flag")
	}
	for _, name := range []string{"output", "file", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("Missing --%s flag", name)
		}
	}
}

func TestGetEndpoint_FlagWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EndpointEnvVar, "")

	endpointFlag = "https://from-flag/query"
	defer func() { endpointFlag = "" }()

	if got := getEndpoint(); got != "https://from-flag/query" {
		t.Errorf("Expected flag endpoint, got %q", got)
	}
}

func TestGetEndpoint_Default(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EndpointEnvVar, "")

	endpointFlag = ""

	if got := getEndpoint(); got != models.DefaultEndpoint {
		t.Errorf("Expected default endpoint, got %q", got)
	}
}

func TestRunQuery_RejectsEmptyQuestion(t *testing.T) {
	for _, input := range []string{"", "   ", "\n"} {
		if err := runQuery(input, true); err == nil {
			t.Errorf("runQuery(%q) should fail", input)
		}
	}
}
