package render

import (
	"github.com/diogo/stockchat/internal/config"
)

// LoadOptionsFromConfig loads render options from user configuration.
// Falls back to defaults when the config cannot be read.
func LoadOptionsFromConfig() Options {
	cfg, err := config.LoadConfig()
	if err != nil {
		return DefaultOptions()
	}

	opts := DefaultOptions()
	if cfg.Markdown.Style != "" {
		opts.Style = cfg.Markdown.Style
	}
	opts.EnableEmoji = cfg.Markdown.EnableEmoji
	opts.PreserveNewLines = cfg.Markdown.PreserveNewLines
	return opts
}

// LoadOptionsFromConfigWithWidth loads options from config with a specific width.
func LoadOptionsFromConfigWithWidth(width int) Options {
	opts := LoadOptionsFromConfig()
	opts.Width = width
	return opts
}
