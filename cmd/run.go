package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathgeniusvn/mathgenius/internal/app"
	"github.com/mathgeniusvn/mathgenius/internal/explain"
	"github.com/mathgeniusvn/mathgenius/internal/llm"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/tutor"
)

// runApp builds all services from configuration and launches the TUI.
// A missing API key only downgrades AI calls to fallback content; the
// app itself always starts.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logger.Sync()

	if err := cfg.LLM.Validate(); err != nil {
		warnMissingKey(err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	opts := app.Options{
		Generator: problem.New(provider, cfg.Problem, logger),
		Explainer: explain.New(provider, cfg.Explain, logger),
		Tutor:     tutor.New(provider, cfg.Tutor, logger),
		Defaults:  cfg.Defaults,
		Logger:    logger,
	}

	return app.Run(opts)
}
