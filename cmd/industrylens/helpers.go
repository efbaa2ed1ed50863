package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/industrylens/industrylens/internal/cli"
	"github.com/industrylens/industrylens/internal/engine"
	"github.com/industrylens/industrylens/internal/keyword"
	"github.com/industrylens/industrylens/internal/llm"
)

// loadKeywordTable returns the built-in table, or the YAML override when one
// is configured.
func loadKeywordTable() (*keyword.Table, error) {
	path := viper.GetString("keywords.path")
	if path == "" {
		return keyword.DefaultTable(), nil
	}

	table, err := keyword.LoadTable(path)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded keyword table override",
		"path", path,
		"industries", len(table.Industries()))
	return table, nil
}

// newLLMAdapter builds the LLM adapter from configuration. The adapter is
// returned uninitialized; callers decide whether init failure is fatal.
func newLLMAdapter() *llm.Adapter {
	cfg := llm.Config{
		Provider:          viper.GetString("llm.provider"),
		Model:             viper.GetString("llm.model"),
		APIKey:            viper.GetString("llm.api_key"),
		Timeout:           viper.GetDuration("llm.timeout"),
		RequestsPerMinute: viper.GetInt("llm.rate_limit"),
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return llm.NewAdapter(cfg, slog.Default())
}

// buildEngine assembles the classification engine. In LLM mode the adapter
// is initialized first; a failure there is reported but not fatal, since the
// engine degrades to sentinel results and keyword mode is unaffected.
func buildEngine(ctx context.Context, mode engine.Mode) (*engine.Engine, *llm.Adapter, error) {
	table, err := loadKeywordTable()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load keyword table: %w", err)
	}

	adapter := newLLMAdapter()
	if mode == engine.ModeLLM {
		if initErr := adapter.Initialize(ctx); initErr != nil {
			slog.Warn("LLM adapter unavailable; records will carry an error sentinel",
				"error", initErr)
		}
	}

	eng := engine.New(keyword.NewClassifier(table), adapter, slog.Default())
	return eng, adapter, nil
}

// warnDegradedLLM tells the user up front when llm mode was requested but
// the adapter did not come up, so the sentinel labels in the output are not
// a surprise.
func warnDegradedLLM(mode engine.Mode, adapter *llm.Adapter) {
	if mode != engine.ModeLLM || adapter.State() == llm.StateReady {
		return
	}
	fmt.Println(cli.WarningStyle.Render("LLM adapter unavailable; predictions will carry an error sentinel"))
}

// resolveMode parses the --mode flag.
func resolveMode(s string) (engine.Mode, error) {
	mode, ok := engine.ParseMode(s)
	if !ok {
		return "", fmt.Errorf("invalid mode %q (expected %q or %q)", s, engine.ModeKeyword, engine.ModeLLM)
	}
	return mode, nil
}
