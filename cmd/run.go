package cmd

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/app"
	"github.com/abhisek/lipredict/internal/config"
	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/llm"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/store"
)

// runApp loads the model, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model, err := loadModel(cfg, logger)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))

	skipIntro, _ := cmd.Flags().GetBool("no-intro")
	opts := app.Options{
		Predictor:   predict.NewService(model, eventRepo, logger, sessionID),
		Insight:     newInsightService(cmd, cfg, eventRepo, logger),
		EventRepo:   eventRepo,
		DatasetPath: cfg.DatasetPath,
		Logger:      logger,
		SkipIntro:   skipIntro,
	}

	return app.Run(opts)
}

// newInsightService wires the optional LLM provider. Without one every
// narrative is the deterministic fallback.
func newInsightService(cmd *cobra.Command, cfg config.Config, eventRepo store.EventRepo, logger *zap.Logger) *insight.Service {
	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, eventRepo, logger)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Info("no LLM provider configured; using fallback narratives")
		return insight.NewService(nil, insight.DefaultConfig())
	case err != nil:
		logger.Warn("LLM provider unavailable; using fallback narratives", zap.Error(err))
		return insight.NewService(nil, insight.DefaultConfig())
	}

	icfg := insight.DefaultConfig()
	if cfg.LLM.Timeout > 0 {
		icfg.Timeout = cfg.LLM.Timeout
	}
	return insight.NewService(provider, icfg)
}
