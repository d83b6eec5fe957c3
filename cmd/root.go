package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/config"
	"github.com/abhisek/lipredict/internal/logging"
	"github.com/abhisek/lipredict/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lipredict",
	Short: "Predict whether someone uses LinkedIn",
	Long: `lipredict is a terminal app that runs a pre-trained logistic regression model on six
demographic inputs and explains the prediction with survey data.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/lipredict/config.yaml)")
	pf.String("model", "", "Path to the model artifact JSON (overrides LIPREDICT_MODEL)")
	pf.String("dataset", "", "Path to the survey CSV (overrides LIPREDICT_DATASET)")
	pf.String("db", "", "Path to SQLite database file (overrides LIPREDICT_DB)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file instead of the default")

	rootCmd.Flags().Bool("no-intro", false, "Skip the welcome screen")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration: flags, then LIPREDICT_* env, then the
// YAML file, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"model":     &cfg.ModelPath,
		"dataset":   &cfg.DatasetPath,
		"db":        &cfg.DBPath,
		"log-level": &cfg.Log.Level,
		"log-file":  &cfg.Log.File,
	}
	for name, dst := range overrides {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			*dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the zap logger. The TUI owns the terminal, so when
// interactive is set and no file is configured the logger writes to the
// state directory instead of stderr.
func newLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	file := cfg.Log.File
	if file == "" && interactive {
		f, err := logging.DefaultFile()
		if err != nil {
			return nil, err
		}
		file = f
	}
	return logging.New(cfg.Log.Level, file)
}

// resolveDBPath returns the configured database path (flag, env or YAML),
// falling back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func loadModel(cfg config.Config, logger *zap.Logger) (*classifier.Model, error) {
	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	logger.Info("model loaded",
		zap.String("path", cfg.ModelPath),
		zap.Float64s("coefficients", model.Coefficients()),
		zap.Float64("intercept", model.Intercept()),
		zap.Float64("threshold", model.Threshold()))
	return model, nil
}
