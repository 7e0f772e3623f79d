// Package main runs the tasktracker terminal UI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/config"
	"github.com/sandeepkv93/tasktracker/internal/logging"
	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/sandeepkv93/tasktracker/internal/scheduler"
	"github.com/sandeepkv93/tasktracker/internal/seed"
	"github.com/sandeepkv93/tasktracker/internal/session"
	"github.com/sandeepkv93/tasktracker/internal/storage"
	"github.com/sandeepkv93/tasktracker/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// memoryDB selects the in-process store; nothing survives exit.
const memoryDB = ":memory:"

var (
	dbPath     string
	configPath string
	logFile    string
	logLevel   string
	reset      bool
)

var rootCmd = &cobra.Command{
	Use:   "tasktracker",
	Short: "Single-user task tracker for the terminal",
	Long: `tasktracker keeps a personal task list in a local sqlite database.

Examples:
  # Start with the default database
  tasktracker

  # Use a throwaway in-memory store
  tasktracker --db :memory:

  # Start over with the sample tasks
  tasktracker --reset`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path (\":memory:\" for a throwaway store)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/tasktracker/config.toml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "clear stored tasks, user and theme before starting")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tasktracker failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	kv, closeKV, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeKV()

	ctx := cmd.Context()
	gw := storage.NewGateway(kv, logger)
	if reset {
		gw.Reset(ctx)
		logger.Info("storage reset")
	}

	tasks, seeded := seed.LoadOrSeed(ctx, gw, time.Now(), nil)
	logger.Info("tasks loaded", zap.Int("count", len(tasks)), zap.Bool("seeded", seeded), zap.String("db", cfg.DBPath))

	theme, ok := gw.LoadTheme(ctx)
	if !ok {
		theme = model.ThemeLight
	}

	sessions := session.NewManager(gw, cfg.LoginDelay, logger)
	var user *model.UserSession
	if u, ok := sessions.Restore(ctx); ok {
		user = &u
	}

	var engine *scheduler.Engine
	if cfg.WatchDueDates {
		engine = scheduler.NewEngine(cfg.WatchBuffer)
		engine.Start()
		defer engine.Stop()
	}

	m := update.NewModel(update.Deps{
		Context:       ctx,
		Store:         gw,
		Sessions:      sessions,
		Scheduler:     engine,
		Logger:        logger,
		Tasks:         tasks,
		Theme:         theme,
		User:          user,
		DueSoonWindow: cfg.DueSoonWindow,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// resolveConfig layers defaults, the config file, env and finally any flags
// set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func openStore(path string) (storage.KV, func(), error) {
	if path == memoryDB {
		return storage.NewMemoryKV(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return kv, func() { _ = kv.Close() }, nil
}
