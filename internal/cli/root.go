// Package cli はプランナーのコマンドラインインターフェースを提供します。
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"daily-planner/internal/models"
	"daily-planner/internal/planner"
)

// globalOptions はすべてのコマンドで共通のフラグです。
type globalOptions struct {
	configPath string
	serverURL  string
	cachePath  string
	verbose    bool
}

// NewRootCommand はルートコマンドを作成します。
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Daily task planner",
		Long: `planner manages the tasks of a single day against a task store server.

Tasks are always fetched from the server for the selected date.
A local cache keeps the last fetched list.`,
		Version: version,
		// エラー時に使い方を表示しない
		SilenceUsage: true,
		// エラーは main で表示する
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/daily-planner/config.toml)")
	pf.StringVar(&opts.serverURL, "server", "", "Task store URL (overrides config)")
	pf.StringVar(&opts.cachePath, "cache", "", "Local cache file (overrides config)")
	pf.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newDoneCommand(opts),
		newRemoveCommand(opts),
	)
	return root
}

// config は設定ファイルを読み込み、フラグで上書きします。
func (o *globalOptions) config() (*Config, error) {
	path := o.configPath
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if o.serverURL != "" {
		cfg.ServerURL = o.serverURL
	}
	if o.cachePath != "" {
		cfg.CachePath = o.cachePath
	}
	return cfg, nil
}

// openPlanner はPlannerを作成し、Initialize と SelectDate を済ませた状態で返します。
func (o *globalOptions) openPlanner(cmd *cobra.Command, date time.Time) (*planner.Planner, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("opening planner", "server", cfg.ServerURL, "cache", cfg.CachePath, "date", planner.DateKey(date))

	p := planner.New(
		planner.NewClient(cfg.ServerURL, cfg.Timeout),
		planner.NewFileCache(cfg.CachePath),
		logger,
		date,
	)

	ctx := cmd.Context()
	if err := p.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if err := p.SelectDate(ctx, date); err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	return p, nil
}

// parseDate は YYYY-MM-DD を解釈します。空の場合は今日です。
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return date, nil
}

// visibleAt は一覧上の番号 (1始まり) のタスクを返します。
func visibleAt(p *planner.Planner, n int) (models.Task, error) {
	visible := p.Visible()
	if n < 1 || n > len(visible) {
		return models.Task{}, fmt.Errorf("no task #%d on %s", n, planner.DateKey(p.Date()))
	}
	return visible[n-1], nil
}
