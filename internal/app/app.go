package app

import (
	"context"
	"log/slog"
	"time"

	"gh-burndown/internal/adapter/chartpng"
	gh "gh-burndown/internal/adapter/github"
	msql "gh-burndown/internal/adapter/mysql"
	"gh-burndown/internal/config"
	"gh-burndown/internal/migrate"
	"gh-burndown/internal/ports"
	"gh-burndown/internal/usecase"
)

// App wires adapters and the report use case.
type App struct {
	log      *slog.Logger
	uc       *usecase.ReportUseCase
	chartDir string
}

func New(log *slog.Logger, cfg config.Config) (*App, error) {
	projectClient := gh.NewClient(cfg.GitHub.GraphQLURL, cfg.GitHub.Token, cfg.GitHub.ProjectID, log)
	renderer := chartpng.NewRenderer(cfg.Chart.Dir, log)

	// The snapshot sink is opt-in; without a DSN the run is purely
	// fetch -> aggregate -> render.
	var sink ports.Sink
	if cfg.MySQL.DSN != "" {
		if err := migrate.Run(context.Background(), cfg.MySQL.DSN, log); err != nil {
			return nil, err
		}
		client, err := msql.NewClient(context.Background(), cfg.MySQL.DSN, log)
		if err != nil {
			return nil, err
		}
		sink = client
	}

	uc := &usecase.ReportUseCase{
		Log:     log,
		Project: projectClient,
		Chart:   renderer,
		Sink:    sink,
	}

	return &App{log: log, uc: uc, chartDir: cfg.Chart.Dir}, nil
}

// RunOnce produces one burndown chart dated asOf.
func (a *App) RunOnce(ctx context.Context, asOf time.Time) (string, error) {
	return a.uc.Run(ctx, asOf)
}
