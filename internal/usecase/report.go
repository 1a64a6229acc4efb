package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gh-burndown/internal/burndown"
	"gh-burndown/internal/ports"
)

// ReportUseCase coordinates one report run: fetch cards, optionally snapshot
// them to a sink, aggregate, render.
type ReportUseCase struct {
	Log     *slog.Logger
	Project ports.ProjectClient
	Chart   ports.ChartRenderer
	Sink    ports.Sink // optional
}

// Run produces the burndown chart for asOf and returns the written path.
func (uc *ReportUseCase) Run(ctx context.Context, asOf time.Time) (string, error) {
	if uc.Project == nil || uc.Chart == nil {
		return "", errors.New("usecase not initialized: missing dependencies")
	}
	uc.Log.Info("fetching project cards")

	cards, err := uc.Project.ListCards(ctx)
	if err != nil {
		return "", err
	}
	uc.Log.Info("fetched cards", slog.Int("count", len(cards)))

	if uc.Sink != nil {
		if err := uc.Sink.SyncCards(ctx, cards); err != nil {
			return "", err
		}
	}

	planned, completed := burndown.Aggregate(cards)
	uc.Log.Info("aggregated series",
		slog.Int("planned_points", len(planned)),
		slog.Int("completed_points", len(completed)),
	)

	return uc.Chart.Render(asOf, planned, completed)
}
