package ports

import (
	"context"
	"time"

	"gh-burndown/internal/burndown"
	"gh-burndown/internal/domain"
)

// ProjectClient fetches all cards of the configured project board.
type ProjectClient interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
}

// ChartRenderer writes the burndown series to an image and returns its path.
// asOf controls the date stamped into the file name.
type ChartRenderer interface {
	Render(asOf time.Time, planned, completed []burndown.Point) (string, error)
}

// Sink receives the cards of a run and persists them to a target system.
// The report itself never depends on a sink; it is an optional side channel
// for downstream analytics.
type Sink interface {
	SyncCards(ctx context.Context, cards []domain.Card) error
}
