// Package chartpng implements ports.ChartRenderer with go-chart, writing the
// burndown as a dual-line PNG.
package chartpng

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gh-burndown/internal/burndown"
)

var (
	colorBackground = drawing.ColorFromHex("1e1e2e")
	colorText       = drawing.ColorFromHex("cdd6f4")
	colorAxis       = drawing.ColorFromHex("585b70")
	colorPlanned    = drawing.ColorFromHex("89b4fa")
	colorCompleted  = drawing.ColorFromHex("a6e3a1")
)

// Renderer writes burndown charts into a directory.
type Renderer struct {
	dir string
	log *slog.Logger
}

func NewRenderer(dir string, log *slog.Logger) *Renderer {
	return &Renderer{dir: dir, log: log}
}

// Render plots the two cumulative series and writes
// <dir>/burndown_chart_<asOf date>.png, creating the directory if needed and
// overwriting a same-day file.
func (r *Renderer) Render(asOf time.Time, planned, completed []burndown.Point) (string, error) {
	series := make([]chart.Series, 0, 2)
	if len(planned) > 0 {
		series = append(series, timeSeries("Planned", colorPlanned, planned))
	}
	if len(completed) > 0 {
		series = append(series, timeSeries("Completed", colorCompleted, completed))
	}
	if len(series) == 0 {
		return "", errors.New("chart: no data points to plot")
	}

	graph := chart.Chart{
		Title:      "Burndown Chart",
		TitleStyle: chart.Style{FontColor: colorText},
		Width:      1280,
		Height:     720,
		Background: chart.Style{FillColor: colorBackground},
		Canvas:     chart.Style{FillColor: colorBackground},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontColor: colorText, StrokeColor: colorAxis},
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: colorText, StrokeColor: colorAxis},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("chart: creating output dir: %w", err)
	}
	path := filepath.Join(r.dir, fmt.Sprintf("burndown_chart_%s.png", asOf.UTC().Format("2006-01-02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("chart: creating %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return "", fmt.Errorf("chart: rendering: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	r.log.Info("chart written", slog.String("path", path))
	return path, nil
}

func timeSeries(name string, color drawing.Color, points []burndown.Point) chart.Series {
	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date
		ys[i] = p.Hours
	}
	return chart.TimeSeries{
		Name:    name,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: 2.5},
		XValues: xs,
		YValues: ys,
	}
}
