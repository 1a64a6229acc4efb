// Package burndown turns a set of cards into the two cumulative series of a
// burndown chart: planned effort by iteration end date and completed effort
// by status-change date.
package burndown

import (
	"sort"
	"time"

	"gh-burndown/internal/domain"
)

// Point is one step of a cumulative series.
type Point struct {
	Date  time.Time
	Hours float64
}

// Aggregate computes the planned and completed series for cards.
//
// Planned groups estimates by iteration end date; cards without an iteration
// do not appear in it. Completed buckets every card's status-change date
// (truncated to UTC midnight) so the series has a step at each date work was
// touched, but only cards in the Done state add hours to their bucket. Both
// series are sorted ascending and prefix-summed, so they are non-decreasing.
// Aggregate is a pure function of its input.
func Aggregate(cards []domain.Card) (planned, completed []Point) {
	plannedByDate := make(map[time.Time]float64)
	completedByDate := make(map[time.Time]float64)

	for _, c := range cards {
		if c.IterationEnd != nil {
			plannedByDate[*c.IterationEnd] += c.EstimateHours
		}
		day := midnight(c.StatusUpdatedAt)
		hours := 0.0
		if c.Done() {
			hours = c.EstimateHours
		}
		completedByDate[day] += hours
	}

	return cumulative(plannedByDate), cumulative(completedByDate)
}

// cumulative flattens a date-keyed sum into an ascending prefix-sum series.
func cumulative(byDate map[time.Time]float64) []Point {
	if len(byDate) == 0 {
		return nil
	}
	points := make([]Point, 0, len(byDate))
	for d, h := range byDate {
		points = append(points, Point{Date: d, Hours: h})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	for i := 1; i < len(points); i++ {
		points[i].Hours += points[i-1].Hours
	}
	return points
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
