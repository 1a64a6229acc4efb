package domain

import (
	"errors"
	"fmt"
	"time"
)

// StatusDone is the workflow state that counts as completed work in the
// burndown. Boards may rename it; the aggregator only compares against this.
const StatusDone = "Done"

// Card represents one normalized project item (issue, pull request or draft
// note) in the domain.
type Card struct {
	ID              string
	Title           string
	Assignees       []string
	StatusName      string
	StatusUpdatedAt time.Time
	IterationID     string     // empty when the item has no iteration
	IterationEnd    *time.Time // start + duration days; nil when no iteration
	EstimateHours   float64
	Priority        string
	Impact          string
}

// NewCard validates and constructs a Card. Every item on the board is
// expected to carry a Status single-select; a card without one is a data
// error, not a default.
func NewCard(c Card) (Card, error) {
	if c.ID == "" {
		return Card{}, errors.New("card: id is required")
	}
	if c.StatusName == "" {
		return Card{}, fmt.Errorf("card %s: status field is missing", c.ID)
	}
	if c.StatusUpdatedAt.IsZero() {
		return Card{}, fmt.Errorf("card %s: status updated-at timestamp is missing", c.ID)
	}
	if c.EstimateHours < 0 {
		return Card{}, fmt.Errorf("card %s: negative estimate %v", c.ID, c.EstimateHours)
	}
	if c.IterationID != "" && c.IterationEnd == nil {
		return Card{}, fmt.Errorf("card %s: iteration %s has no end date", c.ID, c.IterationID)
	}
	if c.Title == "" {
		c.Title = "no title"
	}
	return c, nil
}

// Done reports whether the card counts as completed work.
func (c Card) Done() bool { return c.StatusName == StatusDone }
