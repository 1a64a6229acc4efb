package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"gh-burndown/internal/domain"
)

// Client implements ports.Sink by upserting card snapshots into MySQL.
type Client struct {
	db  *sql.DB
	log *slog.Logger
}

// NewClient opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func NewClient(ctx context.Context, dsn string, log *slog.Logger) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, err
	}
	return &Client{db: db, log: log}, nil
}

// SyncCards upserts the cards of one run keyed by card ID, so re-running a
// report for the same board is idempotent.
func (c *Client) SyncCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	const q = `
INSERT INTO project_cards
  (id, title, assignees, status_name, status_updated_at, iteration_id, iteration_end, estimate_hours, priority, impact)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title=VALUES(title),
  assignees=VALUES(assignees),
  status_name=VALUES(status_name),
  status_updated_at=VALUES(status_updated_at),
  iteration_id=VALUES(iteration_id),
  iteration_end=VALUES(iteration_end),
  estimate_hours=VALUES(estimate_hours),
  priority=VALUES(priority),
  impact=VALUES(impact);
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, card := range cards {
		// Assignees stored as JSON for readability; stored as TEXT.
		assigneesJSON, _ := json.Marshal(card.Assignees)
		var iterationID interface{}
		if card.IterationID != "" {
			iterationID = card.IterationID
		}
		var iterationEnd interface{}
		if card.IterationEnd != nil {
			iterationEnd = card.IterationEnd.UTC()
		}
		if _, err := stmt.ExecContext(
			ctx,
			card.ID,
			card.Title,
			string(assigneesJSON),
			card.StatusName,
			card.StatusUpdatedAt.UTC(),
			iterationID,
			iterationEnd,
			card.EstimateHours,
			card.Priority,
			card.Impact,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.log.Info("mysql sink upserted cards", slog.Int("count", len(cards)))
	return nil
}

// Close closes the underlying DB. Not wired via interface to keep ports minimal.
func (c *Client) Close() error { return c.db.Close() }
