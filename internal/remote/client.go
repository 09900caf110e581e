// Package remote talks to the remote Postgres store. Every operation opens
// its own connection, carries a bounded timeout, and is attempted exactly
// once; callers treat any failure here as advisory, never as fatal.
package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/manjulsinghal1410/use-case-maps/internal/config"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
)

// ErrNotConfigured is returned by every operation when the connection
// parameters are missing or still placeholders. Callers map it to a
// "skipped" outcome rather than an error.
var ErrNotConfigured = errors.New("remote database not configured")

// defaultTimeout bounds each remote operation. A stuck connection would
// stall the whole interaction, so every call gets an explicit deadline.
const defaultTimeout = 10 * time.Second

// Client is a thin connection-per-operation Postgres client.
type Client struct {
	cfg     config.Remote
	timeout time.Duration
}

// NewClient builds a client for the given connection settings. The settings
// are validated lazily on each operation, not here.
func NewClient(cfg config.Remote) *Client {
	return &Client{cfg: cfg, timeout: defaultTimeout}
}

// Configured reports whether remote operations will be attempted at all.
func (c *Client) Configured() bool {
	return c.cfg.Valid()
}

// open validates configuration, opens a connection, and pings it within the
// operation deadline.
func (c *Client) open(ctx context.Context) (*sql.DB, error) {
	if !c.cfg.Valid() {
		return nil, ErrNotConfigured
	}
	db, err := sql.Open("pgx", c.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening remote connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging remote database: %w", err)
	}
	return db, nil
}

func (c *Client) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// Ping checks connectivity. Used by `db status`.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

// FetchTemplate loads the database template table into a stage-keyed
// candidate map, preserving row order within each stage. The template table
// carries no conditional column, so tags are derived from the outcome text:
// rows mentioning SSA or POC are treated as conditionally included.
func (c *Client) FetchTemplate(ctx context.Context) (map[template.StageCode][]template.TemplateActivity, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT stage, outcome, asset_podcast, owner_name
		FROM test.template
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying template table: %w", err)
	}
	defer rows.Close()

	result := make(map[template.StageCode][]template.TemplateActivity)
	for rows.Next() {
		var stage string
		var outcome, questions, owner sql.NullString
		if err := rows.Scan(&stage, &outcome, &questions, &owner); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}

		code := template.ExtractStageCode(stage)
		if code == template.StageUnknown {
			continue
		}
		result[code] = append(result[code], template.TemplateActivity{
			Outcome:     outcome.String,
			Questions:   questions.String,
			Owner:       owner.String,
			Conditional: conditionalFromOutcome(outcome.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}
	return result, nil
}

// conditionalFromOutcome tags database template rows by their outcome text,
// mirroring the inclusion rule applied to the built-in template's tags.
func conditionalFromOutcome(outcome string) template.Conditional {
	switch {
	case strings.Contains(outcome, "SSA"):
		return template.CondSSA
	case strings.Contains(outcome, "POC"):
		return template.CondPOC
	default:
		return template.CondNone
	}
}

// CountPlansInMonth returns how many activity-row groups exist for the given
// customer in the given calendar month. Consumed by the identifier generator;
// a failure there degrades to sequence 1.
func (c *Client) CountPlansInMonth(ctx context.Context, customer string, year int, month time.Month) (int, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT use_case_id) FROM test.use_case_maps
		WHERE customer_name = $1
		AND EXTRACT(YEAR FROM created_at) = $2
		AND EXTRACT(MONTH FROM created_at) = $3`,
		customer, year, int(month)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting plans for %q: %w", customer, err)
	}
	return count, nil
}

// LoadMapDetails loads all activity rows of one legacy map, ordered by row
// id, for cloning. Rows with an empty stage are skipped; a NULL outcome falls
// back to the duplicate action column.
func (c *Client) LoadMapDetails(ctx context.Context, mapID string) ([]template.CloneActivity, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT "Stage", "Outcome", "Embedded_Questions", "Owner_Name", "Action"
		FROM test.maps
		WHERE "ID" = $1
		ORDER BY p_id`, mapID)
	if err != nil {
		return nil, fmt.Errorf("querying map %q: %w", mapID, err)
	}
	defer rows.Close()

	var activities []template.CloneActivity
	for rows.Next() {
		var stage, outcome, questions, owner, action sql.NullString
		if err := rows.Scan(&stage, &outcome, &questions, &owner, &action); err != nil {
			return nil, fmt.Errorf("scanning map row: %w", err)
		}
		if stage.String == "" {
			continue
		}
		text := outcome.String
		if text == "" {
			text = action.String
		}
		activities = append(activities, template.CloneActivity{
			Stage:     stage.String,
			Outcome:   text,
			Questions: questions.String,
			Owner:     owner.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating map rows: %w", err)
	}
	return activities, nil
}
