package remote

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ActivityRow is one denormalized row of the remote plan table: plan
// metadata is repeated on every activity row.
type ActivityRow struct {
	PlanID            string
	PlanName          string
	Customer          string
	Stage             string
	Outcome           string
	Questions         string
	Owner             string
	StartDate         time.Time
	EndDate           time.Time
	Progress          float64
	Notes             string
	Action            string
	SolutionArchitect string
	AccountExecutive  string
	SSARequired       bool
	POCRequired       bool
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedBy         string
	UpdatedAt         time.Time
}

// IndexEntry is one row of the lightweight remote listing used for browsing
// and cloning. Entries from the app table carry name/customer and are
// editable; legacy map entries are browse-only.
type IndexEntry struct {
	ID            string
	Name          string
	Customer      string
	ActivityCount int
	StartDate     string
	EndDate       string
	Legacy        bool
}

const createPlanTable = `
	CREATE TABLE IF NOT EXISTS test.use_case_maps (
		p_id BIGSERIAL PRIMARY KEY,
		use_case_id TEXT NOT NULL,
		use_case_name TEXT,
		customer_name TEXT,
		"Stage" TEXT,
		"Outcome" TEXT,
		"Embedded_Questions" TEXT,
		"Owner_Name" TEXT,
		"Start_Date" DATE,
		"End_Date" DATE,
		"Progress" DOUBLE PRECISION,
		"Notes" TEXT,
		"Action" TEXT,
		solution_architect TEXT,
		account_executive TEXT,
		ssa_required BOOLEAN DEFAULT FALSE,
		poc_required BOOLEAN DEFAULT FALSE,
		created_by TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_by TEXT,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

const insertActivityRow = `
	INSERT INTO test.use_case_maps (
		use_case_id, use_case_name, customer_name, "Stage", "Outcome",
		"Embedded_Questions", "Owner_Name", "Start_Date", "End_Date",
		"Progress", "Notes", "Action", solution_architect, account_executive,
		ssa_required, poc_required, created_by, created_at, updated_by, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

// SaveActivityRows ensures the plan table exists and bulk-inserts the given
// rows in a single transaction. On any failure the transaction is rolled
// back; the local store is never affected.
func (c *Client) SaveActivityRows(ctx context.Context, rows []ActivityRow) error {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createPlanTable); err != nil {
		return fmt.Errorf("ensuring plan table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting insert transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertActivityRow)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.PlanID, row.PlanName, row.Customer, row.Stage, row.Outcome,
			row.Questions, row.Owner,
			row.StartDate.Format("2006-01-02"), row.EndDate.Format("2006-01-02"),
			row.Progress, row.Notes, row.Action,
			row.SolutionArchitect, row.AccountExecutive,
			row.SSARequired, row.POCRequired,
			row.CreatedBy, row.CreatedAt, row.UpdatedBy, row.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting activity row for %q: %w", row.PlanID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing insert transaction: %w", err)
	}
	committed = true
	return nil
}

// LoadIndex queries both remote tables for a lightweight listing. A failure
// on either table is tolerated; whatever could be read is returned. Used only
// for browse and clone, never as editing authority.
func (c *Client) LoadIndex(ctx context.Context) ([]IndexEntry, error) {
	ctx, cancel := c.withDeadline(ctx)
	defer cancel()

	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var entries []IndexEntry

	// App-created plans, newest first.
	appRows, err := db.QueryContext(ctx, `
		SELECT use_case_id, use_case_name, customer_name,
		       COUNT(*) AS activity_count,
		       MIN("Start_Date")::text AS start_date,
		       MAX("End_Date")::text AS end_date
		FROM test.use_case_maps
		WHERE use_case_id IS NOT NULL AND use_case_id != ''
		GROUP BY use_case_id, use_case_name, customer_name
		ORDER BY MAX(created_at) DESC
		LIMIT 25`)
	if err == nil {
		func() {
			defer appRows.Close()
			for appRows.Next() {
				var e IndexEntry
				var name, customer, start, end sql.NullString
				if err := appRows.Scan(&e.ID, &name, &customer, &e.ActivityCount, &start, &end); err != nil {
					return
				}
				e.Name = name.String
				e.Customer = customer.String
				e.StartDate = start.String
				e.EndDate = end.String
				entries = append(entries, e)
			}
		}()
	}

	// Legacy maps; the table may not exist, which is fine.
	legacyRows, err := db.QueryContext(ctx, `
		SELECT DISTINCT "ID", COUNT(*) AS activity_count,
		       MIN("Start_Date")::text AS start_date,
		       MAX("End_Date")::text AS end_date
		FROM test.maps
		WHERE "ID" IS NOT NULL AND "ID" != '' AND "ID" NOT LIKE '%/%'
		GROUP BY "ID"
		ORDER BY CAST("ID" AS INTEGER)
		LIMIT 25`)
	if err == nil {
		func() {
			defer legacyRows.Close()
			for legacyRows.Next() {
				var e IndexEntry
				var start, end sql.NullString
				if err := legacyRows.Scan(&e.ID, &e.ActivityCount, &start, &end); err != nil {
					return
				}
				e.StartDate = start.String
				e.EndDate = end.String
				e.Legacy = true
				entries = append(entries, e)
			}
		}()
	}

	return entries, nil
}
