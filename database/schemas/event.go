package schemas

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Priority levels for calendar events.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Event is one calendar event row. Date is YYYY-MM-DD; StartTime/EndTime are
// HH:MM:SS, or empty strings when AllDay is true. Both formats are fixed-width
// and zero-padded, which is what makes lexical ordering on them valid.
type Event struct {
	ID          int64  `json:"id,omitempty"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Priority    string `json:"priority"`
	AllDay      bool   `json:"all_day"`
}

func CreateEventSchema() Schema {
	cols := make([]Column, 0)
	cols = append(cols,
		Column{Name: "id",
			Type:       ColumnSerial,
			PrimaryKey: true},
		Column{Name: "date",
			Type: ColumnString},
		Column{Name: "title",
			Type: ColumnString},
		Column{Name: "description",
			Type:           ColumnText,
			DefaultSQLExpr: DefaultEmpty()},
		Column{Name: "start_time",
			Type:           ColumnString,
			DefaultSQLExpr: DefaultEmpty()},
		Column{Name: "end_time",
			Type:           ColumnString,
			DefaultSQLExpr: DefaultEmpty()},
		Column{Name: "priority",
			Type:           ColumnString,
			DefaultSQLExpr: DefaultMedium()},
		Column{Name: "all_day",
			Type:           ColumnBool,
			DefaultSQLExpr: DefaultFalse()},
	)

	schema := Schema{
		Name:    "calendar_events",
		Columns: cols,
		// Makes re-seeding an overlapping range a no-op instead of a
		// duplicate pile; bulk inserts skip conflicting rows.
		Uniques: [][]string{{"date", "title", "start_time"}},
	}
	return schema
}

const eventFields = "date, title, description, start_time, end_time, priority, all_day"

// fieldsPerEvent is the bound-parameter count of one event row.
const fieldsPerEvent = 7

// InsertBatchSize keeps one multi-row statement at ~7000 parameters, well
// under the Postgres 65535 bind-parameter cap.
const InsertBatchSize = 1000

func CreateEvent(ctx context.Context, db *sql.DB, d Dialect, in Event) (Event, error) {
	if db == nil {
		return Event{}, fmt.Errorf("db is nil")
	}

	// Minimal validation; the HTTP layer rejects bad shapes before this.
	if in.Date == "" {
		return Event{}, fmt.Errorf("date is required")
	}
	if in.Title == "" {
		return Event{}, fmt.Errorf("title is required")
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}

	row := db.QueryRowContext(ctx, `
		INSERT INTO calendar_events (`+eventFields+`)
		VALUES (`+placeholderList(d, 0)+`)
		RETURNING id;
	`, in.Date, in.Title, in.Description, in.StartTime, in.EndTime, in.Priority, in.AllDay)

	out := in
	if err := row.Scan(&out.ID); err != nil {
		return Event{}, fmt.Errorf("insert event: %w", err)
	}

	return out, nil
}

// EventsForDate returns all events on one YYYY-MM-DD date in display order.
// No events is an empty slice, not an error.
func EventsForDate(ctx context.Context, db *sql.DB, d Dialect, date string) ([]Event, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, `+eventFields+`
		FROM calendar_events
		WHERE date = `+d.Placeholder(1)+`;
	`, date)
	if err != nil {
		return nil, fmt.Errorf("events for date query: %w", err)
	}
	defer rows.Close()

	out := make([]Event, 0)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.Priority, &e.AllDay); err != nil {
			return nil, fmt.Errorf("events for date scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("events for date rows: %w", err)
	}

	SortForDisplay(out)
	return out, nil
}

// DeleteEvent removes one event by id and reports whether a row existed.
func DeleteEvent(ctx context.Context, db *sql.DB, d Dialect, id int64) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("db is nil")
	}

	res, err := db.ExecContext(ctx, `
		DELETE FROM calendar_events WHERE id = `+d.Placeholder(1)+`;
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete event rows affected: %w", err)
	}
	return n > 0, nil
}

// BulkInsertEvents inserts events in chunked multi-row statements inside a
// single transaction: any failure rolls back the whole run. Rows that collide
// with an existing (date, title, start_time) are skipped, so re-seeding an
// overlapping range is safe. Returns the number of rows actually inserted.
func BulkInsertEvents(ctx context.Context, db *sql.DB, d Dialect, events []Event) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("db is nil")
	}
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("bulk insert begin: %w", err)
	}

	var total int64
	for start := 0; start < len(events); start += InsertBatchSize {
		batch := events[start:min(start+InsertBatchSize, len(events))]
		n, err := insertBatch(ctx, tx, d, batch)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("bulk insert commit: %w", err)
	}
	return total, nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, d Dialect, batch []Event) (int64, error) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO calendar_events (" + eventFields + ") VALUES ")

	args := make([]any, 0, len(batch)*fieldsPerEvent)
	for i, e := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(" + placeholderList(d, i*fieldsPerEvent) + ")")
		if e.Priority == "" {
			e.Priority = PriorityMedium
		}
		args = append(args, e.Date, e.Title, e.Description, e.StartTime, e.EndTime, e.Priority, e.AllDay)
	}
	sb.WriteString(" ON CONFLICT (date, title, start_time) DO NOTHING;")

	res, err := tx.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("bulk insert batch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("bulk insert rows affected: %w", err)
	}
	return n, nil
}

// placeholderList renders the seven bind placeholders for one event row,
// offset by base already-used parameters.
func placeholderList(d Dialect, base int) string {
	parts := make([]string, fieldsPerEvent)
	for i := range parts {
		parts[i] = d.Placeholder(base + i + 1)
	}
	return strings.Join(parts, ", ")
}
