// audit.go implements the append-only audit log.
//
// Separated from the user operations because the audit log has its own
// lifecycle: entries are redacted before they are written, and every
// append prunes rows older than the retention window so the log cannot
// grow without bound.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// sqliteTimestamp is the layout SQLite uses for CURRENT_TIMESTAMP columns.
const sqliteTimestamp = "2006-01-02 15:04:05"

// parseTimestamp converts a stored CURRENT_TIMESTAMP string to time.Time.
// Returns the zero time for values that do not parse.
func parseTimestamp(s string) time.Time {
	t, err := time.ParseInLocation(sqliteTimestamp, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AppendAudit writes one audit entry and prunes entries older than
// retentionDays. Before and after snapshots are redacted and serialised
// to JSON; nil maps are stored as NULL.
func (s *SQLiteStore) AppendAudit(ctx context.Context, actor, ip, userAgent, action, object string,
	before, after map[string]any, retentionDays int) error {

	beforeJSON, err := marshalRedacted(before)
	if err != nil {
		return err
	}
	afterJSON, err := marshalRedacted(after)
	if err != nil {
		return err
	}

	return s.Tx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO audit_log (actor, ip, user_agent, action, object, before, after)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			actor, ip, userAgent, action, object, beforeJSON, afterJSON)
		if err != nil {
			return fmt.Errorf("insert audit entry: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM audit_log WHERE timestamp < datetime('now', ?)`,
			fmt.Sprintf("-%d days", retentionDays))
		if err != nil {
			return fmt.Errorf("prune audit log: %w", err)
		}
		return nil
	})
}

// marshalRedacted redacts sensitive fields and serialises to JSON.
// Returns nil for a nil map so the column stays NULL.
func marshalRedacted(m map[string]any) (*string, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(RedactPII(m))
	if err != nil {
		return nil, fmt.Errorf("marshal audit snapshot: %w", err)
	}
	s := string(b)
	return &s, nil
}

// AuditEntries returns audit log rows matching the filter, ordered by id.
func (s *SQLiteStore) AuditEntries(ctx context.Context, f AuditFilter) ([]AuditEntry, error) {
	query := `SELECT id, timestamp, actor, ip, user_agent, action, object, before, after
	          FROM audit_log WHERE 1=1`
	var params []any
	if f.Actor != "" {
		query += " AND actor = ?"
		params = append(params, f.Actor)
	}
	if !f.Start.IsZero() {
		query += " AND timestamp >= ?"
		params = append(params, f.Start.UTC().Format(sqliteTimestamp))
	}
	if !f.End.IsZero() {
		query += " AND timestamp <= ?"
		params = append(params, f.End.UTC().Format(sqliteTimestamp))
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanAuditEntry(sc scanner) (AuditEntry, error) {
	var (
		e         AuditEntry
		ts        string
		actor     sql.NullString
		ip        sql.NullString
		userAgent sql.NullString
		action    sql.NullString
		object    sql.NullString
		before    sql.NullString
		after     sql.NullString
	)
	err := sc.Scan(&e.ID, &ts, &actor, &ip, &userAgent, &action, &object, &before, &after)
	if err != nil {
		return e, fmt.Errorf("scan audit entry: %w", err)
	}

	e.Timestamp = parseTimestamp(ts)
	e.Actor = actor.String
	e.IP = ip.String
	e.UserAgent = userAgent.String
	e.Action = action.String
	e.Object = object.String
	if before.Valid {
		e.Before = &before.String
	}
	if after.Valid {
		e.After = &after.String
	}
	return e, nil
}
