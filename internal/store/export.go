// export.go renders audit log entries as CSV for operator review.
//
// Values beginning with =, +, - or @ are prefixed with a single quote so
// opening the export in a spreadsheet cannot execute them as formulas.

package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var auditCSVHeader = []string{
	"id", "timestamp", "actor", "ip", "user_agent",
	"action", "object", "before", "after",
}

// ExportAuditCSV writes audit entries matching the filter to w as CSV.
func (s *SQLiteStore) ExportAuditCSV(ctx context.Context, w io.Writer, f AuditFilter) error {
	entries, err := s.AuditEntries(ctx, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(auditCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp.UTC().Format(sqliteTimestamp),
			e.Actor,
			e.IP,
			e.UserAgent,
			e.Action,
			e.Object,
			deref(e.Before),
			deref(e.After),
		}
		for i, v := range record {
			record[i] = sanitizeCSV(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// sanitizeCSV neutralises values a spreadsheet would treat as a formula.
func sanitizeCSV(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@':
		return "'" + v
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
