/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// audit.go implements the "tradexdb audit" command group.

package cmd

import (
	"fmt"
	"time"

	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/spf13/cobra"
)

// auditTimeLayouts are the accepted formats for --start/--end.
var auditTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func newAuditCmd() *cobra.Command {
	var (
		actor string
		start string
		end   string
	)

	c := &cobra.Command{
		Use:   "audit",
		Short: "Review the audit log",
		Long: `List audit log entries, optionally filtered by actor and time range.
Timestamps accept RFC3339, "2006-01-02 15:04:05", or "2006-01-02".`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			filter, err := auditFilter(actor, start, end)
			if err != nil {
				return fmt.Errorf("audit: %w", err)
			}

			s, err := openStore()
			if err != nil {
				return fmt.Errorf("audit: %w", err)
			}
			defer s.Close()

			entries, err := s.AuditEntries(c.Context(), filter)
			if err != nil {
				return fmt.Errorf("audit: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(Out(), "No audit entries found")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(Out(), "%d  %s  %s  %s  %s\n",
					e.ID, e.Timestamp.UTC().Format(time.RFC3339), e.Actor, e.Action, e.Object)
			}
			return nil
		},
	}

	c.PersistentFlags().StringVar(&actor, "actor", "", "Filter by actor")
	c.PersistentFlags().StringVar(&start, "start", "", "Earliest timestamp to include")
	c.PersistentFlags().StringVar(&end, "end", "", "Latest timestamp to include")

	c.AddCommand(newAuditExportCmd(&actor, &start, &end))
	return c
}

func newAuditExportCmd(actor, start, end *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the audit log as CSV",
		Long: `Write audit log entries to standard output as CSV. Cell values that a
spreadsheet would interpret as formulas are prefixed with a quote.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			filter, err := auditFilter(*actor, *start, *end)
			if err != nil {
				return fmt.Errorf("audit export: %w", err)
			}

			s, err := openStore()
			if err != nil {
				return fmt.Errorf("audit export: %w", err)
			}
			defer s.Close()

			if err := s.ExportAuditCSV(c.Context(), Out(), filter); err != nil {
				return fmt.Errorf("audit export: %w", err)
			}
			return nil
		},
	}
}

// auditFilter parses the flag values into a store filter.
func auditFilter(actor, start, end string) (store.AuditFilter, error) {
	f := store.AuditFilter{Actor: actor}

	if start != "" {
		t, err := parseAuditTime(start)
		if err != nil {
			return f, err
		}
		f.Start = t
	}
	if end != "" {
		t, err := parseAuditTime(end)
		if err != nil {
			return f, err
		}
		f.End = t
	}
	return f, nil
}

func parseAuditTime(s string) (time.Time, error) {
	for _, layout := range auditTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
