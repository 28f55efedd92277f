package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/farmerpiki/genomic-validator/internal/history"
)

// HistoryWriter writes recorded validation runs as an aligned table.
type HistoryWriter struct {
	w *tabwriter.Writer
}

// NewHistoryWriter creates a new history table writer.
func NewHistoryWriter(w io.Writer) *HistoryWriter {
	return &HistoryWriter{w: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// WriteHeader writes the column names.
func (hw *HistoryWriter) WriteHeader() error {
	_, err := fmt.Fprintln(hw.w, "Checked\tPath\tValid\tRecords\tLine\tReason")
	return err
}

// Write writes one run.
func (hw *HistoryWriter) Write(r history.Run) error {
	valid := "N"
	if r.Valid {
		valid = "Y"
	}
	line := "-"
	if r.Line > 0 {
		line = fmt.Sprint(r.Line)
	}
	reason := r.Reason
	if reason == "" {
		reason = "-"
	}
	_, err := fmt.Fprintf(hw.w, "%s\t%s\t%s\t%d\t%s\t%s\n",
		r.CheckedAt.Local().Format(time.DateTime),
		r.File.Path,
		valid,
		r.Records,
		line,
		reason,
	)
	return err
}

// Flush flushes the writer.
func (hw *HistoryWriter) Flush() error {
	return hw.w.Flush()
}
