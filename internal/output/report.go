// Package output formats validation results.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/farmerpiki/genomic-validator/internal/vcf"
)

// Messages printed for a whole-file verdict.
const (
	ValidMessage   = "VCF file is valid."
	InvalidMessage = "Invalid VCF file format."
)

// Report is the result of validating one file.
type Report struct {
	Path      string   `json:"path"`
	Valid     bool     `json:"valid"`
	Skipped   bool     `json:"skipped,omitempty"` // unchanged since a previous valid run
	Kind      string   `json:"kind,omitempty"`
	Line      int      `json:"line,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Lines     int      `json:"lines"`
	MetaLines int      `json:"meta_lines"`
	Records   int      `json:"records"`
	Samples   []string `json:"samples,omitempty"`
}

// NewReport builds a report from a validation summary and its error.
// Errors that are not validation errors (e.g. I/O) are reported without a kind.
func NewReport(path string, sum vcf.Summary, err error) Report {
	r := Report{
		Path:      path,
		Valid:     err == nil,
		Lines:     sum.Lines,
		MetaLines: sum.MetaLines,
		Records:   sum.Records,
		Samples:   sum.Samples,
	}
	if err == nil {
		return r
	}

	var verr *vcf.ValidationError
	if errors.As(err, &verr) {
		r.Kind = verr.Kind.String()
		r.Line = verr.Line
	}
	r.Reason = err.Error()
	return r
}

// ReportWriter writes a single report.
type ReportWriter interface {
	Write(r Report) error
}

// TextWriter writes human-readable verdicts: the success line to out,
// failure reasons to errOut.
type TextWriter struct {
	out    io.Writer
	errOut io.Writer
	ok     *color.Color
	fail   *color.Color
}

// NewTextWriter creates a text writer. Color is only used when enabled
// and the terminal supports it.
func NewTextWriter(out, errOut io.Writer, enableColor bool) *TextWriter {
	tw := &TextWriter{
		out:    out,
		errOut: errOut,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
	}
	if !enableColor {
		tw.ok.DisableColor()
		tw.fail.DisableColor()
	}
	return tw
}

// Write writes the verdict for r.
func (tw *TextWriter) Write(r Report) error {
	if r.Valid {
		msg := ValidMessage
		if r.Skipped {
			msg += " (unchanged since last validation)"
		}
		_, err := tw.ok.Fprintln(tw.out, msg)
		return err
	}

	if _, err := fmt.Fprintln(tw.errOut, r.Reason); err != nil {
		return err
	}
	_, err := tw.fail.Fprintln(tw.errOut, InvalidMessage)
	return err
}

// JSONWriter writes each report as one JSON object per line.
type JSONWriter struct {
	enc *jsoniter.Encoder
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)}
}

// Write encodes r.
func (jw *JSONWriter) Write(r Report) error {
	return jw.enc.Encode(r)
}
