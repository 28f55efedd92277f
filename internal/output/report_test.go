package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmerpiki/genomic-validator/internal/history"
	"github.com/farmerpiki/genomic-validator/internal/vcf"
)

func TestNewReport_Valid(t *testing.T) {
	sum := vcf.Summary{Lines: 3, MetaLines: 1, Records: 1, Samples: []string{"S1"}}
	r := NewReport("a.vcf", sum, nil)

	assert.True(t, r.Valid)
	assert.Empty(t, r.Kind)
	assert.Empty(t, r.Reason)
	assert.Equal(t, 1, r.Records)
	assert.Equal(t, []string{"S1"}, r.Samples)
}

func TestNewReport_ValidationError(t *testing.T) {
	_, err := vcf.NewValidator().Validate(vcf.Lines(
		"##fileformat=VCFv4.2",
		"#CHROM POS ID REF ALT QUAL FILTER INFO",
		"chr99\t100\t.\tA\tC\t30\tPASS\t.",
	))
	require.Error(t, err)

	r := NewReport("a.vcf", vcf.Summary{Lines: 3, MetaLines: 1}, err)
	assert.False(t, r.Valid)
	assert.Equal(t, "FieldError", r.Kind)
	assert.Equal(t, 3, r.Line)
	assert.Contains(t, r.Reason, "Non-human chromosome found")
}

func TestNewReport_OtherError(t *testing.T) {
	r := NewReport("a.vcf", vcf.Summary{}, errors.New("open vcf file: permission denied"))
	assert.False(t, r.Valid)
	assert.Empty(t, r.Kind)
	assert.Equal(t, "open vcf file: permission denied", r.Reason)
}

func TestTextWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewTextWriter(&out, &errOut, false)

	require.NoError(t, w.Write(Report{Valid: true}))
	assert.Equal(t, ValidMessage+"\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, w.Write(Report{Valid: true, Skipped: true}))
	assert.Contains(t, out.String(), "unchanged since last validation")

	out.Reset()
	require.NoError(t, w.Write(Report{Reason: "vcf validation error: Missing column header line"}))
	assert.Empty(t, out.String())
	assert.Equal(t, "vcf validation error: Missing column header line\n"+InvalidMessage+"\n", errOut.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.Write(Report{Path: "a.vcf", Valid: true, Lines: 2, MetaLines: 1}))
	require.NoError(t, w.Write(Report{Path: "b.vcf", Kind: "StructuralError", Line: 4, Reason: "bad"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "a.vcf", got["path"])
	assert.Equal(t, true, got["valid"])
	assert.NotContains(t, got, "kind")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, "StructuralError", got["kind"])
	assert.Equal(t, float64(4), got["line"])
}

func TestHistoryWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewHistoryWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(history.Run{
		File:      history.FileFingerprint{Path: "/data/a.vcf"},
		Valid:     true,
		Records:   4,
		CheckedAt: time.Now(),
	}))
	require.NoError(t, w.Write(history.Run{
		File:      history.FileFingerprint{Path: "/data/b.vcf"},
		Line:      3,
		Reason:    "Non-human chromosome found: chr99",
		CheckedAt: time.Now(),
	}))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Checked")
	assert.Contains(t, out, "/data/a.vcf")
	assert.Contains(t, out, "Non-human chromosome found: chr99")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}
