package vcf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmerpiki/genomic-validator/internal/token"
)

// record builds a data line from its columns.
func record(cols ...string) string {
	return strings.Join(cols, "\t")
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind Kind // 0 means valid
		wantRule string
	}{
		{"minimal", record("1", "100", ".", "A", "C", "30", "PASS", "."), 0, ""},
		{"chr prefix", record("chr12", "25245351", "rs1", "C", "A", ".", ".", "DP=10"), 0, ""},
		{"chrM", record("chrM", "1", ".", "N", "A", "0", "PASS", "."), 0, ""},
		{"MT", record("MT", "1", ".", "n", "A", "0", "PASS", "."), 0, ""},
		{"lowercase ref", record("X", "5", ".", "acgt", "A", "1.5", "PASS", "."), 0, ""},
		{"mixed alt", record("1", "100", ".", "A", "A,<DEL>", "30", "PASS", "."), 0, ""},
		{"star alt", record("1", "100", ".", "A", "*", "30", "PASS", "."), 0, ""},
		{"format no samples", record("1", "100", ".", "A", "C", "30", "PASS", ".", "GT"), 0, ""},
		{"with samples", record("1", "100", ".", "A", "C", "30", "PASS", ".", "GT:DP", "0/1:20", "1/1:7"), 0, ""},

		{"too few fields", record("1", "100", ".", "A", "C", "30", "PASS"), FieldError, "Invalid data line (not enough fields)"},
		{"empty chrom", record("", "100", ".", "A", "C", "30", "PASS", "."), FieldError, "Invalid CHROM field"},
		{"non-human chrom", record("chr99", "100", ".", "A", "C", "30", "PASS", "."), FieldError, "Non-human chromosome found"},
		{"chrMT is not listed", record("chrMT", "100", ".", "A", "C", "30", "PASS", "."), FieldError, "Non-human chromosome found"},
		{"scaffold", record("GL000192.1", "100", ".", "A", "C", "30", "PASS", "."), FieldError, "Non-human chromosome found"},
		{"pos not integer", record("1", "abc", ".", "A", "C", "30", "PASS", "."), ConversionError, "Invalid POS field (not an integer)"},
		{"pos partial integer", record("1", "12abc", ".", "A", "C", "30", "PASS", "."), ConversionError, "Invalid POS field (not an integer)"},
		{"pos plus sign", record("1", "+5", ".", "A", "C", "30", "PASS", "."), ConversionError, "Invalid POS field (not an integer)"},
		{"pos zero", record("1", "0", ".", "A", "C", "30", "PASS", "."), FieldError, "Invalid POS field"},
		{"pos negative", record("1", "-5", ".", "A", "C", "30", "PASS", "."), FieldError, "Invalid POS field"},
		{"empty id", record("1", "100", "", "A", "C", "30", "PASS", "."), FieldError, "Invalid ID field"},
		{"bad ref", record("1", "100", ".", "AX", "C", "30", "PASS", "."), FieldError, "Invalid REF field"},
		{"empty ref", record("1", "100", ".", "", "C", "30", "PASS", "."), FieldError, "Invalid REF field"},
		{"empty alt element", record("1", "100", ".", "A", "A,,C", "30", "PASS", "."), FieldError, "Invalid ALT field"},
		{"lowercase alt", record("1", "100", ".", "A", "c", "30", "PASS", "."), FieldError, "Invalid ALT field"},
		{"qual not float", record("1", "100", ".", "A", "C", "high", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual nan", record("1", "100", ".", "A", "C", "NaN", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual exponent", record("1", "100", ".", "A", "C", "1e5", "PASS", "."), 0, ""},
		{"qual small exponent", record("1", "100", ".", "A", "C", "2.5E-3", "PASS", "."), 0, ""},
		{"qual hex float", record("1", "100", ".", "A", "C", "0x1p3", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual hex with separator", record("1", "100", ".", "A", "C", "0x_1p0", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual digit separator", record("1", "100", ".", "A", "C", "1_0", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual plus sign", record("1", "100", ".", "A", "C", "+30", "PASS", "."), ConversionError, "Invalid QUAL field (not a float)"},
		{"qual negative", record("1", "100", ".", "A", "C", "-1", "PASS", "."), FieldError, "Invalid QUAL field"},
		{"empty filter", record("1", "100", ".", "A", "C", "30", "", "."), FieldError, "Invalid FILTER field"},
		{"empty info", record("1", "100", ".", "A", "C", "30", "PASS", ""), FieldError, "Invalid INFO field"},
		{"bad sample", record("1", "100", ".", "A", "C", "30", "PASS", ".", "GT:DP", "0/1"), CardinalityError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.line)
			if tt.wantKind == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
			assert.Equal(t, tt.wantKind, verr.Kind)
			if tt.wantRule != "" {
				assert.Equal(t, tt.wantRule, verr.Rule)
			}
		})
	}
}

func TestValidateRecord_FirstViolationWins(t *testing.T) {
	// Both CHROM and POS are bad; CHROM is checked first.
	err := ValidateRecord(record("chr99", "0", ".", "A", "C", "30", "PASS", "."))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Non-human chromosome found", verr.Rule)
	assert.Equal(t, "chr99", verr.Text)
}

func TestValidateRecord_ConversionCause(t *testing.T) {
	err := ValidateRecord(record("1", "x", ".", "A", "C", "30", "PASS", "."))
	var convErr *token.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "x", convErr.Token)
}

func TestSplitRecord(t *testing.T) {
	r, err := SplitRecord(record("1", "100", "rs1", "A", "C", "30", "PASS", "DP=3"))
	require.NoError(t, err)
	assert.Equal(t, "rs1", r.ID)
	assert.Equal(t, "DP=3", r.Info)
	assert.False(t, r.HasFormat)
	assert.Empty(t, r.Samples)

	r, err = SplitRecord(record("1", "100", "rs1", "A", "C", "30", "PASS", "DP=3", "GT:DP", "0/1:3", "0/0:9"))
	require.NoError(t, err)
	assert.True(t, r.HasFormat)
	assert.Equal(t, "GT:DP", r.Format)
	assert.Equal(t, []string{"0/1:3", "0/0:9"}, r.Samples)
}

func TestIsHumanChromosome(t *testing.T) {
	assert.Len(t, humanChromosomes, 50)
	for _, c := range []string{"1", "22", "X", "Y", "MT", "chr1", "chr22", "chrX", "chrY", "chrM"} {
		assert.True(t, IsHumanChromosome(c), c)
	}
	for _, c := range []string{"0", "23", "M", "chrMT", "chr23", "Chr1", "x", ""} {
		assert.False(t, IsHumanChromosome(c), c)
	}
}
