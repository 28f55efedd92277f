package vcf

import "strings"

// mandatoryColumns are the leading column names every header must carry, in order.
var mandatoryColumns = [...]string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// Header is the "#CHROM ..." column header line split into its columns.
type Header struct {
	Columns []string
}

// Samples returns the sample names after the FORMAT column, if any.
func (h *Header) Samples() []string {
	if len(h.Columns) <= len(mandatoryColumns)+1 {
		return nil
	}
	return h.Columns[len(mandatoryColumns)+1:]
}

// ParseHeader validates a column header line. Columns are separated by
// any run of whitespace; the first eight must be the mandatory names.
// Trailing columns are not checked.
func ParseHeader(line string) (*Header, error) {
	columns := strings.Fields(line)
	if len(columns) < len(mandatoryColumns) {
		return nil, newError(StructuralError, "Insufficient columns in column header line", line)
	}
	for i, want := range mandatoryColumns {
		if columns[i] != want {
			return nil, newError(StructuralError, "Invalid column header line: expected "+want, columns[i])
		}
	}
	return &Header{Columns: columns}, nil
}
