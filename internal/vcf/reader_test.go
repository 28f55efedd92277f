package vcf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallVCF = "##fileformat=VCFv4.2\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
	"1\t100\t.\tA\tC\t30\tPASS\t.\n"

func readAll(t *testing.T, r *Reader) []Line {
	t.Helper()
	var lines []Line
	for {
		l, err := r.Next()
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, l)
	}
}

func TestReader_Plain(t *testing.T) {
	r, err := NewReader(strings.NewReader(smallVCF))
	require.NoError(t, err)
	defer r.Close()

	lines := readAll(t, r)
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Number: 1, Text: "##fileformat=VCFv4.2"}, lines[0])
	assert.Equal(t, 3, lines[2].Number)
	assert.Equal(t, "1\t100\t.\tA\tC\t30\tPASS\t.", lines[2].Text)
}

func TestReader_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(smallVCF))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	lines := readAll(t, r)
	require.Len(t, lines, 3)
	assert.Equal(t, "##fileformat=VCFv4.2", lines[0].Text)
}

func TestReader_MultiMemberGzip(t *testing.T) {
	// BGZF files are a series of concatenated gzip members.
	var buf bytes.Buffer
	for _, part := range strings.SplitAfter(smallVCF, "\n") {
		if part == "" {
			continue
		}
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(part))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	}

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	assert.Len(t, readAll(t, r), 3)
}

func TestReader_Zstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(smallVCF))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	lines := readAll(t, r)
	require.Len(t, lines, 3)
	assert.Equal(t, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO", lines[1].Text)
}

func TestReader_Empty(t *testing.T) {
	r, err := NewReader(strings.NewReader(""))
	require.NoError(t, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_CRLFAndNoTrailingNewline(t *testing.T) {
	r, err := Open(findTestFile(t, "crlf_no_trailing_newline.vcf"))
	require.NoError(t, err)
	defer r.Close()

	lines := readAll(t, r)
	require.Len(t, lines, 3)
	assert.Equal(t, "##fileformat=VCFv4.2", lines[0].Text)
	assert.Equal(t, "1\t100\t.\tA\tC\t30\tPASS\t.", lines[2].Text)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.vcf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines(t *testing.T) {
	src := Lines("a", "b")
	l, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, Line{Number: 1, Text: "a"}, l)
	l, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, Line{Number: 2, Text: "b"}, l)
	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

// findTestFile locates a test file in the testdata directory.
func findTestFile(t *testing.T, name string) string {
	t.Helper()

	paths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	t.Fatalf("Test file not found: %s", name)
	return ""
}
