package vcf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Reader reads lines from a plain, gzipped (including BGZF) or
// zstd-compressed VCF stream.
type Reader struct {
	reader     *bufio.Reader
	file       *os.File
	decoder    io.ReadCloser
	lineNumber int
}

// Open creates a Reader for the file at path. A path of "-" reads stdin.
func Open(path string) (*Reader, error) {
	if path == "-" {
		return NewReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	r, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// NewReader creates a Reader from an io.Reader. Compression is detected
// from the leading magic bytes.
func NewReader(src io.Reader) (*Reader, error) {
	buffered := bufio.NewReader(src)

	magic, err := buffered.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	r := &Reader{}
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.decoder = gz
		r.reader = bufio.NewReader(gz)
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}
		r.decoder = zr.IOReadCloser()
		r.reader = bufio.NewReader(r.decoder)
	default:
		r.reader = buffered
	}

	return r, nil
}

// Next returns the next line with its line terminator removed.
// It returns io.EOF when there are no more lines.
func (r *Reader) Next() (Line, error) {
	text, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Line{}, fmt.Errorf("read line %d: %w", r.lineNumber+1, err)
		}
		if text == "" {
			return Line{}, io.EOF
		}
	}
	r.lineNumber++

	return Line{Number: r.lineNumber, Text: strings.TrimRight(text, "\r\n")}, nil
}

// Close releases the decompressor and the underlying file.
func (r *Reader) Close() error {
	if r.decoder != nil {
		r.decoder.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
