package candidate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// DictionaryGenerator reads a wordlist file line by line, yielding one
// candidate per non-blank line (trimmed of ASCII whitespace).
type DictionaryGenerator struct {
	path      string
	file      *os.File
	reader    *bufio.Reader
	exhausted bool
}

// NewDictionaryGenerator opens path for reading.
func NewDictionaryGenerator(path string) (*DictionaryGenerator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist %s: %w", path, err)
	}

	return &DictionaryGenerator{
		path:   path,
		file:   f,
		reader: bufio.NewReader(f),
	}, nil
}

// NextBatch implements Generator. A read error other than io.EOF is
// returned to the caller instead of being folded into exhaustion, so a
// genuine I/O failure mid-file is distinguishable from having reached the
// end of the wordlist.
func (d *DictionaryGenerator) NextBatch(size int) (Batch, bool, error) {
	if d.exhausted {
		return nil, false, nil
	}

	batch := make(Batch, 0, size)
	for len(batch) < size {
		line, err := d.reader.ReadBytes('\n')
		if len(line) > 0 {
			trimmed := bytes.TrimSpace(line)
			if len(trimmed) > 0 {
				candidate := make([]byte, len(trimmed))
				copy(candidate, trimmed)
				batch = append(batch, candidate)
			}
		}

		if err != nil {
			d.exhausted = true
			if err != io.EOF {
				return nil, false, fmt.Errorf("reading wordlist %s: %w", d.path, err)
			}
			break
		}
	}

	if len(batch) == 0 {
		return nil, false, nil
	}
	return batch, true, nil
}

// EstimatedSize implements Generator. The dictionary generator never
// pre-scans its file, so its size is always unknown.
func (d *DictionaryGenerator) EstimatedSize() (uint64, bool) {
	return 0, false
}

// Reset reopens the wordlist from offset zero.
func (d *DictionaryGenerator) Reset() error {
	if d.file != nil {
		_ = d.file.Close()
	}

	f, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("reopening wordlist %s: %w", d.path, err)
	}

	d.file = f
	d.reader = bufio.NewReader(f)
	d.exhausted = false
	return nil
}

// Close releases the underlying file handle.
func (d *DictionaryGenerator) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}
