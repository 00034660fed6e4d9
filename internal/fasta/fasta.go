// Package fasta reads and writes multi-record FASTA files.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// lineWidth is the number of residues written per sequence line.
const lineWidth = 70

// Record is a single FASTA record: an identifier, the rest of the
// defline, and the sequence itself.
type Record struct {
	// ID is the first whitespace-delimited token of the defline
	ID string

	// Desc is the remainder of the defline (may be empty)
	Desc string

	// Seq is the sequence with newlines removed
	Seq string
}

// ParseError is returned for input that isn't FASTA.
type ParseError struct {
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg)
}

// Parse reads every record from r. Sequence data before the first
// '>' defline is an error; empty input parses to zero records.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	open := false // whether a defline has been seen
	var rec Record
	var seq strings.Builder

	flush := func() {
		if open {
			rec.Seq = seq.String()
			records = append(records, rec)
			seq.Reset()
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(text, ">") {
			flush()
			open = true

			defline := strings.TrimSpace(text[1:])
			if fields := strings.SplitN(defline, " ", 2); len(fields) == 2 {
				rec = Record{ID: fields[0], Desc: strings.TrimSpace(fields[1])}
			} else {
				rec = Record{ID: defline}
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}
		if !open {
			return nil, &ParseError{Line: line, Msg: "sequence data before the first '>' defline"}
		}
		seq.WriteString(strings.TrimSpace(text))
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: line, Msg: err.Error()}
	}
	flush()

	return records, nil
}

// Write writes records to w, wrapping sequence lines at 70 columns.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	for _, rec := range records {
		defline := rec.ID
		if rec.Desc != "" {
			defline += " " + rec.Desc
		}
		if _, err := fmt.Fprintf(bw, ">%s\n", defline); err != nil {
			return err
		}

		for i := 0; i < len(rec.Seq); i += lineWidth {
			end := i + lineWidth
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintf(bw, "%s\n", rec.Seq[i:end]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFile writes records to path, truncating any existing file.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
