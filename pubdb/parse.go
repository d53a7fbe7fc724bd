// Package pubdb reads the author table CSV exported by a publication
// database, producing ordered rows of column name to string value.
package pubdb

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/skysurvey-tools/authlist/order"
)

// Row maps column names to string values for one table row.
type Row map[string]string

// Parse reads a CSV table. The first row is the header; rows whose first
// field starts with '#' are skipped; quoted fields may span LaTeX markup
// (lazy quoting). Row order is preserved.
func Parse(r io.Reader) ([]Row, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		checkUmlaut(line)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseAux reads an auxiliary ordering file: one "Lastname" or
// "Lastname,Firstname" entry per line, '#' comments allowed. Duplicate
// entries are an error, since they would reorder ambiguously.
func ParseAux(r io.Reader) ([]order.AuxName, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing aux file: %w", err)
	}

	seen := make(map[string]bool)
	var names []order.AuxName
	for _, rec := range records {
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		n := order.AuxName{Last: strings.TrimSpace(rec[0])}
		if len(rec) > 1 {
			n.First = strings.TrimSpace(rec[1])
		}
		key := n.Last + "\x00" + n.First
		if seen[key] {
			return nil, fmt.Errorf("non-unique name in aux file: %s", n.Last)
		}
		seen[key] = true
		names = append(names, n)
	}
	return names, nil
}

// checkUmlaut warns about unescaped LaTeX umlauts inside quoted fields.
// `\"` is fine in a bare field (D.~Gr\"un) but inside a quoted affiliation
// it must be doubled (`\""`) or the CSV quoting breaks.
func checkUmlaut(line string) {
	quote := strings.Index(line, `,"`)
	if quote < 0 {
		return
	}
	for i := quote; ; {
		j := strings.Index(line[i:], `\"`)
		if j < 0 {
			return
		}
		pos := i + j
		if pos+2 >= len(line) || line[pos+2] != '"' {
			slog.Warn("found unescaped umlaut", "line", strings.TrimSpace(line))
			return
		}
		i = pos + 3
		if i >= len(line) {
			return
		}
	}
}
