// Package catalog reads the e-learning catalog export: a ';'-delimited CSV
// with one row per course.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"learnpath/internal/domain"
)

// Columns is the expected header, in export order. Only Titel is mandatory.
var Columns = []string{
	"Titel", "Niveau", "Onderwerp", "Type", "Tijdsinvestering",
	"Taal", "Organisatie", "Beschrijving", "Link",
}

const bom = "\ufeff"

// ErrNoTitleColumn is returned when the header lacks a Titel column.
var ErrNoTitleColumn = errors.New("catalog: header has no Titel column")

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]*domain.Elearning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads all rows. Missing optional columns default to empty or zero and
// blank lines are skipped. Tijdsinvestering accepts a decimal comma.
func Parse(r io.Reader) ([]*domain.Elearning, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTitleColumn
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, bom)
		}
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index["Titel"]; !ok {
		return nil, ErrNoTitleColumn
	}

	var items []*domain.Elearning
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(record) {
			continue
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		niveau, err := parseLevel(field("Niveau"))
		if err != nil {
			return nil, fmt.Errorf("line %d: Niveau: %w", line, err)
		}
		hours, err := ParseHours(field("Tijdsinvestering"))
		if err != nil {
			return nil, fmt.Errorf("line %d: Tijdsinvestering: %w", line, err)
		}

		item := &domain.Elearning{
			Titel:            field("Titel"),
			Niveau:           niveau,
			Onderwerp:        field("Onderwerp"),
			Type:             field("Type"),
			Tijdsinvestering: hours,
			Taal:             field("Taal"),
			Organisatie:      field("Organisatie"),
			Beschrijving:     field("Beschrijving"),
			Link:             field("Link"),
			Status:           domain.StatusActive,
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseHours parses a time investment such as "2", "2.5" or "2,5".
// An empty value is zero.
func ParseHours(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %q", s)
	}
	return v, nil
}

func parseLevel(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q", s)
	}
	return n, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
