package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvHeader is written by WriteCSV and expected (but not checked) by ReadCSV.
var csvHeader = []string{"id", "weight", "benefit"}

// ReadCSV parses "id,weight,benefit" records after a single header row.
// Whitespace around fields is ignored and blank lines are skipped.
//
// Errors: ErrMalformedInput (wrapped with the 1-based line number) for rows
// that do not hold exactly three integers; any error returned by New.
func ReadCSV(r io.Reader) (*Catalog, error) {
	var cr = csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked per row to report the line
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		items  []Item
		rec    []string
		err    error
		header = true
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: %v: %w", err, ErrMalformedInput)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		it, perr := parseRecord(rec)
		if perr != nil {
			return nil, fmt.Errorf("catalog: line %d: %v: %w", line, perr, ErrMalformedInput)
		}
		items = append(items, it)
	}

	return New(items)
}

// parseRecord converts one CSV record into an Item without range checks
// beyond integer widths; New validates weight and benefit.
func parseRecord(rec []string) (Item, error) {
	if len(rec) != 3 {
		return Item{}, fmt.Errorf("want 3 fields, got %d", len(rec))
	}
	id, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 32)
	if err != nil {
		return Item{}, fmt.Errorf("id %q", rec[0])
	}
	w, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
	if err != nil {
		return Item{}, fmt.Errorf("weight %q", rec[1])
	}
	b, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
	if err != nil {
		return Item{}, fmt.Errorf("benefit %q", rec[2])
	}

	return Item{ID: uint32(id), Weight: w, Benefit: b}, nil
}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteCSV writes c in id order using the format ReadCSV accepts.
func WriteCSV(w io.Writer, c *Catalog) error {
	if c == nil {
		return ErrNilCatalog
	}
	var cw = csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	var rec = make([]string, 3)
	for _, it := range c.items {
		rec[0] = strconv.FormatUint(uint64(it.ID), 10)
		rec[1] = strconv.FormatInt(it.Weight, 10)
		rec[2] = strconv.FormatInt(it.Benefit, 10)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV creates (or truncates) path and writes c to it.
func SaveCSV(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
