// Package legacycsv reads the member spreadsheet exported by the old front desk
// system.
package legacycsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fitengage/gym-manager/internal/core/ports"
)

const (
	colFirstName = "First Name"
	colLastName  = "Last Name"
	colRenewal   = "Membership Renewal"
	colExpiry    = "Membership Expiry Date"
)

// noteColumns are the duplicated "Notes" headers as the export names them.
var noteColumns = []string{"Notes", "Notes.1", "Notes.2"}

var requiredColumns = append([]string{colFirstName, colLastName, colRenewal, colExpiry}, noteColumns...)

// ReadFile opens path and streams its rows to fn. See Read.
func ReadFile(path string, fn func(ports.LegacyMemberRow) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f), fn)
}

// Read parses the header, checks the required columns and calls fn once per
// data row in file order. Line numbers are 1-based and count the header.
// It stops at the first error returned by fn and returns the number of rows
// delivered.
func Read(r io.Reader, fn func(ports.LegacyMemberRow) error) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("csv is empty")
		}
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := col[h]; !dup {
			col[h] = i
		}
	}
	for _, k := range requiredColumns {
		if _, ok := col[k]; !ok {
			return 0, fmt.Errorf("missing required column: %s", k)
		}
	}

	n := 0
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		if blank(rec) {
			continue
		}

		get := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		row := ports.LegacyMemberRow{
			Line:      line,
			FirstName: get(colFirstName),
			LastName:  get(colLastName),
			Renewal:   get(colRenewal),
			Expiry:    get(colExpiry),
			Notes:     make([]string, 0, len(noteColumns)),
		}
		for _, c := range noteColumns {
			row.Notes = append(row.Notes, get(c))
		}

		if err := fn(row); err != nil {
			return n, err
		}
		n++
	}
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
