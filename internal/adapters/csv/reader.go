// Package csv reads player rosters from delimited tabular files.
package csv

import (
	"bufio"
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/roster/internal/models"
)

// Required roster columns.
const (
	PlayerNameColumn = "player_name"
	PlayerIDColumn   = "player_id"
)

// contextCheckInterval is how often (in rows) to check for cancellation.
const contextCheckInterval = 100

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("roster is empty")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader implements secondary.RosterReader for CSV input.
type Reader struct {
	comma rune
}

// NewReader creates a CSV roster reader using comma as the field delimiter.
// A zero comma defaults to ','.
func NewReader(comma rune) *Reader {
	if comma == 0 {
		comma = ','
	}
	return &Reader{comma: comma}
}

// ReadFile parses the roster stored at path.
func (r *Reader) ReadFile(ctx context.Context, path string) ([]models.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	return r.ReadPlayers(ctx, f)
}

// ReadPlayers parses a roster with a header row. Columns are located by name,
// in any order; extra columns are ignored. Values are copied verbatim.
func (r *Reader) ReadPlayers(ctx context.Context, in io.Reader) ([]models.Player, error) {
	cr := stdcsv.NewReader(skipBOM(in))
	cr.Comma = r.comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	nameIdx, err := columnIndex(header, PlayerNameColumn)
	if err != nil {
		return nil, err
	}
	idIdx, err := columnIndex(header, PlayerIDColumn)
	if err != nil {
		return nil, err
	}

	var players []models.Player
	for row := 1; ; row++ {
		if row%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		players = append(players, models.NewPlayer(field(record, nameIdx), field(record, idIdx)))
	}

	return players, nil
}

// columnIndex locates name in the header. A repeated column resolves to its
// last occurrence.
func columnIndex(header []string, name string) (int, error) {
	for i := len(header) - 1; i >= 0; i-- {
		if header[i] == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrMissingColumn, name)
}

// field returns record[i], or "" for short rows.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func skipBOM(in io.Reader) io.Reader {
	br := bufio.NewReader(in)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
