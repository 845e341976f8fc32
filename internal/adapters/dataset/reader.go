// Package dataset adapts on-disk tabular data (CSV) to the domain types and
// back. Schema problems (missing required columns) are detected here, before
// any grouping begins; malformed cells surface as validation errors rather
// than being coerced.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okian/keyfeat/internal/domain/model"
)

// Required event table columns.
const (
	colID         = "id"
	colActionTime = "action_time"
	colActivity   = "activity"
	colTextChange = "text_change"
	colScore      = "score"
)

// ReadEvents loads the event table from a CSV file. The header must contain
// id, action_time, activity and text_change (extra columns are ignored).
// An empty or non-numeric action_time cell fails the load; values are never
// coerced to 0.
func ReadEvents(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	defer f.Close()
	return readEvents(f)
}

func readEvents(r io.Reader) ([]model.Event, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header, colID, colActionTime, colActivity, colTextChange)
	if err != nil {
		return nil, err
	}

	var events []model.Event
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		raw := record[cols[colActionTime]]
		if raw == "" {
			return nil, fmt.Errorf("line %d: %w: empty action_time", line, ErrBadValue)
		}
		actionTime, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: action_time %q", line, ErrBadValue, raw)
		}

		events = append(events, model.Event{
			ID:         record[cols[colID]],
			ActionTime: actionTime,
			Activity:   record[cols[colActivity]],
			TextChange: record[cols[colTextChange]],
		})
	}
	return events, nil
}

// ReadLabels loads the label table from a CSV file with columns id and score.
func ReadLabels(path string) ([]model.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer f.Close()
	return readLabels(f)
}

func readLabels(r io.Reader) ([]model.Label, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header, colID, colScore)
	if err != nil {
		return nil, err
	}

	var rows []model.Label
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		score, err := strconv.ParseFloat(record[cols[colScore]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: score %q", line, ErrBadValue, record[cols[colScore]])
		}
		rows = append(rows, model.Label{ID: record[cols[colID]], Score: score})
	}
	return rows, nil
}

// columnIndex maps each required column name to its header position,
// failing with ErrMissingColumn when one is absent.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return idx, nil
}
