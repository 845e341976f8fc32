package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okian/keyfeat/internal/domain/model"
)

// WriteFeatures writes the feature table to a CSV file with the fixed header
// order: id, timing columns, activity columns, text-change columns and, for a
// labeled table, the score column. A nil label is written as an empty cell.
func WriteFeatures(path string, table *model.FeatureTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeFeatures(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFeatures(w io.Writer, table *model.FeatureTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.Header(table.Labeled)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range table.Rows {
		if err := cw.Write(featureRecord(&table.Rows[i], table.Labeled)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func featureRecord(row *model.FeatureVector, labeled bool) []string {
	record := make([]string, 0, 4+len(row.ActivityFreq)+len(row.TextChangeFreq)+1)
	record = append(record,
		row.ID,
		formatFloat(row.ActionTimeMaxLog),
		formatFloat(row.ActionTimeMeanLog),
		formatFloat(row.ActionTimeStdLog),
	)
	for _, v := range row.ActivityFreq {
		record = append(record, formatFloat(v))
	}
	for _, v := range row.TextChangeFreq {
		record = append(record, formatFloat(v))
	}
	if labeled {
		if row.Label != nil {
			record = append(record, formatFloat(*row.Label))
		} else {
			record = append(record, "")
		}
	}
	return record
}

// WriteEvents writes an event table, used by the synthetic data generator.
func WriteEvents(path string, events []model.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{colID, colActionTime, colActivity, colTextChange}); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, ev := range events {
		record := []string{ev.ID, formatFloat(ev.ActionTime), ev.Activity, ev.TextChange}
		if err := cw.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteLabels writes a label table, used by the synthetic data generator.
func WriteLabels(path string, rows []model.Label) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{colID, colScore}); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.ID, formatFloat(row.Score)}); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
