package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"id", "experiment", "samples", "trials_per_sample", "trials", "mean", "stdev", "expected", "duration"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Experiment,
			strconv.Itoa(record.Samples),
			strconv.Itoa(record.TrialsPerSample),
			strconv.Itoa(record.Trials),
			formatFloat(record.Mean),
			formatFloat(record.StdDev),
			formatFloat(record.Expected),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush run records: %w", err)
	}
	return nil
}

// formatFloat leaves unknown values as an empty cell
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type yamlRecord struct {
	ID              int      `yaml:"id"`
	Experiment      string   `yaml:"experiment"`
	Samples         int      `yaml:"samples"`
	TrialsPerSample int      `yaml:"trials_per_sample"`
	Trials          int      `yaml:"trials"`
	Mean            float64  `yaml:"mean"`
	StdDev          float64  `yaml:"stdev"`
	Expected        *float64 `yaml:"expected,omitempty"`
	Duration        string   `yaml:"duration"`
}

// WriteRunRecordsYAML writes the records as a YAML sequence with the same
// fields as the CSV columns. Unknown expected values are omitted.
func (w *Writer) WriteRunRecordsYAML(records []RunRecord) error {
	out := make([]yamlRecord, 0, len(records))
	for _, record := range records {
		yr := yamlRecord{
			ID:              record.ID,
			Experiment:      record.Experiment,
			Samples:         record.Samples,
			TrialsPerSample: record.TrialsPerSample,
			Trials:          record.Trials,
			Mean:            record.Mean,
			StdDev:          record.StdDev,
			Duration:        record.Duration.String(),
		}
		if !math.IsNaN(record.Expected) {
			expected := record.Expected
			yr.Expected = &expected
		}
		out = append(out, yr)
	}

	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush run records: %w", err)
	}
	return nil
}
