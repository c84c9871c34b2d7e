package util

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// CSVToJSON converts a CSV file with a header row into a JSON array of
// objects, one object per record, keyed by column name. Short records leave
// their trailing columns absent.
func CSVToJSON(csvPath, jsonPath string, opts ...Option) error {
	o := newOptions(opts)

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading %s: %w", csvPath, err)
	}

	records := []map[string]string{}
	if len(rows) > 0 {
		header := rows[0]
		for _, row := range rows[1:] {
			record := make(map[string]string, len(header))
			for i, column := range header {
				if i < len(row) {
					record[column] = row[i]
				}
			}
			records = append(records, record)
		}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	o.log.Printf("converted %s to %s", csvPath, jsonPath)
	return nil
}

// JSONToCSV converts a JSON array of objects into a CSV file. The header is
// taken from the first object's keys, sorted for a deterministic column
// order; values missing from later objects become empty cells. Input that is
// not a non-empty array of objects fails with ErrNotTabular.
func JSONToCSV(jsonPath, csvPath string, opts ...Option) error {
	o := newOptions(opts)

	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", jsonPath, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrNotTabular, err)
	}
	if len(records) == 0 {
		return ErrNotTabular
	}

	header := make([]string, 0, len(records[0]))
	for key := range records[0] {
		header = append(header, key)
	}
	sort.Strings(header)

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, record := range records {
		row := make([]string, len(header))
		for i, column := range header {
			if value, ok := record[column]; ok && value != nil {
				row[i] = fmt.Sprint(value)
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	o.log.Printf("converted %s to %s", jsonPath, csvPath)
	return nil
}

// ValidateJSON reports whether the file at path holds syntactically valid
// JSON. A nil return means valid; otherwise the error carries parse detail.
func ValidateJSON(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}
