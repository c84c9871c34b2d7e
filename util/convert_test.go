package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCSVToJSON(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "in.csv")
	jsonPath := filepath.Join(tmpDir, "out.json")

	csvContent := "name,age,city\nAlice,30,Berlin\nBob,25,Paris\n"
	if err := os.WriteFile(csvPath, []byte(csvContent), 0644); err != nil {
		t.Fatalf("writing csv: %v", err)
	}

	if err := CSVToJSON(csvPath, jsonPath); err != nil {
		t.Fatalf("CSVToJSON() unexpected error: %v", err)
	}

	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var records []map[string]string
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := []map[string]string{
		{"name": "Alice", "age": "30", "city": "Berlin"},
		{"name": "Bob", "age": "25", "city": "Paris"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSVToJSON() produced %v, want %v", records, want)
	}
}

func TestCSVToJSONEmptyInput(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "empty.csv")
	jsonPath := filepath.Join(tmpDir, "out.json")
	os.WriteFile(csvPath, []byte(""), 0644)

	if err := CSVToJSON(csvPath, jsonPath); err != nil {
		t.Fatalf("CSVToJSON() unexpected error: %v", err)
	}
	raw, _ := os.ReadFile(jsonPath)
	var records []map[string]string
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty array, got %v", records)
	}
}

func TestCSVToJSONMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	err := CSVToJSON(filepath.Join(tmpDir, "gone.csv"), filepath.Join(tmpDir, "out.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestJSONToCSV(t *testing.T) {
	tmpDir := t.TempDir()
	jsonPath := filepath.Join(tmpDir, "in.json")
	csvPath := filepath.Join(tmpDir, "out.csv")

	jsonContent := `[
  {"name": "Alice", "age": 30},
  {"name": "Bob", "age": 25}
]`
	if err := os.WriteFile(jsonPath, []byte(jsonContent), 0644); err != nil {
		t.Fatalf("writing json: %v", err)
	}

	if err := JSONToCSV(jsonPath, csvPath); err != nil {
		t.Fatalf("JSONToCSV() unexpected error: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output csv: %v", err)
	}

	want := [][]string{
		{"age", "name"},
		{"30", "Alice"},
		{"25", "Bob"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("JSONToCSV() produced %v, want %v", rows, want)
	}
}

func TestJSONToCSVRejectsNonTabular(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "object instead of array", content: `{"name": "Alice"}`},
		{name: "array of scalars", content: `[1, 2, 3]`},
		{name: "empty array", content: `[]`},
		{name: "not json at all", content: `name,age`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			jsonPath := filepath.Join(tmpDir, "in.json")
			os.WriteFile(jsonPath, []byte(tt.content), 0644)

			err := JSONToCSV(jsonPath, filepath.Join(tmpDir, "out.csv"))
			if !errors.Is(err, ErrNotTabular) {
				t.Errorf("expected ErrNotTabular, got %v", err)
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{name: "object", content: `{"a": 1, "b": [true, null]}`, valid: true},
		{name: "array", content: `[1, 2, 3]`, valid: true},
		{name: "bare string", content: `"hello"`, valid: true},
		{name: "trailing comma", content: `{"a": 1,}`, valid: false},
		{name: "unclosed brace", content: `{"a": 1`, valid: false},
		{name: "empty file", content: ``, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "candidate.json")
			os.WriteFile(path, []byte(tt.content), 0644)

			err := ValidateJSON(path)
			if tt.valid && err != nil {
				t.Errorf("ValidateJSON() unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("ValidateJSON() expected error, got nil")
			}
		})
	}
}
