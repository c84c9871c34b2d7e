package dataset

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerate(t *testing.T) {
	records := Generate(25)
	if len(records) != 25 {
		t.Fatalf("Generate(25) returned %d records", len(records))
	}

	for i, r := range records {
		if r["id"] != i+1 {
			t.Errorf("record %d has id %v, want %d", i, r["id"], i+1)
		}
		if _, err := uuid.Parse(r["uuid"].(string)); err != nil {
			t.Errorf("record %d has invalid uuid %v: %v", i, r["uuid"], err)
		}
		age := r["age"].(int)
		if age < 18 || age > 65 {
			t.Errorf("record %d age %d outside 18-65", i, age)
		}
		score := r["score"].(float64)
		if score < 0 || score > 100 {
			t.Errorf("record %d score %f outside 0-100", i, score)
		}
		if _, ok := r["name"].(string); !ok {
			t.Errorf("record %d has no name", i)
		}
		if _, ok := r["active"].(bool); !ok {
			t.Errorf("record %d has no active flag", i)
		}
	}
}

func TestGenerateZero(t *testing.T) {
	if records := Generate(0); len(records) != 0 {
		t.Errorf("Generate(0) returned %d records", len(records))
	}
}

func TestSortByKey(t *testing.T) {
	records := []Record{
		{"name": "Charlie", "age": 35},
		{"name": "Alice", "age": 30},
		{"name": "Bob", "age": 25},
	}

	t.Run("numeric ascending", func(t *testing.T) {
		sorted := SortByKey(records, "age", false)
		ages := []int{sorted[0]["age"].(int), sorted[1]["age"].(int), sorted[2]["age"].(int)}
		if ages[0] != 25 || ages[1] != 30 || ages[2] != 35 {
			t.Errorf("ascending ages = %v", ages)
		}
	})

	t.Run("numeric descending", func(t *testing.T) {
		sorted := SortByKey(records, "age", true)
		if sorted[0]["age"].(int) != 35 || sorted[2]["age"].(int) != 25 {
			t.Errorf("descending sort wrong: %v", sorted)
		}
	})

	t.Run("string key", func(t *testing.T) {
		sorted := SortByKey(records, "name", false)
		if sorted[0]["name"] != "Alice" || sorted[2]["name"] != "Charlie" {
			t.Errorf("name sort wrong: %v", sorted)
		}
	})

	t.Run("missing key sorts as zero", func(t *testing.T) {
		mixed := []Record{
			{"name": "has age", "age": 5},
			{"name": "no age"},
			{"name": "negative", "age": -3},
		}
		sorted := SortByKey(mixed, "age", false)
		if sorted[0]["name"] != "negative" || sorted[1]["name"] != "no age" {
			t.Errorf("missing key ordering wrong: %v", sorted)
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		SortByKey(records, "age", false)
		if records[0]["name"] != "Charlie" {
			t.Error("SortByKey modified its input")
		}
	})
}

func TestFilterByAge(t *testing.T) {
	records := []Record{
		{"name": "young", "age": 20},
		{"name": "mid", "age": 40},
		{"name": "old", "age": 60},
		{"name": "ageless"},
	}

	tests := []struct {
		name     string
		min, max int
		want     int
	}{
		{name: "all adults", min: 18, max: 65, want: 3},
		{name: "narrow band", min: 35, max: 45, want: 1},
		{name: "includes zero", min: 0, max: 25, want: 2},
		{name: "empty band", min: 90, max: 99, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(FilterByAge(records, tt.min, tt.max)); got != tt.want {
				t.Errorf("FilterByAge(%d, %d) matched %d records, want %d",
					tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestStatistics(t *testing.T) {
	records := []Record{
		{"age": 20, "score": 50.0},
		{"age": 30, "score": 70.0},
		{"age": 40, "score": 90.0},
	}

	stats := Statistics(records)
	if stats.TotalRecords != 3 {
		t.Errorf("total = %d, want 3", stats.TotalRecords)
	}
	if stats.AvgAge != 30 {
		t.Errorf("avg age = %f, want 30", stats.AvgAge)
	}
	if stats.MinAge != 20 || stats.MaxAge != 40 {
		t.Errorf("age range = [%f, %f], want [20, 40]", stats.MinAge, stats.MaxAge)
	}
	if stats.AvgScore != 70 {
		t.Errorf("avg score = %f, want 70", stats.AvgScore)
	}
	if stats.MinScore != 50 || stats.MaxScore != 90 {
		t.Errorf("score range = [%f, %f], want [50, 90]", stats.MinScore, stats.MaxScore)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	if stats := Statistics(nil); stats != (Stats{}) {
		t.Errorf("Statistics(nil) = %+v, want zero value", stats)
	}
}
