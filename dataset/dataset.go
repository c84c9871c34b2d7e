// Package dataset generates and manipulates small in-memory record sets,
// mainly for demos and test fixtures.
package dataset

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Record is one generated row. Values are loosely typed so records survive a
// round trip through JSON unchanged in shape.
type Record map[string]any

// namePool is the fixed set of names used for generated records.
var namePool = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}

// Generate returns n random records. Each record carries a sequential id, a
// UUID, a name from a fixed pool, an age between 18 and 65, a score between 0
// and 100 rounded to two decimals, an RFC 3339 timestamp, and an active flag.
func Generate(n int) []Record {
	records := make([]Record, 0, n)
	for i := range n {
		records = append(records, Record{
			"id":        i + 1,
			"uuid":      uuid.NewString(),
			"name":      namePool[rand.Intn(len(namePool))],
			"age":       18 + rand.Intn(48),
			"score":     math.Round(rand.Float64()*10000) / 100,
			"timestamp": time.Now().Format(time.RFC3339),
			"active":    rand.Intn(2) == 0,
		})
	}
	return records
}

// SortByKey returns the records stably sorted by the named key. Records
// missing the key sort as zero. The input slice is not modified.
func SortByKey(records []Record, key string, descending bool) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		c := compareValues(a[key], b[key])
		if descending {
			return -c
		}
		return c
	})
	return sorted
}

// FilterByAge returns the records whose age falls within [minAge, maxAge].
// Records without an age count as age zero.
func FilterByAge(records []Record, minAge, maxAge int) []Record {
	var out []Record
	for _, r := range records {
		age, _ := toFloat(r["age"])
		if float64(minAge) <= age && age <= float64(maxAge) {
			out = append(out, r)
		}
	}
	return out
}

// Stats summarizes the numeric fields of a record set.
type Stats struct {
	TotalRecords int     `json:"total_records"`
	AvgAge       float64 `json:"avg_age"`
	AvgScore     float64 `json:"avg_score"`
	MinAge       float64 `json:"min_age"`
	MaxAge       float64 `json:"max_age"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
}

// Statistics computes count, average, minimum, and maximum over the age and
// score fields. Missing fields count as zero; an empty set yields zero Stats.
func Statistics(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	stats := Stats{
		TotalRecords: len(records),
		MinAge:       math.Inf(1),
		MaxAge:       math.Inf(-1),
		MinScore:     math.Inf(1),
		MaxScore:     math.Inf(-1),
	}
	for _, r := range records {
		age, _ := toFloat(r["age"])
		score, _ := toFloat(r["score"])
		stats.AvgAge += age
		stats.AvgScore += score
		stats.MinAge = math.Min(stats.MinAge, age)
		stats.MaxAge = math.Max(stats.MaxAge, age)
		stats.MinScore = math.Min(stats.MinScore, score)
		stats.MaxScore = math.Max(stats.MaxScore, score)
	}
	stats.AvgAge /= float64(len(records))
	stats.AvgScore /= float64(len(records))
	return stats
}

// compareValues orders two loosely typed values: numerically when both are
// numeric (missing values count as zero), lexically when both are strings.
func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return cmp.Compare(af, bf)
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return cmp.Compare(as, bs)
	}
	if aNum {
		return cmp.Compare(af, 0)
	}
	if bNum {
		return cmp.Compare(0.0, bf)
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		// Missing keys behave as zero.
		return 0, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
