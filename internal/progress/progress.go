package progress

// Trend is the coarse direction of score change across a student's
// session history, based only on the first and last score.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Stats summarizes a student's scored session history. Derived on demand
// and never persisted.
type Stats struct {
	Average    float64
	High       float64
	Low        float64
	Trend      Trend
	FirstScore float64
	LastScore  float64
	Count      int
}

// Aggregate computes descriptive statistics over a score series ordered
// by ascending session time. Returns nil for an empty series — absence,
// not a zero-valued struct.
//
// The trend compares only the first and last score, not the shape of the
// series; a single-element series is trivially stable. Histories are
// bounded (tens of points per student), so full recomputation per call
// is the right trade-off — no memoization.
func Aggregate(scores []float64) *Stats {
	if len(scores) == 0 {
		return nil
	}

	first := scores[0]
	last := scores[len(scores)-1]

	sum := 0.0
	high := scores[0]
	low := scores[0]
	for _, s := range scores {
		sum += s
		if s > high {
			high = s
		}
		if s < low {
			low = s
		}
	}

	trend := TrendStable
	switch {
	case last > first:
		trend = TrendImproving
	case last < first:
		trend = TrendDeclining
	}

	return &Stats{
		Average:    sum / float64(len(scores)),
		High:       high,
		Low:        low,
		Trend:      trend,
		FirstScore: first,
		LastScore:  last,
		Count:      len(scores),
	}
}
