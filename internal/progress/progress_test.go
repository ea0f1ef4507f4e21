package progress

import (
	"reflect"
	"testing"
)

func TestAggregate_Empty(t *testing.T) {
	if got := Aggregate(nil); got != nil {
		t.Errorf("Aggregate(nil) = %+v, want nil", got)
	}
	if got := Aggregate([]float64{}); got != nil {
		t.Errorf("Aggregate([]) = %+v, want nil", got)
	}
}

func TestAggregate_SingleScore(t *testing.T) {
	got := Aggregate([]float64{72})
	if got == nil {
		t.Fatal("expected stats for a single score")
	}
	if got.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable", got.Trend)
	}
	if got.Average != 72 || got.High != 72 || got.Low != 72 {
		t.Errorf("average/high/low = %v/%v/%v, want 72 each", got.Average, got.High, got.Low)
	}
	if got.FirstScore != 72 || got.LastScore != 72 {
		t.Errorf("first/last = %v/%v, want 72 each", got.FirstScore, got.LastScore)
	}
}

func TestAggregate_Improving(t *testing.T) {
	got := Aggregate([]float64{60, 75, 90})
	if got == nil {
		t.Fatal("expected stats")
	}
	if got.Average != 75 {
		t.Errorf("Average = %v, want 75", got.Average)
	}
	if got.High != 90 {
		t.Errorf("High = %v, want 90", got.High)
	}
	if got.Low != 60 {
		t.Errorf("Low = %v, want 60", got.Low)
	}
	if got.Trend != TrendImproving {
		t.Errorf("Trend = %q, want improving", got.Trend)
	}
}

func TestAggregate_Declining(t *testing.T) {
	got := Aggregate([]float64{80, 40})
	if got == nil {
		t.Fatal("expected stats")
	}
	if got.Trend != TrendDeclining {
		t.Errorf("Trend = %q, want declining", got.Trend)
	}
	if got.FirstScore != 80 || got.LastScore != 40 {
		t.Errorf("first/last = %v/%v", got.FirstScore, got.LastScore)
	}
}

func TestAggregate_TrendIgnoresSeriesShape(t *testing.T) {
	// A dip in the middle does not affect the endpoint-only trend.
	got := Aggregate([]float64{50, 10, 95, 50})
	if got.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable (first == last)", got.Trend)
	}
	if got.High != 95 || got.Low != 10 {
		t.Errorf("high/low = %v/%v, want 95/10", got.High, got.Low)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	scores := []float64{60, 75, 90, 85}
	a := Aggregate(scores)
	b := Aggregate(scores)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", a, b)
	}
}
