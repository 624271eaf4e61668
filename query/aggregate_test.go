package query

import (
	"errors"
	"math"
	"testing"
)

func TestParseAggregate(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantColumn string
		wantFunc   AggregateFunc
	}{
		{"avg", "price=avg", "price", AggAvg},
		{"min", "rating=min", "rating", AggMin},
		{"max", "price=max", "price", AggMax},
		{"case insensitive", "price=AVG", "price", AggAvg},
		{"whitespace trimmed", " price = avg ", "price", AggAvg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAggregate(tt.expr)
			if err != nil {
				t.Fatalf("ParseAggregate(%q) error = %v", tt.expr, err)
			}
			if got.Column != tt.wantColumn || got.Func != tt.wantFunc {
				t.Errorf("ParseAggregate(%q) = %+v, want {%s %v}", tt.expr, got, tt.wantColumn, tt.wantFunc)
			}
		})
	}
}

func TestParseAggregate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"unknown function", "price=bogus", ErrUnknownFunction},
		{"sum unsupported", "price=sum", ErrUnknownFunction},
		{"no separator", "price", ErrMalformedAggregation},
		{"empty column", "=avg", ErrMalformedAggregation},
		{"empty function", "price=", ErrMalformedAggregation},
		{"empty", "", ErrMalformedAggregation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAggregate(tt.expr)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseAggregate(%q) error = %v, want %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestAggregate_Average(t *testing.T) {
	rows := productRows()

	got, err := Aggregate(rows, AggregateSpec{Column: "price", Func: AggAvg})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got != 674.0 {
		t.Errorf("Aggregate(avg price) = %v, want 674.0", got)
	}
}

func TestAggregate_Minimum(t *testing.T) {
	rows := productRows()

	got, err := Aggregate(rows, AggregateSpec{Column: "rating", Func: AggMin})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got != 4.4 {
		t.Errorf("Aggregate(min rating) = %v, want 4.4", got)
	}
}

func TestAggregate_Maximum(t *testing.T) {
	rows := productRows()

	got, err := Aggregate(rows, AggregateSpec{Column: "price", Func: AggMax})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got != 1199.0 {
		t.Errorf("Aggregate(max price) = %v, want 1199.0", got)
	}
}

func TestAggregate_MinAvgMaxOrdering(t *testing.T) {
	// minimum <= average <= maximum whenever at least one numeric value
	// exists.
	for _, column := range []string{"price", "rating"} {
		rows := productRows()

		minVal, err := Aggregate(rows, AggregateSpec{Column: column, Func: AggMin})
		if err != nil {
			t.Fatalf("min %s: %v", column, err)
		}
		avgVal, err := Aggregate(rows, AggregateSpec{Column: column, Func: AggAvg})
		if err != nil {
			t.Fatalf("avg %s: %v", column, err)
		}
		maxVal, err := Aggregate(rows, AggregateSpec{Column: column, Func: AggMax})
		if err != nil {
			t.Fatalf("max %s: %v", column, err)
		}

		if minVal > avgVal || avgVal > maxVal {
			t.Errorf("column %s: want min <= avg <= max, got %v, %v, %v", column, minVal, avgVal, maxVal)
		}
	}
}

func TestAggregate_SkipsNonNumericCells(t *testing.T) {
	rows := []map[string]interface{}{
		{"price": float64(100)},
		{"price": "n/a"},
		{"price": float64(300)},
	}

	got, err := Aggregate(rows, AggregateSpec{Column: "price", Func: AggAvg})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got != 200.0 {
		t.Errorf("Aggregate(avg price) = %v, want 200.0 (non-numeric skipped)", got)
	}
}

func TestAggregate_MissingColumn(t *testing.T) {
	rows := productRows()

	_, err := Aggregate(rows, AggregateSpec{Column: "weight", Func: AggAvg})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Aggregate() error = %v, want ErrMissingColumn", err)
	}
}

func TestAggregate_EmptyRowSet(t *testing.T) {
	_, err := Aggregate(nil, AggregateSpec{Column: "price", Func: AggAvg})
	if !errors.Is(err, ErrEmptyAggregation) {
		t.Errorf("Aggregate() error = %v, want ErrEmptyAggregation", err)
	}
}

func TestAggregate_NoNumericValues(t *testing.T) {
	rows := []map[string]interface{}{
		{"price": "n/a"},
		{"price": "unknown"},
	}

	_, err := Aggregate(rows, AggregateSpec{Column: "price", Func: AggMin})
	if !errors.Is(err, ErrEmptyAggregation) {
		t.Errorf("Aggregate() error = %v, want ErrEmptyAggregation", err)
	}
}

func TestAggregate_DoesNotReturnNaN(t *testing.T) {
	rows := productRows()

	got, err := Aggregate(rows, AggregateSpec{Column: "rating", Func: AggAvg})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if math.IsNaN(got) {
		t.Error("Aggregate() returned NaN")
	}
}
