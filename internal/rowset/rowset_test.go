package rowset

import (
	"math"
	"testing"
)

func TestValueFloatCoercion(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"number", Number(42.5), 42.5, true},
		{"numeric string", String("17.25"), 17.25, true},
		{"padded numeric string", String("  8 "), 8, true},
		{"free text", String("n/a"), 0, false},
		{"empty string", String(""), 0, false},
		{"null", Null(), 0, false},
		{"bool", Bool(true), 0, false},
		{"nan", Number(math.NaN()), 0, false},
		{"infinity", Number(math.Inf(1)), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.value.Float()
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s: Float() = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValueText(t *testing.T) {
	if got := Number(46.5).Text(); got != "46.5" {
		t.Fatalf("Number.Text() = %q", got)
	}
	if got := String("Email").Text(); got != "Email" {
		t.Fatalf("String.Text() = %q", got)
	}
	if got := Null().Text(); got != "" {
		t.Fatalf("Null.Text() = %q", got)
	}
	if got := Bool(true).Text(); got != "true" {
		t.Fatalf("Bool.Text() = %q", got)
	}
}

func TestFloatsExcludesNonNumeric(t *testing.T) {
	rs := RowSet{
		Columns: []string{"roi"},
		Rows: []Row{
			{"roi": Number(80)},
			{"roi": String("broken")},
			{"roi": Null()},
			{"roi": String("20")},
		},
	}
	got := rs.Floats("roi")
	if len(got) != 2 || got[0] != 80 || got[1] != 20 {
		t.Fatalf("Floats() = %v, want [80 20]", got)
	}
}

func TestFloatsMissingColumn(t *testing.T) {
	rs := RowSet{Columns: []string{"roi"}, Rows: []Row{{"roi": Number(1)}}}
	if got := rs.Floats("missing"); len(got) != 0 {
		t.Fatalf("Floats(missing) = %v, want empty", got)
	}
}

func TestFirstNumericColumnHonorsColumnOrder(t *testing.T) {
	rs := RowSet{
		Columns: []string{"campaign_type", "spend", "clicks"},
		Rows: []Row{
			{"campaign_type": String("Email"), "spend": String("10.5"), "clicks": Number(3)},
			{"campaign_type": String("Social"), "spend": Number(12), "clicks": Number(9)},
		},
	}
	column, ok := rs.FirstNumericColumn()
	if !ok || column != "spend" {
		t.Fatalf("FirstNumericColumn() = (%q, %v), want (spend, true)", column, ok)
	}
}

func TestFirstNumericColumnRejectsMixedColumn(t *testing.T) {
	rs := RowSet{
		Columns: []string{"spend"},
		Rows: []Row{
			{"spend": Number(10)},
			{"spend": String("unknown")},
		},
	}
	if _, ok := rs.FirstNumericColumn(); ok {
		t.Fatal("expected no numeric column when one row fails to coerce")
	}
}

func TestFirstNumericColumnEmptyRowSet(t *testing.T) {
	rs := RowSet{Columns: []string{"roi"}}
	if _, ok := rs.FirstNumericColumn(); ok {
		t.Fatal("expected no numeric column for empty row set")
	}
}
