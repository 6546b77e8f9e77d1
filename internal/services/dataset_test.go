package services

import (
	"context"
	"os"
	"slices"
	"testing"
)

func createTempCSV(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "test*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}

func TestGenerateOrders_Deterministic(t *testing.T) {
	start, end := DefaultDateRange()

	a := GenerateOrders(DefaultSeed, 500, start, end)
	b := GenerateOrders(DefaultSeed, 500, start, end)

	if len(a) != 500 || len(b) != 500 {
		t.Fatalf("expected 500 rows, got %d and %d", len(a), len(b))
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between runs with the same seed", i)
		}
	}

	c := GenerateOrders(DefaultSeed+1, 500, start, end)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different datasets")
	}
}

func TestGenerateOrders_ValueRanges(t *testing.T) {
	start, end := DefaultDateRange()
	orders := GenerateOrders(DefaultSeed, 1000, start, end)

	for i, o := range orders {
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			t.Fatalf("row %d: date %v outside [%v, %v]", i, o.OrderDate, start, end)
		}
		if o.Sales < 10 || o.Sales > 5000 {
			t.Fatalf("row %d: sales %f outside [10, 5000]", i, o.Sales)
		}
		if o.Quantity < 1 || o.Quantity > 9 {
			t.Fatalf("row %d: quantity %d outside [1, 9]", i, o.Quantity)
		}
		if o.Profit < -1000 || o.Profit > 2000 {
			t.Fatalf("row %d: profit %f outside [-1000, 2000]", i, o.Profit)
		}
		if !slices.Contains(categoryPool, o.Category) {
			t.Fatalf("row %d: unknown category %q", i, o.Category)
		}
		if !slices.Contains(segmentPool, o.Segment) {
			t.Fatalf("row %d: unknown segment %q", i, o.Segment)
		}
		if !slices.Contains(discountPool, o.Discount) {
			t.Fatalf("row %d: unknown discount %f", i, o.Discount)
		}
		if o.Year != o.OrderDate.Year() || o.Month != int(o.OrderDate.Month()) {
			t.Fatalf("row %d: derived year/month mismatch", i)
		}
	}
}

func TestGenerateOrders_DerivedMargin(t *testing.T) {
	start, end := DefaultDateRange()
	orders := GenerateOrders(DefaultSeed, 100, start, end)

	for i, o := range orders {
		want := round2(o.Profit / o.Sales * 100)
		if o.ProfitMargin != want {
			t.Fatalf("row %d: margin %f, want %f", i, o.ProfitMargin, want)
		}
	}
}

func TestAnalytics_LoadFromCSV_ValidData(t *testing.T) {
	validCSV := `Order_Date,Category,Sub_Category,Segment,State,City,Sales,Quantity,Discount,Profit,Ship_Mode,Year,Month,Profit_Margin
2015-03-10,Furniture,Chairs,Consumer,California,Los Angeles,100,2,0.1,20,Standard Class,2015,3,20.00
2016-07-04,Technology,Phones,Corporate,Texas,Houston,200,1,0.2,-40,Second Class,2016,7,-20.00`

	f := createTempCSV(t, validCSV)

	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("LoadFromCSV() with valid data should not error, got: %v", err)
	}

	orders := a.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	o := orders[0]
	if o.Category != "Furniture" || o.Sales != 100 || o.Quantity != 2 {
		t.Errorf("first order parsed incorrectly: %+v", o)
	}
	if o.Year != 2015 || o.Month != 3 || o.ProfitMargin != 20 {
		t.Errorf("derived fields not recomputed: %+v", o)
	}
}

func TestAnalytics_LoadFromCSV_SkipsInvalidRows(t *testing.T) {
	csv := `Order_Date,Category,Sub_Category,Segment,State,City,Sales,Quantity,Discount,Profit,Ship_Mode
2015-03-10,Furniture,Chairs,Consumer,California,Los Angeles,100,2,0.1,20,Standard Class
not-a-date,Furniture,Chairs,Consumer,California,Los Angeles,100,2,0.1,20,Standard Class
2015-03-11,Furniture,Chairs,Consumer,California,Los Angeles,bad,2,0.1,20,Standard Class`

	f := createTempCSV(t, csv)

	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), f); err != nil {
		t.Fatalf("LoadFromCSV() should tolerate bad rows, got: %v", err)
	}

	if got := len(a.Orders()); got != 1 {
		t.Errorf("expected 1 valid order, got %d", got)
	}
}

func TestAnalytics_LoadFromCSV_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty file", ""},
		{"header only", "Order_Date,Category,Sub_Category,Segment,State,City,Sales,Quantity,Discount,Profit,Ship_Mode"},
		{"no valid rows", "Order_Date,Category,Sub_Category,Segment,State,City,Sales,Quantity,Discount,Profit,Ship_Mode\nbad,row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTempCSV(t, tt.csv)

			a := NewAnalytics()
			if err := a.LoadFromCSV(context.Background(), f); err == nil {
				t.Error("LoadFromCSV() should error")
			}
		})
	}
}

func TestAnalytics_LoadFromCSV_MissingFile(t *testing.T) {
	a := NewAnalytics()
	if err := a.LoadFromCSV(context.Background(), "does-not-exist.csv"); err == nil {
		t.Error("LoadFromCSV() should error for a missing file")
	}
}

func TestAnalytics_Stats(t *testing.T) {
	a := newTestAnalytics()
	stats := a.Stats()

	if stats["record_count"] != 3 {
		t.Errorf("record_count = %v, want 3", stats["record_count"])
	}
	if stats["categories"] != 3 {
		t.Errorf("categories = %v, want 3", stats["categories"])
	}
	if stats["states"] != 3 {
		t.Errorf("states = %v, want 3", stats["states"])
	}
}
