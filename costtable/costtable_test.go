package costtable

import "testing"

func TestBuilderSetAndAt(t *testing.T) {
	b := NewBuilder(3)
	if err := b.Set(0, 0, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := b.Build()

	if p := table.At(0, 0, 1); !p.OK || p.Value != 10 {
		t.Errorf("At(0,0,1) = %+v, want OK value 10", p)
	}
	if p := table.At(0, 1, 0); p.OK {
		t.Errorf("At(0,1,0) = %+v, want Absent", p)
	}
}

func TestBuilderRejectsOutOfRange(t *testing.T) {
	b := NewBuilder(2)
	if err := b.Set(5, 0, 1, 10); err == nil {
		t.Error("expected error for out-of-range day, got nil")
	}
	if err := b.Set(0, 2, 0, 10); err == nil {
		t.Error("expected error for out-of-range from-city, got nil")
	}
	if err := b.Set(0, 0, 1, 0); err == nil {
		t.Error("expected error for non-positive cost, got nil")
	}
}

func TestNumCities(t *testing.T) {
	b := NewBuilder(7)
	table := b.Build()
	if table.NumCities() != 7 {
		t.Errorf("NumCities() = %d, want 7", table.NumCities())
	}
}
