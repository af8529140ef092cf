package application

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0,00"},
		{1.005, "1,00"},
		{999.999, "1.000,00"},
		{1234.5, "1.234,50"},
		{78340012.3456, "78.340.012,35"},
		{-12.5, "-12,50"},
		{-1234567.891, "-1.234.567,89"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	got := FormatResult(Result{DistanceKm: 225000000, VelocityKmS: -3.25})
	want := "Distance: 225.000.000,00 km\nVelocity: -3,25 km/s"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
