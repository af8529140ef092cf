package domain

import (
	"errors"
	"testing"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Body
		wantErr bool
	}{
		{name: "canonical", input: "Mars", want: Mars},
		{name: "lowercase", input: "jupiter", want: Jupiter},
		{name: "uppercase", input: "NEPTUNE", want: Neptune},
		{name: "mixed case with spaces", input: "  eArTh ", want: Earth},
		{name: "dwarf planet", input: "Pluto", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "moon", input: "Moon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBody(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var bodyErr *UnsupportedBodyError
				if !errors.As(err, &bodyErr) {
					t.Fatalf("expected UnsupportedBodyError, got %T", err)
				}
				if bodyErr.Name != tt.input {
					t.Errorf("expected name %q, got %q", tt.input, bodyErr.Name)
				}
				if !errors.Is(err, ErrUnsupportedBody) {
					t.Error("expected errors.Is(err, ErrUnsupportedBody)")
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseBody(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBodies(t *testing.T) {
	bodies := Bodies()
	if len(bodies) != 8 {
		t.Fatalf("expected 8 bodies, got %d", len(bodies))
	}
	if bodies[0] != Mercury || bodies[7] != Neptune {
		t.Errorf("expected solar order, got %v", bodies)
	}
	for _, b := range bodies {
		if !b.Valid() {
			t.Errorf("%v should be valid", b)
		}
		parsed, err := ParseBody(b.Slug())
		if err != nil || parsed != b {
			t.Errorf("slug %q did not round trip: %v, %v", b.Slug(), parsed, err)
		}
	}
}

func TestBody_String(t *testing.T) {
	if Saturn.String() != "Saturn" {
		t.Errorf("expected Saturn, got %s", Saturn)
	}
	if Body(42).String() != "Body(42)" {
		t.Errorf("unexpected name for invalid body: %s", Body(42))
	}
	if Body(42).Valid() || BodyUnknown.Valid() {
		t.Error("out-of-range bodies must not be valid")
	}
}
