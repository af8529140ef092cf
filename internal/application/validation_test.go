package application

import (
	"errors"
	"testing"

	"iris/internal/domain"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		start    string
		end      string
		wantBody domain.Body
		wantErr  error
	}{
		{
			name:     "valid",
			body:     "mars",
			start:    "2024-01-01 00:00:00",
			end:      "2024-01-02 00:00:00",
			wantBody: domain.Mars,
		},
		{
			name:    "bad start",
			body:    "Mars",
			start:   "01/01/2024",
			end:     "2024-01-02 00:00:00",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "bad end",
			body:    "Mars",
			start:   "2024-01-01 00:00:00",
			end:     "tomorrow",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "unsupported body",
			body:    "Pluto",
			start:   "2024-01-01 00:00:00",
			end:     "2024-01-02 00:00:00",
			wantErr: ErrUnsupportedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInput(tt.body, tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.Body != tt.wantBody {
				t.Errorf("expected %v, got %v", tt.wantBody, in.Body)
			}
			if !in.End.After(in.Start) {
				t.Errorf("expected end after start: %v %v", in.Start, in.End)
			}
		})
	}
}
