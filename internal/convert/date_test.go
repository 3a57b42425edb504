package convert

import (
	"testing"
	"time"
)

var testLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "iso with time drops time of day",
			input: "1994-12-06T00:00:00",
			want:  time.Date(1994, 12, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso date",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "us slash format",
			input: "03/15/2024",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso wins over slash formats",
			input: "2024-01-02T18:30:00",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage fails",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty fails",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare year fails",
			input:   "2003",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input, testLayouts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Date(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateValue_PassesThroughDates(t *testing.T) {
	in := time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC)
	got, err := DateValue(in, testLayouts)
	if err != nil {
		t.Fatalf("DateValue() error = %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateValue() = %v, want %v", got, want)
	}
}

func TestDateValue_RejectsNonDates(t *testing.T) {
	if _, err := DateValue(42, testLayouts); err == nil {
		t.Error("DateValue(42) expected error, got nil")
	}
	if _, err := DateValue(nil, testLayouts); err == nil {
		t.Error("DateValue(nil) expected error, got nil")
	}
}
