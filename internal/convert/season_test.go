package convert

import (
	"testing"
	"time"
)

func TestSeasonLabel(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2023, "2023-24"},
		{1999, "1999-00"},
		{2009, "2009-10"},
	}
	for _, tt := range tests {
		if got := SeasonLabel(tt.year); got != tt.want {
			t.Errorf("SeasonLabel(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestCurrentSeasonYear(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "march belongs to prior year's season",
			now:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 2023,
		},
		{
			name: "october starts the new season",
			now:  time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
			want: 2024,
		},
		{
			name: "september is still last season",
			now:  time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			want: 2023,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSeasonYear(tt.now); got != tt.want {
				t.Errorf("CurrentSeasonYear(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestNormalizeSeason(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2024", want: "2024-25"},
		{input: "2023-24", want: "2023-24"},
		{input: "20232024", want: "2023-24"},
		{input: "20232025", wantErr: true},
		{input: "24", wantErr: true},
		{input: "next year", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalizeSeason(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("NormalizeSeason(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("NormalizeSeason(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
