package convert

import "testing"

func TestID(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{
			name:  "int padded to ten digits",
			input: 203507,
			want:  "0000203507",
		},
		{
			name:  "int64 padded",
			input: int64(2544),
			want:  "0000002544",
		},
		{
			name:  "integral float from json",
			input: float64(1610612749),
			want:  "1610612749",
		},
		{
			name:  "ten digit string passes through",
			input: "1610612749",
			want:  "1610612749",
		},
		{
			name:  "short digit string padded",
			input: "42",
			want:  "0000000042",
		},
		{
			name:  "longer than ten digits never truncated",
			input: "123456789012",
			want:  "123456789012",
		},
		{
			name:    "null fails",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "non-numeric string fails",
			input:   "LeBron",
			wantErr: true,
		},
		{
			name:    "fractional float fails",
			input:   203507.5,
			wantErr: true,
		},
		{
			name:    "negative fails",
			input:   -1,
			wantErr: true,
		},
		{
			name:    "empty string fails",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ID(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ID(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
