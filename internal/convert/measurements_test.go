package convert

import "testing"

func TestHeight(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "six eleven", input: "6-11", want: 83},
		{name: "seven foot even", input: "7-0", want: 84},
		{name: "five nine", input: "5-9", want: 69},
		{name: "twelve inches invalid", input: "6-12", wantErr: true},
		{name: "plain inches", input: "83", wantErr: true},
		{name: "garbage", input: "tall", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Height(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Height(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Height(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "bare number text", input: "220", want: 220},
		{name: "unit suffix", input: "220 lbs", want: 220},
		{name: "int passes through", input: 242, want: 242},
		{name: "integral float", input: float64(250), want: 250},
		{name: "no leading number", input: "heavy", wantErr: true},
		{name: "null", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Weight(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Weight(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Weight(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
