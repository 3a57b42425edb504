package convert

import "testing"

func TestMinutesSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "double digit minutes", input: "12:30", want: 750},
		{name: "single digit minutes", input: "7:05", want: 425},
		{name: "zero minutes", input: "0:45", want: 45},
		{name: "triple digit total minutes", input: "240:00", want: 14400},
		{name: "seconds over fifty nine", input: "12:75", wantErr: true},
		{name: "missing seconds digit", input: "12:3", wantErr: true},
		{name: "plain number", input: "750", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinutesSeconds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MinutesSeconds(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MinutesSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole seconds", input: "PT11M23S", want: 683},
		{name: "fractional seconds truncated", input: "PT11M23.70S", want: 683},
		{name: "zero minutes", input: "PT0M59.9S", want: 59},
		{name: "full period", input: "PT12M00S", want: 720},
		{name: "missing prefix", input: "11M23S", wantErr: true},
		{name: "minutes seconds text", input: "11:23", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Clock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Clock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
