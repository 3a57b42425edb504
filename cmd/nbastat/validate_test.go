package main

import "testing"

func TestParseRangeSpecs(t *testing.T) {
	ranges, err := parseRangeSpecs([]string{"age:15:50", "plus_minus:-70:70"})
	if err != nil {
		t.Fatalf("parseRangeSpecs: %v", err)
	}
	if r := ranges["age"]; r.Min != 15 || r.Max != 50 {
		t.Errorf("age = %+v, want {15 50}", r)
	}
	if r := ranges["plus_minus"]; r.Min != -70 || r.Max != 70 {
		t.Errorf("plus_minus = %+v, want {-70 70}", r)
	}

	for _, spec := range []string{"age", "age:15", "age:low:50", "age:15:high"} {
		if _, err := parseRangeSpecs([]string{spec}); err == nil {
			t.Errorf("parseRangeSpecs(%q) should fail", spec)
		}
	}
}
