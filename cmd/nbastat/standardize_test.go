package main

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path      string
		outputDir string
		want      string
	}{
		{"gamelog.json", "", "gamelog.std.json"},
		{filepath.Join("exports", "gamelog.json"), "", filepath.Join("exports", "gamelog.std.json")},
		{"roster.csv", "clean", filepath.Join("clean", "roster.csv")},
		{filepath.Join("exports", "roster.csv"), "clean", filepath.Join("clean", "roster.csv")},
	}
	for _, tt := range tests {
		if got := outputPath(tt.path, tt.outputDir); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.path, tt.outputDir, got, tt.want)
		}
	}
}

func TestBuildContext(t *testing.T) {
	ctx, err := buildContext("", false, "")
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}
	if ctx != nil {
		t.Errorf("no arguments should produce a nil context, got %+v", ctx)
	}

	ctx, err = buildContext("2023", true, "leaguedashplayerstats")
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}
	if ctx.Season != "2023-24" {
		t.Errorf("Season = %q, want 2023-24", ctx.Season)
	}
	if !ctx.Playoffs || ctx.Source != "leaguedashplayerstats" {
		t.Errorf("ctx = %+v", ctx)
	}

	if _, err := buildContext("not a season", false, ""); err == nil {
		t.Error("expected an error for a malformed season")
	}
}
