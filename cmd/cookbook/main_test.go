package main

import (
	"testing"

	"github.com/kailas-cloud/cookbook/internal/config"
)

func TestBuildSource(t *testing.T) {
	tests := []struct {
		cfg      config.SourceConfig
		wantName string
		wantErr  bool
	}{
		{config.SourceConfig{Kind: config.SourceEmbedded}, "embedded", false},
		{config.SourceConfig{Kind: config.SourceFile, Path: "data/recipes.json"}, "file:data/recipes.json", false},
		{config.SourceConfig{Kind: config.SourceURL, URL: "https://x.test/r.json"}, "url:https://x.test/r.json", false},
		{config.SourceConfig{Kind: "ftp"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.Kind, func(t *testing.T) {
			src, err := buildSource(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", src.Name(), tt.wantName)
			}
		})
	}
}
