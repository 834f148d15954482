package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestExtractStream(t *testing.T) {
	cmd := extractStream(context.Background(), "/opt/ffmpeg", "movie.mkv", 2).Compile()
	if cmd.Path != "/opt/ffmpeg" {
		t.Errorf("expected ffmpeg path /opt/ffmpeg, got %s", cmd.Path)
	}
	args := cmd.Args[1:]

	pairs := [][2]string{
		{"-i", "movie.mkv"},
		{"-map", "0:s:2"},
		{"-f", "srt"},
	}
	for _, p := range pairs {
		i := slices.Index(args, p[0])
		if i < 0 || i+1 >= len(args) || args[i+1] != p[1] {
			t.Errorf("expected %s %s in %v", p[0], p[1], args)
		}
	}
	if args[len(args)-1] != "pipe:" {
		t.Errorf("expected output pipe: last, got %v", args)
	}
}

func TestExtractSRTValidation(t *testing.T) {
	e := NewExtractor("/nonexistent/ffmpeg")
	ctx := context.Background()

	if _, err := e.ExtractSRT(ctx, "whatever.mkv", -1); err == nil {
		t.Error("expected error for negative stream")
	}

	_, err := e.ExtractSRT(ctx, filepath.Join(t.TempDir(), "missing.mkv"), 0)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}

	noLookup := func(string) (string, error) {
		return "", errors.New("not in PATH")
	}
	fromPath := func(string) (string, error) {
		return "/usr/bin/ffmpeg", nil
	}

	tests := []struct {
		name     string
		override string
		lookPath func(string) (string, error)
		want     string
		wantErr  bool
	}{
		{"override", bin, noLookup, bin, false},
		{"missing override", filepath.Join(dir, "nope"), fromPath, "", true},
		{"path lookup", "", fromPath, "/usr/bin/ffmpeg", false},
		{"not found", "", noLookup, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locate(tt.override, tt.lookPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("locate error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("locate = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := locate("", noLookup); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestLastLine(t *testing.T) {
	if got := lastLine("a\nb\nStream map '0:s:3' matches no streams.\n"); got != "Stream map '0:s:3' matches no streams." {
		t.Errorf("lastLine = %q", got)
	}
}
