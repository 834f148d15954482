// Package media pulls subtitle streams out of video containers with ffmpeg.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// defines interface for subtitle stream extraction
type Extractor interface {
	// returns the given subtitle stream converted to SRT text
	ExtractSRT(ctx context.Context, videoPath string, stream int) (string, error)
}

// default implementation using ffmpeg
type FFmpegExtractor struct {
	ffmpegPath string
}

func NewExtractor(ffmpegPath string) *FFmpegExtractor {
	return &FFmpegExtractor{
		ffmpegPath: ffmpegPath,
	}
}

// extracts subtitle stream number stream (0-based among subtitle streams)
func (e *FFmpegExtractor) ExtractSRT(
	ctx context.Context,
	videoPath string,
	stream int,
) (string, error) {
	if stream < 0 {
		return "", fmt.Errorf("invalid subtitle stream %d", stream)
	}
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", videoPath)
	}

	ffmpegPath := e.ffmpegPath
	if ffmpegPath == "" {
		var err error
		if ffmpegPath, err = FFmpegPath(); err != nil {
			return "", err
		}
	}

	var stdout, stderr bytes.Buffer
	err := extractStream(ctx, ffmpegPath, videoPath, stream).
		WithOutput(&stdout).
		WithErrorOutput(&stderr).
		Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("ffmpeg subtitle extraction: %w", ctxErr)
		}
		return "", fmt.Errorf(
			"ffmpeg subtitle extraction failed: %w: %s",
			err,
			lastLine(stderr.String()),
		)
	}

	return stdout.String(), nil
}

// builds the ffmpeg stream that writes one subtitle stream as SRT to
// stdout; ctx cancels the ffmpeg process
func extractStream(
	ctx context.Context,
	ffmpegPath, videoPath string,
	stream int,
) *ffmpeg.Stream {
	out := ffmpeg.Input(videoPath).
		Output("pipe:", ffmpeg.KwArgs{
			"map": fmt.Sprintf("0:s:%d", stream),
			"f":   "srt",
		})
	out.Context = ctx
	return out.SetFfmpegPath(ffmpegPath)
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
