package media

import (
	"errors"
	"os"
	"os/exec"
	"sync"
)

const ffmpegPathEnv = "SRTPARSE_FFMPEG_PATH"

var ErrFFmpegNotFound = errors.New(
	"ffmpeg not found: install it or set " + ffmpegPathEnv,
)

var (
	locateOnce sync.Once
	locatePath string
	locateErr  error
)

// FFmpegPath resolves the ffmpeg binary once per process, preferring the
// environment override over PATH.
func FFmpegPath() (string, error) {
	locateOnce.Do(func() {
		locatePath, locateErr = locate(os.Getenv(ffmpegPathEnv), exec.LookPath)
	})
	return locatePath, locateErr
}

func locate(override string, lookPath func(string) (string, error)) (string, error) {
	if override != "" {
		if !fileExists(override) {
			return "", errors.New(ffmpegPathEnv + " points to a missing file: " + override)
		}
		return override, nil
	}
	found, err := lookPath("ffmpeg")
	if err != nil {
		return "", ErrFFmpegNotFound
	}
	return found, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
