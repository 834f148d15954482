package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtparse/internal/srt"
)

// parsed subtitle file
type File interface {
	Format() Format
	Path() string
	Items() []srt.Item
	Subtitle() *Subtitle
}

func Open(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		f, err := parseSRTFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}
