package subtitle

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgpai22/srtparse/internal/srt"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type SRTFile struct {
	path  string
	items []srt.Item
}

// reads SRT text from r. A UTF-8 or UTF-16 byte order mark selects the
// decoding and is dropped; without one the input is taken as UTF-8.
func Read(r io.Reader) (*SRTFile, error) {
	text, err := decode(r)
	if err != nil {
		return nil, &ReadError{Op: "decode", Err: err}
	}
	return parseSRT(text, "")
}

// same as Read for text already in memory, so a leading BOM is dropped
func ReadString(s string) (*SRTFile, error) {
	return Read(strings.NewReader(s))
}

func parseSRTFile(path string) (*SRTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	text, err := decode(file)
	if err != nil {
		return nil, &ReadError{Op: "read", Path: path, Err: err}
	}
	return parseSRT(text, path)
}

func parseSRT(text, path string) (*SRTFile, error) {
	items, err := srt.Parse(text)
	if err != nil {
		return nil, &ReadError{Op: "parse", Path: path, Err: err}
	}
	return &SRTFile{path: path, items: items}, nil
}

func decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *SRTFile) Format() Format {
	return FormatSRT
}

func (f *SRTFile) Path() string {
	return f.path
}

func (f *SRTFile) Items() []srt.Item {
	return f.items
}

func (f *SRTFile) Subtitle() *Subtitle {
	entries := make([]Entry, 0, len(f.items))
	for _, item := range f.items {
		entries = append(entries, EntryFromItem(item))
	}
	return &Subtitle{
		Entries: entries,
		Format:  string(FormatSRT),
	}
}

// ReadError separates I/O failures from malformed content. For Op "parse"
// Err is a *srt.ParseError.
type ReadError struct {
	Op   string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	var what string
	switch e.Op {
	case "open":
		what = "could not open file"
	case "parse":
		what = "parse error"
	default:
		what = "could not " + e.Op + " input"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", what, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", what, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
