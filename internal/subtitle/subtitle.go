package subtitle

import (
	"time"

	"github.com/mgpai22/srtparse/internal/srt"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents complete subtitle track
type Subtitle struct {
	Entries  []Entry
	Language string
	Format   string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
)

// converts a parsed item to a host duration entry
func EntryFromItem(item srt.Item) Entry {
	return Entry{
		Index:     item.Index,
		StartTime: item.Start.Duration(),
		EndTime:   item.End.Duration(),
		Text:      item.Text,
	}
}
