package srt

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const arrow = "-->"

// Item is one parsed subtitle.
type Item struct {
	// sequence number as written in the source
	Index int
	Start Time
	End   Time
	// body lines joined with "\n"
	Text string
}

type blockState int

const (
	stateIndex blockState = iota
	stateTimeRange
	stateText
)

// ParseBlock turns one block into an Item, walking its lines in order:
// index, time range, then text. No partial Item is returned on failure.
func ParseBlock(b Block) (Item, error) {
	if len(b.Lines) < 2 {
		e := newError(InvalidBlock, b.Line, strings.Join(b.Lines, "\n"))
		e.Count = len(b.Lines)
		return Item{}, e
	}

	var (
		item  Item
		text  []string
		state = stateIndex
	)
	for i, line := range b.Lines {
		lineNum := b.Line + i
		switch state {
		case stateIndex:
			index, err := parseIndex(line, lineNum)
			if err != nil {
				return Item{}, err
			}
			item.Index = index
			state = stateTimeRange
		case stateTimeRange:
			start, end, err := parseTimeRange(line, lineNum)
			if err != nil {
				return Item{}, err
			}
			item.Start, item.End = start, end
			state = stateText
		case stateText:
			text = append(text, line)
		}
	}

	if len(text) == 0 {
		return Item{}, newError(MissingText, b.Line+1, b.Lines[1])
	}
	item.Text = strings.TrimSpace(strings.Join(text, "\n"))
	return item, nil
}

func parseIndex(line string, lineNum int) (int, error) {
	s := strings.TrimSpace(line)
	if !isDigits(s) {
		return 0, newError(InvalidIndex, lineNum, line)
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		e := newError(InvalidIndex, lineNum, line)
		e.Err = err
		return 0, e
	}
	return index, nil
}

// parseTimeRange splits "<start> --> <end>". The arrow needs whitespace on
// both sides; extra spacing is fine.
func parseTimeRange(line string, lineNum int) (Time, Time, error) {
	parts := strings.Split(strings.TrimSpace(line), arrow)
	if len(parts) != 2 {
		return Time{}, Time{}, newError(InvalidTimeRange, lineNum, line)
	}
	left, right := parts[0], parts[1]
	if !endsWithSpace(left) || !startsWithSpace(right) {
		return Time{}, Time{}, newError(InvalidTimeRange, lineNum, line)
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if left == "" || right == "" {
		return Time{}, Time{}, newError(InvalidTimeRange, lineNum, line)
	}

	start, err := parseTime(left, lineNum)
	if err != nil {
		return Time{}, Time{}, err
	}
	end, err := parseTime(right, lineNum)
	if err != nil {
		return Time{}, Time{}, err
	}
	return start, end, nil
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
