package srt

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// Time is a point in subtitle playback time with millisecond resolution.
//
// Fields are kept exactly as written in the source; minutes or seconds
// above 59 are not normalised.
type Time struct {
	Hours        uint64
	Minutes      uint64
	Seconds      uint64
	Milliseconds uint64
}

func NewTime(hours, minutes, seconds, milliseconds uint64) Time {
	return Time{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: milliseconds,
	}
}

// TimeFromDuration splits a duration into normalised fields.
// Negative durations clamp to zero.
func TimeFromDuration(d time.Duration) Time {
	if d < 0 {
		d = 0
	}
	ms := uint64(d / time.Millisecond)
	return Time{
		Hours:        ms / 3_600_000,
		Minutes:      ms / 60_000 % 60,
		Seconds:      ms / 1000 % 60,
		Milliseconds: ms % 1000,
	}
}

// TotalMilliseconds collapses the fields into a single count. It
// saturates at math.MaxUint64; ParseTime never produces such a Time.
func (t Time) TotalMilliseconds() uint64 {
	hi, lo := t.total()
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// Duration saturates at the largest time.Duration.
func (t Time) Duration() time.Duration {
	ms := t.TotalMilliseconds()
	if ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

// Compare returns -1, 0 or +1 ordering t against u by total milliseconds.
// The comparison is exact for any field values.
func (t Time) Compare(u Time) int {
	thi, tlo := t.total()
	uhi, ulo := u.total()
	if c := cmp.Compare(thi, uhi); c != 0 {
		return c
	}
	return cmp.Compare(tlo, ulo)
}

// total is the millisecond count as a 128-bit hi:lo pair.
func (t Time) total() (hi, lo uint64) {
	parts := [...][2]uint64{
		{t.Hours, 3_600_000},
		{t.Minutes, 60_000},
		{t.Seconds, 1000},
		{t.Milliseconds, 1},
	}
	for _, p := range parts {
		phi, plo := bits.Mul64(p[0], p[1])
		var carry uint64
		lo, carry = bits.Add64(lo, plo, 0)
		hi, _ = bits.Add64(hi, phi, carry)
	}
	return hi, lo
}

func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }
func (t Time) After(u Time) bool  { return t.Compare(u) > 0 }
func (t Time) Equal(u Time) bool  { return t.Compare(u) == 0 }

// String formats t as an SRT timecode, e.g. 00:01:02,200.
func (t Time) String() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d,%03d",
		t.Hours,
		t.Minutes,
		t.Seconds,
		t.Milliseconds,
	)
}

// ParseTime parses a trimmed HH:MM:SS,mmm timecode. HH takes one or more
// digits, MM and SS exactly two and mmm exactly three.
func ParseTime(s string) (Time, error) {
	return parseTime(s, 0)
}

func parseTime(s string, line int) (Time, error) {
	fail := func(err error) (Time, error) {
		e := newError(InvalidTime, line, s)
		e.Err = err
		return Time{}, e
	}

	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return fail(fmt.Errorf("expected 3 ':' separated fields, got %d", len(fields)))
	}
	secFields := strings.Split(fields[2], ",")
	if len(secFields) != 2 {
		return fail(errors.New("expected seconds and milliseconds separated by ','"))
	}

	hours, err := parseField("hours", fields[0], 0)
	if err != nil {
		return fail(err)
	}
	minutes, err := parseField("minutes", fields[1], 2)
	if err != nil {
		return fail(err)
	}
	seconds, err := parseField("seconds", secFields[0], 2)
	if err != nil {
		return fail(err)
	}
	millis, err := parseField("milliseconds", secFields[1], 3)
	if err != nil {
		return fail(err)
	}

	t := NewTime(hours, minutes, seconds, millis)
	if hi, _ := t.total(); hi != 0 {
		return fail(errors.New("time exceeds the millisecond range"))
	}
	return t, nil
}

// parseField reads an unsigned decimal field. width 0 means any number of
// digits, at least one.
func parseField(name, s string, width int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s: empty", name)
	}
	if !isDigits(s) {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	if width > 0 && len(s) != width {
		return 0, fmt.Errorf("%s: want %d digits, got %d", name, width, len(s))
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
