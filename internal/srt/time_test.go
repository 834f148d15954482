package srt

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  Time
	}{
		{"00:00:00,000", Time{}},
		{"00:01:02,200", NewTime(0, 1, 2, 200)},
		{"01:53:06,162", NewTime(1, 53, 6, 162)},
		{"0:00:01,000", NewTime(0, 0, 1, 0)},
		{"123:00:00,001", NewTime(123, 0, 0, 1)},
		// out of conventional range but correct width
		{"00:75:99,999", NewTime(0, 75, 99, 999)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"x,x",
		"1,x",
		"00:00:00:00",
		"00:00:01.000",
		"00:00:01",
		"00:0:01,000",
		"00:00:1,000",
		"00:00:01,00",
		"00:00:01,0000",
		":00:01,000",
		"-1:00:01,000",
		"+1:00:01,000",
		"00:00:01,000,1",
		"00:a0:01,000",
		"00:00:01,000 ",
		"99999999999999999999999:00:00,000",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTime(input)
			if err == nil {
				t.Fatalf("ParseTime(%q) succeeded, want error", input)
			}
			if !errors.Is(err, ErrInvalidTime) {
				t.Errorf("expected ErrInvalidTime, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Text != input {
				t.Errorf("error text: got %q, want %q", perr.Text, input)
			}
			if perr.Line != 0 {
				t.Errorf("error line: got %d, want 0", perr.Line)
			}
		})
	}
}

func TestTimeRoundTrip(t *testing.T) {
	for _, h := range []uint64{0, 1, 9, 10, 99, 100, 1234} {
		for m := uint64(0); m <= 99; m += 11 {
			for s := uint64(0); s <= 99; s += 9 {
				for _, ms := range []uint64{0, 1, 9, 10, 99, 100, 500, 999} {
					want := NewTime(h, m, s, ms)
					got, err := ParseTime(want.String())
					if err != nil {
						t.Fatalf("ParseTime(%q) failed: %v", want.String(), err)
					}
					if got != want {
						t.Fatalf("round trip of %+v gave %+v", want, got)
					}
				}
			}
		}
	}
}

func TestTimeOrdering(t *testing.T) {
	tests := []struct {
		a, b Time
		want int
	}{
		{NewTime(0, 0, 1, 0), NewTime(0, 0, 0, 999), 1},
		{NewTime(1, 0, 0, 0), NewTime(0, 59, 59, 999), 1},
		{NewTime(0, 0, 0, 999), NewTime(0, 0, 1, 0), -1},
		{NewTime(0, 1, 0, 0), NewTime(0, 0, 60, 0), 0},
		{NewTime(2, 3, 4, 5), NewTime(2, 3, 4, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+" vs "+tt.b.String(), func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if tt.want > 0 && !tt.a.After(tt.b) {
				t.Error("After = false, want true")
			}
			if tt.want < 0 && !tt.a.Before(tt.b) {
				t.Error("Before = false, want true")
			}
			if tt.want == 0 && !tt.a.Equal(tt.b) {
				t.Error("Equal = false, want true")
			}
		})
	}
}

func TestTimeDuration(t *testing.T) {
	tm := NewTime(0, 1, 2, 200)
	if got := tm.TotalMilliseconds(); got != 62200 {
		t.Errorf("TotalMilliseconds = %d, want 62200", got)
	}
	if got := tm.Duration(); got != 62200*time.Millisecond {
		t.Errorf("Duration = %v, want 1m2.2s", got)
	}

	back := TimeFromDuration(6_801_628 * time.Millisecond)
	if want := NewTime(1, 53, 21, 628); back != want {
		t.Errorf("TimeFromDuration = %+v, want %+v", back, want)
	}
	if got := TimeFromDuration(-time.Second); got != (Time{}) {
		t.Errorf("negative duration: got %+v, want zero", got)
	}
}

func TestTimeString(t *testing.T) {
	if got := NewTime(0, 1, 2, 7).String(); got != "00:01:02,007" {
		t.Errorf("String = %q, want %q", got, "00:01:02,007")
	}
}

func TestTimeLargeHours(t *testing.T) {
	const maxHours = 5124095576030

	if _, err := ParseTime("5124095576030:00:00,000"); err != nil {
		t.Errorf("largest representable hours rejected: %v", err)
	}
	_, err := ParseTime("5124095576031:00:00,000")
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for overflowing hours, got %v", err)
	}

	huge := NewTime(maxHours+1, 0, 0, 0)
	if !huge.After(NewTime(1, 0, 0, 0)) {
		t.Error("huge time should sort after 01:00:00,000")
	}
	if !NewTime(math.MaxUint64, 0, 0, 0).After(NewTime(maxHours, 59, 59, 999)) {
		t.Error("ordering must not wrap for large field values")
	}
	if got := huge.TotalMilliseconds(); got != math.MaxUint64 {
		t.Errorf("TotalMilliseconds = %d, want saturation", got)
	}
}

func TestTimeDurationSaturates(t *testing.T) {
	if got := NewTime(2562047, 0, 0, 0).Duration(); got != 2562047*time.Hour {
		t.Errorf("Duration = %v, want %v", got, 2562047*time.Hour)
	}
	for _, h := range []uint64{2562048, 5124095576030} {
		if got := NewTime(h, 0, 0, 0).Duration(); got != time.Duration(math.MaxInt64) {
			t.Errorf("hours %d: Duration = %d, want saturation at MaxInt64", h, got)
		}
	}
}
