package utils

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	got := Today(time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local))
	if got != "2026-03-14" {
		t.Errorf("Today() = %q, want 2026-03-14", got)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		timeStr string
		want    int
		wantErr bool
	}{
		{timeStr: "00:00", want: 0},
		{timeStr: "09:00", want: 540},
		{timeStr: "21:00", want: 1260},
		{timeStr: "23:59", want: 1439},
		{timeStr: "24:00", wantErr: true},
		{timeStr: "9am", wantErr: true},
		{timeStr: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.timeStr)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q) expected error", tt.timeStr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q) unexpected error: %v", tt.timeStr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.timeStr, got, tt.want)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	t.Run("names and abbreviations", func(t *testing.T) {
		got, err := ParseWeekdays("mon, Wednesday, FRI")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got %v, want %v", got, want)
				break
			}
		}
	})

	t.Run("numeric form", func(t *testing.T) {
		got, err := ParseWeekdays("0,6")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != time.Sunday || got[1] != time.Saturday {
			t.Errorf("got %v, want [Sunday Saturday]", got)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		if _, err := ParseWeekdays("funday"); err == nil {
			t.Error("expected error for unknown weekday")
		}
		if _, err := ParseWeekdays("7"); err == nil {
			t.Error("expected error for out-of-range number")
		}
	})
}

func TestFormatWeekdays(t *testing.T) {
	if got := FormatWeekdays(nil); got != "" {
		t.Errorf("FormatWeekdays(nil) = %q, want empty", got)
	}

	got := FormatWeekdays([]time.Weekday{time.Monday, time.Wednesday, time.Friday})
	if got != "Mon, Wed, Fri" {
		t.Errorf("FormatWeekdays() = %q, want \"Mon, Wed, Fri\"", got)
	}
}
