package linecharts

import (
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		Pattern string
		Want    string
		Err     bool
	}{
		{Pattern: "%Y-%m-%d", Want: "2006-01-02"},
		{Pattern: "%d/%m/%y %H:%M", Want: "02/01/06 15:04"},
		{Pattern: "%F %T", Want: "2006-01-02 15:04:05"},
		{Pattern: "day %j", Want: "day 002"},
		{Pattern: "%Q", Err: true},
		{Pattern: "%Y%", Err: true},
		{Pattern: "Q1 %Y", Err: true},
		{Pattern: "%Y week", Want: "2006 week"},
		{Pattern: "%d Month %Y", Err: true},
		{Pattern: "100%% %Y", Err: true},
	}
	for _, tt := range tests {
		got, err := parseFormat(tt.Pattern)
		if tt.Err {
			if err == nil {
				t.Errorf("%s: expected error", tt.Pattern)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.Pattern, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("%s: want %q, got %q", tt.Pattern, tt.Want, got)
		}
	}
}

func TestDateFormat(t *testing.T) {
	tests := []struct {
		Pattern string
		Unit    EpochUnit
		Input   string
		Want    float64
	}{
		{Pattern: "%Y-%m-%d", Unit: Second, Input: "2024-01-01", Want: 1704067200},
		{Pattern: "%Y-%m-%d", Unit: Day, Input: "2024-01-02", Want: 19724},
		{Pattern: "%Y-%m-%d %H:%M", Unit: Second, Input: "2024-01-01 06:30", Want: 1704090600},
	}
	for _, tt := range tests {
		d, err := NewDateFormat(tt.Pattern, time.UTC, tt.Unit)
		if err != nil {
			t.Fatal(err)
		}
		got, err := d.Parse(tt.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.Input, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("%s: want %f, got %f", tt.Input, tt.Want, got)
		}
		if str := d.Format(got); str != tt.Input {
			t.Errorf("format %f: want %q, got %q", got, tt.Input, str)
		}
	}
}

func TestDateFormatLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	d, err := NewDateFormat("%Y-%m-%d", loc, Second)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.Parse("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1704067200-7200 {
		t.Errorf("want %d, got %f", 1704067200-7200, got)
	}
	if str := d.Format(got); str != "2024-01-01" {
		t.Errorf("format: want 2024-01-01, got %s", str)
	}
}

func TestDateFormatInvalid(t *testing.T) {
	d := DefaultDate()
	if _, err := d.Parse("01/02/2024"); err == nil {
		t.Errorf("expected error for mismatched input")
	}
	if d.Pattern != DefaultDateFormat || d.Location != time.UTC {
		t.Errorf("unexpected default date format: %+v", d)
	}
}
