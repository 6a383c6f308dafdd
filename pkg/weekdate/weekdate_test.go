package weekdate_test

import (
	"testing"
	"time"

	"github.com/priyanka7rc/laya/pkg/weekdate"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Monday stays",
			in:   date(2024, 5, 6), // Monday
			want: date(2024, 5, 6),
		},
		{
			name: "Wednesday rolls back",
			in:   date(2024, 5, 1), // Wednesday
			want: date(2024, 4, 29),
		},
		{
			name: "Sunday rolls back to same week's Monday",
			in:   date(2024, 5, 5), // Sunday
			want: date(2024, 4, 29),
		},
		{
			name: "clock time stripped",
			in:   time.Date(2024, 5, 1, 18, 45, 12, 0, time.UTC),
			want: date(2024, 4, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekdate.Monday(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("Monday(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSunday(t *testing.T) {
	got := weekdate.Sunday(date(2024, 5, 1)) // Wednesday
	want := date(2024, 5, 5)
	if !got.Equal(want) {
		t.Errorf("Sunday = %v, want %v", got, want)
	}
}

func TestNextWeekday(t *testing.T) {
	wednesday := date(2024, 5, 1)

	tests := []struct {
		name   string
		target time.Weekday
		want   time.Time
	}{
		{
			name:   "later this week",
			target: time.Friday,
			want:   date(2024, 5, 3),
		},
		{
			name:   "same weekday rolls a full week",
			target: time.Wednesday,
			want:   date(2024, 5, 8),
		},
		{
			name:   "already passed this week",
			target: time.Monday,
			want:   date(2024, 5, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekdate.NextWeekday(wednesday, tt.target)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekday(Wed, %v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	d, err := weekdate.Parse("2024-05-01")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := weekdate.Format(d); got != "2024-05-01" {
		t.Errorf("round trip = %q", got)
	}

	if _, err := weekdate.Parse("05/01/2024"); err == nil {
		t.Errorf("expected error for non-ISO format")
	}
}
