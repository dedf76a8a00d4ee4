package services

import (
	"testing"
	"time"
)

func TestParseLogTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		line string
		want time.Time
		ok   bool
	}{
		{
			"iso format",
			"2026-08-30 14:30:15 - backup.sh started",
			time.Date(2026, 8, 30, 14, 30, 15, 0, time.UTC),
			true,
		},
		{
			"syslog format defaults to current year",
			"Mar 15 09:45:02 host CRON[123]: cleanup.sh started",
			time.Date(2026, 3, 15, 9, 45, 2, 0, time.UTC),
			true,
		},
		{
			"syslog format single digit day",
			"Mar 5 09:45:02 cleanup.sh finished",
			time.Date(2026, 3, 5, 9, 45, 2, 0, time.UTC),
			true,
		},
		{
			"us slash format",
			"08/30/2026 06:00:00 backup.sh completed",
			time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC),
			true,
		},
		{
			"iso wins over syslog when both present",
			"Mar 15 09:45:02 imported at 2026-08-30 14:30:15 backup.sh started",
			time.Date(2026, 8, 30, 14, 30, 15, 0, time.UTC),
			true,
		},
		{
			"no timestamp",
			"backup.sh started without any time info",
			time.Time{},
			false,
		},
		{
			"truncated timestamp",
			"2026-08-30 14:3",
			time.Time{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLogTimestamp(tt.line, now)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("timestamp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLogTimestampExtraWhitespace(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	got, ok := ParseLogTimestamp("Mar  5  09:45:02 cleanup.sh started", now)
	if !ok {
		t.Fatal("expected a timestamp")
	}
	want := time.Date(2026, 3, 5, 9, 45, 2, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got, want)
	}
}
