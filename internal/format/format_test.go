package format

import (
	"testing"
	"time"
)

func ptr(n int64) *int64 { return &n }

func TestNum(t *testing.T) {
	tests := []struct {
		input *int64
		want  string
	}{
		{ptr(0), "0"},
		{ptr(999), "999"},
		{ptr(1000), "1 000"},
		{ptr(12345), "12 345"},
		{ptr(1234567), "1 234 567"},
		{ptr(-12345), "-12 345"},
		{nil, "—"},
	}
	for _, tt := range tests {
		if got := Num(tt.input); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDelta(t *testing.T) {
	// У дельт апострофы и всегда явный знак — у обычных счётчиков
	// пробелы; это исторический формат вывода
	tests := []struct {
		input *int64
		want  string
	}{
		{ptr(1278), "+1'278"},
		{ptr(-12345), "-12'345"},
		{ptr(0), "+0"},
		{ptr(500), "+500"},
		{nil, "—"},
	}
	for _, tt := range tests {
		if got := Delta(tt.input); got != tt.want {
			t.Errorf("Delta(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSeparatorsDiffer(t *testing.T) {
	n := int64(12345)
	if Num(&n) == Delta(&n) {
		t.Error("счётчики и дельты должны форматироваться разными разделителями")
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1500, "1.5K"},
		{12345, "12.3K"},
		{1000000, "1M"},
		{2300000, "2.3M"},
		{-1500, "1.5K"},
	}
	for _, tt := range tests {
		if got := Compact(tt.input); got != tt.want {
			t.Errorf("Compact(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	if got := Float(4.5); got != "4.5" {
		t.Errorf("Float(4.5) = %q, want %q", got, "4.5")
	}
	if got := Float(12); got != "12" {
		t.Errorf("Float(12) = %q, want %q", got, "12")
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC)
	if got := Date(d); got != "28.08.2026 09:05" {
		t.Errorf("Date() = %q, want %q", got, "28.08.2026 09:05")
	}
}
