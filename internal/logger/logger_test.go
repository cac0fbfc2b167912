package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		min     Level
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			min:     LevelInfo,
			level:   LevelInfo,
			message: "week parsed",
			fields:  Fields{"week": 3},
			want:    true,
		},
		{
			name:    "debug below threshold",
			min:     LevelInfo,
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "debug enabled",
			min:     LevelDebug,
			level:   LevelDebug,
			message: "debug message",
			want:    true,
		},
		{
			name:    "error with err",
			min:     LevelWarn,
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("status 503"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.min, &buf)

			l.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Error("season failed", Fields{"year": 2016, "week": 4}, errors.New("status 503"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", buf.String(), err)
	}

	if entry["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", entry["level"])
	}
	if entry["message"] != "season failed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["error"] != "status 503" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["year"] != float64(2016) {
		t.Errorf("year = %v, want 2016", entry["year"])
	}
	ts, _ := entry["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil || !strings.HasSuffix(ts, "Z") {
		t.Errorf("timestamp = %q, want UTC RFC3339", ts)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	var buf bytes.Buffer
	SetDefault(New(LevelWarn, &buf))

	Info("hidden", nil)
	Warn("shown", Fields{"row": 1})

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message written below WARN threshold")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message not written")
	}

	SetDefault(nil)
	if defaultLogger == nil {
		t.Error("SetDefault(nil) cleared the default logger")
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("weeks.parsed")
	m.IncrCounter("weeks.parsed")
	m.AddCounter("rows.parsed", 150)
	m.RecordTiming("fetch.week", 100*time.Millisecond)
	m.RecordTiming("fetch.week", 300*time.Millisecond)

	snap := m.Snapshot()

	if got := snap.Counters["weeks.parsed"]; got != 2 {
		t.Errorf("weeks.parsed = %d, want 2", got)
	}
	if got := snap.Counters["rows.parsed"]; got != 150 {
		t.Errorf("rows.parsed = %d, want 150", got)
	}

	stats, ok := snap.Timings["fetch.week"]
	if !ok {
		t.Fatal("fetch.week timing missing")
	}
	if stats.Count != 2 {
		t.Errorf("count = %d, want 2", stats.Count)
	}
	if stats.Average != "200ms" || stats.Min != "100ms" || stats.Max != "300ms" || stats.Total != "400ms" {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrCounter("rows.parsed")
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters["rows.parsed"]; got != 50 {
		t.Errorf("rows.parsed = %d, want 50", got)
	}
}
