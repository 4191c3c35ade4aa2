package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Warn("Error parsing game", Fields{"index": 2}, errors.New("missing spread"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "Error parsing game", entry["message"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "missing spread", entry["error"])
	assert.EqualValues(t, 2, entry["index"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}

func TestSetDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defer SetDefault(prev)

	SetDefault(New(LevelInfo, &buf))
	Info("routed", nil)

	assert.Contains(t, buf.String(), `"message":"routed"`)
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("test_counter")
	m.IncrCounter("test_counter")
	m.IncrCounter("test_counter")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["test_counter"] != 3 {
		t.Errorf("Counter = %v, want 3", counters["test_counter"])
	}
	if m.Counter("test_counter") != 3 {
		t.Errorf("Counter() = %v, want 3", m.Counter("test_counter"))
	}
	if m.Counter("missing") != 0 {
		t.Errorf("Counter(missing) = %v, want 0", m.Counter("missing"))
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("games_returned", 4)
	m.SetGauge("games_returned", 9)

	gauges := m.GetSnapshot()["gauges"].(map[string]float64)

	if gauges["games_returned"] != 9 {
		t.Errorf("Gauge = %v, want 9", gauges["games_returned"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 200*time.Millisecond)
	m.RecordTiming("fetch", 150*time.Millisecond)

	timings := m.GetSnapshot()["timings"].(map[string]map[string]interface{})

	fetch := timings["fetch"]
	assert.Equal(t, 3, fetch["count"])
	assert.Equal(t, "100ms", fetch["min"])
	assert.Equal(t, "200ms", fetch["max"])
	assert.Equal(t, "150ms", fetch["average"])
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defer SetDefault(prev)
	SetDefault(New(LevelDebug, &buf))

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil, nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))

	IncrCounter("test")
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	if GetMetricsSnapshot() == nil {
		t.Error("GetMetricsSnapshot() returned nil")
	}
	if DefaultMetrics().Counter("test") < 1 {
		t.Error("DefaultMetrics() did not record the counter")
	}
}
