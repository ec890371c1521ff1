package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "warn at warn level",
			level:   log.WarnLevel,
			logFunc: func(l *log.Logger) { l.Warn("test") },
			wantLog: true,
		},
		{
			name:    "debug at warn level",
			level:   log.WarnLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestSetupLoggerVerbosity(t *testing.T) {
	setupLogger(false)
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("non-verbose level = %v, want %v", logger.GetLevel(), log.WarnLevel)
	}
	setupLogger(true)
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("verbose level = %v, want %v", logger.GetLevel(), log.DebugLevel)
	}
}
