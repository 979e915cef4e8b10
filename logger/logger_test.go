package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWritesFile(t *testing.T) {
	prev := zapLog
	t.Cleanup(func() { zapLog = prev })

	logPath := filepath.Join(t.TempDir(), "cgc_finder.log")
	if err := InitLogger(zapcore.InfoLevel, logPath); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}

	Info("Contigs loaded", zap.Int("contigs", 3))
	Debug("hidden at info level")
	_ = Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "Contigs loaded") {
		t.Fatalf("log file missing entry: %q", got)
	}
	if strings.Contains(got, "hidden at info level") {
		t.Fatalf("debug entry written at info level: %q", got)
	}
}

func TestDefaultLoggerIsSafe(t *testing.T) {
	Named("test").Info("no-op logger accepts entries")
	Warn("no-op")
}
