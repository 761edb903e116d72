package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func initFile(t *testing.T, lvl string) string {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "flame.log")
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig(lvl, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return logFile
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	// 1MB is the smallest size lumberjack allows.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 6000; i++ {
		Sugar.Infof("frame %d: %s", i, longMessage)
	}
	Sync()

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		if f.Name() != "test.log" && strings.HasPrefix(f.Name(), "test-20") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected a rotated file next to test.log, got %d files", len(files))
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "DEBUG", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
		{level: "bogus", expected: []string{"INFO"}, excluded: []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := initFile(t, tt.level)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			logContent := readLog(t, logFile)
			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	logFile := initFile(t, "warn")

	Info("hidden")
	SetLevel("info")
	if Level() != zapcore.InfoLevel {
		t.Errorf("expected info level, got %s", Level())
	}
	Info("shown")

	content := readLog(t, logFile)
	if strings.Contains(content, "hidden") {
		t.Error("message below the initial level was written")
	}
	if !strings.Contains(content, "shown") {
		t.Error("message after SetLevel was dropped")
	}
}

func TestNamed(t *testing.T) {
	logFile := initFile(t, "info")

	Named("renderer").Info("viewport resized", zap.Int("width", 640))

	content := readLog(t, logFile)
	if !strings.Contains(content, "renderer") {
		t.Errorf("expected component name in %q", content)
	}
	if !strings.Contains(content, "width") || !strings.Contains(content, "640") {
		t.Errorf("expected structured field in %q", content)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation limits %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
