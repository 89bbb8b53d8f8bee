package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/treykane/cipher-nexus/internal/logging"
)

// TestMain keeps log records out of the user's home directory and fails the
// run if the default log file changed anyway.
func TestMain(m *testing.M) {
	if os.Getenv(logging.EnvFile) == "" {
		os.Setenv(logging.EnvFile, "off")
	}
	logPath := defaultLogPath()
	before := statLog(logPath)

	code := m.Run()

	if after := statLog(logPath); code == 0 && after != before {
		fmt.Fprintf(os.Stderr, "tests modified %s: %+v -> %+v\n", logPath, before, after)
		code = 1
	}
	os.Exit(code)
}

type logFileState struct {
	exists bool
	size   int64
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cipher-nexus", "cipher-nexus.log")
}

func statLog(path string) logFileState {
	if path == "" {
		return logFileState{}
	}
	info, err := os.Stat(path)
	if err != nil {
		return logFileState{}
	}
	return logFileState{exists: true, size: info.Size()}
}

func TestAppLoggerHonoursSinkOverride(t *testing.T) {
	if os.Getenv(logging.EnvFile) == "" {
		t.Fatal("expected a log sink override during tests")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	appLog.Info("wheel turned", "shift", 3)
	m := newTestModel(t, nil)
	m.setStatusError("Remix failed", os.ErrNotExist)

	if _, err := os.Stat(filepath.Join(home, ".cipher-nexus")); !os.IsNotExist(err) {
		t.Fatalf("logging created files under HOME: %v", err)
	}
}
