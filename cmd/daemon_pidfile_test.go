package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPidFileRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := WritePidFile(); err != nil {
		t.Fatalf("WritePidFile: %v", err)
	}
	defer RemovePidFile()

	pid, err := ReadPidFile()
	if err != nil {
		t.Fatalf("ReadPidFile: %v", err)
	}
	if pid != os.Getpid() {
		t.Errorf("pid = %d, want %d", pid, os.Getpid())
	}
}

func TestReadPidFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := ReadPidFile(); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestReadPidFileInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(filepath.Dir(getPidFilePath()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(getPidFilePath(), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPidFile(); err == nil {
		t.Error("expected error for garbage pid file")
	}

	if err := os.WriteFile(getPidFilePath(), []byte("-4"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPidFile(); err == nil {
		t.Error("expected error for negative pid")
	}
}

func TestRemovePidFileMissingIsNoop(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := RemovePidFile(); err != nil {
		t.Errorf("RemovePidFile on missing file: %v", err)
	}
}
