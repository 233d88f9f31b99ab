package clogger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSink_SequentialOrdering(t *testing.T) {
	const count = 20
	for i := 0; i < count; i++ {
		Infof("ordering-marker-%03d", i)
	}

	log := readLogFile(t)
	last := -1
	for i := 0; i < count; i++ {
		idx := strings.Index(log, fmt.Sprintf("ordering-marker-%03d", i))
		if idx < 0 {
			t.Fatalf("file missing ordering-marker-%03d", i)
		}
		if idx < last {
			t.Fatalf("ordering-marker-%03d appears out of order", i)
		}
		last = idx
	}
}

func TestFileSink_AppendMode(t *testing.T) {
	before := len(readLogFile(t))

	Infof("append-mode-marker")

	log := readLogFile(t)
	if len(log) <= before {
		t.Fatalf("file should grow on emission, size stayed at %d", before)
	}
	if !strings.Contains(log[before:], "append-mode-marker") {
		t.Fatalf("new content should be appended at the end, got tail: %q", log[before:])
	}
}

func TestInit_SecondCallIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	secondPath := filepath.Join(tmpDir, "second.log")

	Init(secondPath)
	Infof("second-init-marker")

	if _, err := os.Stat(secondPath); !os.IsNotExist(err) {
		t.Fatalf("second Init path should never be created, stat err: %v", err)
	}
	if !strings.Contains(readLogFile(t), "second-init-marker") {
		t.Fatalf("records after a second Init should still reach the first file")
	}
}

func TestNew_InvalidPath(t *testing.T) {
	invalidPath := filepath.Join(t.TempDir(), "missing", "nested", "test.log")

	l, err := New(invalidPath)
	if err == nil {
		t.Fatalf("New should fail for an unopenable path")
	}
	if l != nil {
		t.Fatalf("New should return a nil logger on failure, got: %v", l)
	}
	if !strings.Contains(err.Error(), invalidPath) {
		t.Fatalf("error should name the path, got: %v", err)
	}
}

func TestNew_DiscardPath(t *testing.T) {
	oldStdout := outStdout
	defer func() { outStdout = oldStdout }()
	outStdout = io.Discard

	l, err := New(os.DevNull)
	if err != nil {
		t.Fatalf("discard path should open successfully, got: %v", err)
	}

	for i := 0; i < 1000; i++ {
		l.Infof("discard-%d", i)
	}
}

func TestNew_InstanceDualSink(t *testing.T) {
	var console bytes.Buffer
	oldStdout := outStdout
	defer func() { outStdout = oldStdout }()
	outStdout = &console

	logPath := filepath.Join(t.TempDir(), "instance.log")
	l, err := New(logPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Infof("instance-info-marker")
	l.ErrorAs("instance::store", "instance-error-marker")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	// Both sinks receive the identical bytes.
	if console.String() != string(content) {
		t.Fatalf("console and file content should match, console=%q file=%q", console.String(), content)
	}
	for _, marker := range []string{"instance-info-marker", "instance-error-marker", "instance::store ("} {
		if !strings.Contains(string(content), marker) {
			t.Fatalf("file missing %q, got: %q", marker, content)
		}
	}
}

// Adapted from the original high-volume run: a discard-path logger must
// accept a million sequential emissions without error or blocking.
func TestDiscardPath_HighVolume(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping high-volume emission test in short mode")
	}

	oldStdout := outStdout
	defer func() { outStdout = oldStdout }()
	outStdout = io.Discard

	l, err := New(os.DevNull)
	if err != nil {
		t.Fatalf("discard path should open successfully, got: %v", err)
	}

	for i := 1; i <= 1_000_000; i++ {
		l.InfoAs("tests::perf", "high volume run (x%d)", i)
	}
}
