package log

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wlog")

	for _, id := range []string{"first", "second"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), AttemptID: id, Category: CategoryState})
		if err := logger.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	events, err := DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].AttemptID != "first" || events[1].AttemptID != "second" {
		t.Errorf("unexpected order: %q, %q", events[0].AttemptID, events[1].AttemptID)
	}
}

func TestFileLoggerIgnoresLogAfterClose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	logger.Log(Event{AttemptID: "late"})
	if buf.Len() != 0 {
		t.Errorf("expected no output after Close, got %d bytes", buf.Len())
	}
}

func TestFileLoggerConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(Event{Timestamp: time.Now(), AttemptID: "c", Category: CategoryRecord})
			}
		}()
	}
	wg.Wait()

	events, err := DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if len(events) != 200 {
		t.Errorf("got %d events, want 200", len(events))
	}
}
