package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_NilCallback_ReturnsError(t *testing.T) {
	_, err := New("corpus.txt", nil)
	if err == nil {
		t.Fatal("expected error for nil callback")
	}
}

func TestWatcher_CallbackOnCorpusWrite(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpus, []byte("initial\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(corpus, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Debounce = 50 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(corpus, []byte("updated corpus\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not invoked after corpus write")
	}
}

func TestWatcher_IgnoresOtherFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpus, []byte("initial\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(corpus, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Debounce = 50 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("noise\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("callback invoked for unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpus, []byte("initial\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	calls := make(chan struct{}, 16)
	w, err := New(corpus, func() { calls <- struct{}{} })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Debounce = 200 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// A burst of rapid writes should settle to a single callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(corpus, []byte("burst write\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("no callback after burst")
	}

	select {
	case <-calls:
		t.Error("burst produced more than one callback")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopAfterStart(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpus, []byte("initial\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New(corpus, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop returned error: %v", err)
	}
}
