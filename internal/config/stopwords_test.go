package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStopwords_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadStopwords(dir)
	if err != nil {
		t.Fatalf("LoadStopwords() returned error for missing file: %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadStopwords() returned nil config")
	}
	if len(cfg.Stopwords) != 0 {
		t.Errorf("expected empty Stopwords map, got %v", cfg.Stopwords)
	}
}

func TestLoadStopwords_CommentsAndBlankLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	content := `# common english stopwords


# connectives
and
the
`
	if err := os.WriteFile(filepath.Join(dir, "stopwords"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadStopwords(dir)
	if err != nil {
		t.Fatalf("LoadStopwords() error: %v", err)
	}
	if len(cfg.Stopwords) != 2 {
		t.Errorf("expected 2 stopwords, got %d: %v", len(cfg.Stopwords), cfg.Stopwords)
	}
	if _, ok := cfg.Stopwords["and"]; !ok {
		t.Error("expected \"and\" in stopwords")
	}
	if _, ok := cfg.Stopwords["the"]; !ok {
		t.Error("expected \"the\" in stopwords")
	}
}

func TestLoadStopwords_LowercasesEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "stopwords"), []byte("The\nAND\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadStopwords(dir)
	if err != nil {
		t.Fatalf("LoadStopwords() error: %v", err)
	}
	if _, ok := cfg.Stopwords["the"]; !ok {
		t.Errorf("expected lowercase \"the\", got %v", cfg.Stopwords)
	}
	if _, ok := cfg.Stopwords["and"]; !ok {
		t.Errorf("expected lowercase \"and\", got %v", cfg.Stopwords)
	}
}

func TestLoadStopwords_MultiTokenLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	content := "valid\nnot a stopword\nalso\tbad\nok\n"
	if err := os.WriteFile(filepath.Join(dir, "stopwords"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadStopwords(dir)
	if err != nil {
		t.Fatalf("LoadStopwords() error: %v", err)
	}
	if len(cfg.Stopwords) != 2 {
		t.Errorf("expected 2 stopwords, got %v", cfg.Stopwords)
	}
}

func TestDir_RespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", "textmine") {
		t.Errorf("Dir() = %q, want /tmp/xdg-test/textmine", dir)
	}
}
