// Package config provides configuration file parsing for textmine.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the textmine config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/textmine if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "textmine"), nil
}

// StopwordConfig holds the words excluded from tokenization. Keys are
// lowercase; membership is checked after the tokenizer lowercases input.
type StopwordConfig struct {
	Stopwords map[string]struct{}
}

// LoadStopwords reads the stopword file at {dir}/stopwords and returns the
// parsed config: one word per line, lowercased on load. If the file does
// not exist, an empty config is returned without an error. Blank lines and
// "#" comments are skipped, as are lines containing whitespace (a stopword
// is a single token by definition).
func LoadStopwords(dir string) (*StopwordConfig, error) {
	cfg := &StopwordConfig{
		Stopwords: make(map[string]struct{}),
	}

	path := filepath.Join(dir, "stopwords")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// A stopword is one token; lines with embedded spaces are invalid.
		if strings.ContainsAny(line, " \t") {
			continue
		}

		cfg.Stopwords[strings.ToLower(line)] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
