// Package dictionary は words.jsonl の単語カタログを読み込み、検証済みのエントリを提供します
package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"go_vi_dict/internal/flashcard"
	"go_vi_dict/internal/model"
)

const maxLineBytes = 1 << 20

// Catalogue は読み込み後は変更されないため、並行に読み出せます
type Catalogue struct {
	entries []model.WordEntry
	byWord  map[string]int
	jsonl   []byte
}

// New は検証済みのエントリからカタログを作ります。同じ単語は最初のものを残します
func New(entries []model.WordEntry) *Catalogue {
	c := &Catalogue{byWord: make(map[string]int, len(entries))}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for _, e := range entries {
		key := strings.ToLower(e.Word)
		if _, dup := c.byWord[key]; dup {
			continue
		}
		c.byWord[key] = len(c.entries)
		c.entries = append(c.entries, e)
		// Encode は行末に改行を付ける
		_ = enc.Encode(e)
	}
	c.jsonl = buf.Bytes()
	return c
}

// Load はファイルからカタログを読み込みます
func Load(path string, logger *slog.Logger) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Load: %w", err)
	}
	defer f.Close()

	c, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Load: %w", err)
	}
	logger.Info("Dictionary loaded", slog.String("path", path), slog.Int("entries", c.Len()))
	return c, nil
}

// Read は1行1エントリの JSONL を読みます。壊れた行や検証に失敗した行は警告を出して読み飛ばします
func Read(r io.Reader, logger *slog.Logger) (*Catalogue, error) {
	var entries []model.WordEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var e model.WordEntry
		if err := json.Unmarshal(line, &e); err != nil {
			logger.Warn("Skipping malformed dictionary line", slog.Int("line", lineNo), slog.Any("error", err))
			skipped++
			continue
		}
		e.Word = strings.TrimSpace(e.Word)
		if err := e.Validate(); err != nil {
			logger.Warn("Skipping invalid dictionary entry", slog.Int("line", lineNo), slog.Any("error", err))
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary.Read: line %d: %w", lineNo+1, err)
	}
	if skipped > 0 {
		logger.Warn("Dictionary entries skipped", slog.Int("skipped", skipped))
	}
	return New(entries), nil
}

func (c *Catalogue) Len() int {
	return len(c.entries)
}

// Lookup は単語 (大文字小文字を区別しない) のエントリを返します
func (c *Catalogue) Lookup(word string) (model.WordEntry, bool) {
	i, ok := c.byWord[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return model.WordEntry{}, false
	}
	return c.entries[i], true
}

// WriteJSONL は検証済みエントリを1行1件で書き出します
func (c *Catalogue) WriteJSONL(w io.Writer) (int64, error) {
	n, err := w.Write(c.jsonl)
	return int64(n), err
}

// Candidates は exclude に含まれない単語から最大 n 件を無作為に選びます
func (c *Catalogue) Candidates(exclude []string, n int, rng *rand.Rand) []model.WordEntry {
	skip := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		skip[strings.ToLower(w)] = struct{}{}
	}

	available := make([]model.WordEntry, 0, len(c.entries))
	for _, e := range c.entries {
		if _, ok := skip[strings.ToLower(e.Word)]; !ok {
			available = append(available, e)
		}
	}
	return flashcard.Sample(available, n, rng)
}
