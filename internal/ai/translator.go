package ai

import (
	"context"
	"fmt"
	"time"
)

// Request は AI 翻訳の入力
type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	IsWord         bool
}

// Translator はプロンプトを組み立てて Generator に渡します。出力は検証・解析しません
type Translator struct {
	gen     Generator
	timeout time.Duration
}

func NewTranslator(gen Generator, timeout time.Duration) *Translator {
	return &Translator{gen: gen, timeout: timeout}
}

func (t *Translator) TranslateWithAI(ctx context.Context, req Request) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	out, err := t.gen.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return "", fmt.Errorf("ai.TranslateWithAI: %w", err)
	}
	return out, nil
}
